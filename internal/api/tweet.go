package api

import (
	"encoding/json"
	"errors"
	"net/http"

	twerrs "tweeter/internal/errors"
	"tweeter/internal/tweeter"
)

type PostTweetReq struct {
	Tweet string `json:"tweet"`
}

func (s *Server) postTweet(w http.ResponseWriter, r *http.Request) error {
	var body PostTweetReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return twerrs.E(err, http.StatusBadRequest)
	}

	err := s.tweets.Post(r.Context(), sessionUserID(r), body.Tweet)
	if errors.Is(err, tweeter.ErrTweetTooLong) {
		return twerrs.E(err, http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

type FollowReq struct {
	Follow int64 `json:"follow"`
}

func (s *Server) postFollow(w http.ResponseWriter, r *http.Request) error {
	var body FollowReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return twerrs.E(err, http.StatusBadRequest)
	}

	if err := s.users.Follow(r.Context(), sessionUserID(r), body.Follow); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}

type UnfollowReq struct {
	Unfollow int64 `json:"unfollow"`
}

func (s *Server) postUnfollow(w http.ResponseWriter, r *http.Request) error {
	var body UnfollowReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return twerrs.E(err, http.StatusBadRequest)
	}

	if err := s.users.Unfollow(r.Context(), sessionUserID(r), body.Unfollow); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
