package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	twerrs "tweeter/internal/errors"
	"tweeter/internal/server"
	"tweeter/internal/tweeter"
)

type TimelineResp struct {
	UserID   int64                   `json:"user_id"`
	Timeline []tweeter.TimelineEntry `json:"timeline"`
}

func (s *Server) timelineResponse(w http.ResponseWriter, r *http.Request, userID int64) error {
	entries, err := s.tweets.Timeline(r.Context(), userID)
	if err != nil {
		return err
	}

	return server.WriteJSON(w, http.StatusOK, TimelineResp{
		UserID:   userID,
		Timeline: entries,
	})
}

// The authenticated user's own timeline.
func (s *Server) getOwnTimeline(w http.ResponseWriter, r *http.Request) error {
	return s.timelineResponse(w, r, sessionUserID(r))
}

// Any user's timeline, looked up by path id. No auth required.
func (s *Server) getUserTimeline(w http.ResponseWriter, r *http.Request) error {
	userID, err := strconv.ParseInt(mux.Vars(r)["userID"], 10, 64)
	if err != nil {
		return twerrs.E("user id must be numeric", http.StatusBadRequest)
	}

	return s.timelineResponse(w, r, userID)
}
