package api

import (
	"encoding/json"
	"errors"
	"net/http"

	twerrs "tweeter/internal/errors"
	"tweeter/internal/server"
	"tweeter/internal/service"
	"tweeter/internal/tweeter"
)

type SignUpReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Profile  string `json:"profile"`
	Password string `json:"password"`
}

func (r SignUpReq) Validate() error {
	var details []twerrs.Detail
	if r.Name == "" {
		details = append(details, twerrs.Detail{Field: "name", Error: "is required"})
	}
	if r.Email == "" {
		details = append(details, twerrs.Detail{Field: "email", Error: "is required"})
	}
	if r.Password == "" {
		details = append(details, twerrs.Detail{Field: "password", Error: "is required"})
	}
	if len(details) > 0 {
		return twerrs.E("invalid sign-up request", details, http.StatusBadRequest)
	}

	return nil
}

type UserResp struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

func (s *Server) postSignUp(w http.ResponseWriter, r *http.Request) error {
	body, err := server.DecodeValid[SignUpReq](r.Body)
	if err != nil {
		var sErr *twerrs.Error
		if errors.As(err, &sErr) {
			return sErr
		}
		return twerrs.E(err, http.StatusBadRequest)
	}

	usr, err := s.users.SignUp(r.Context(), service.SignUpInput{
		Name:     body.Name,
		Email:    body.Email,
		Profile:  body.Profile,
		Password: body.Password,
	})
	if errors.Is(err, service.ErrProfaneName) {
		return twerrs.E(err, http.StatusUnprocessableEntity)
	}
	if errors.Is(err, tweeter.ErrConflict) {
		return twerrs.E("email already registered", http.StatusConflict)
	}
	if err != nil {
		return err
	}

	return server.WriteJSON(w, http.StatusOK, UserResp{
		ID:      usr.ID,
		Name:    usr.Name,
		Email:   usr.Email,
		Profile: usr.Profile,
	})
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
}

func (s *Server) postLogin(w http.ResponseWriter, r *http.Request) error {
	var body LoginReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return twerrs.E(err, http.StatusBadRequest)
	}

	res, err := s.users.Login(r.Context(), body.Email, body.Password)
	if errors.Is(err, tweeter.ErrUnauthenticated) {
		return twerrs.E("bad credentials", http.StatusUnauthorized)
	}
	if err != nil {
		return err
	}

	return server.WriteJSON(w, http.StatusOK, LoginResp{
		AccessToken: res.Token,
		UserID:      res.UserID,
	})
}
