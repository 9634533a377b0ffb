// Package api maps the HTTP surface onto the services. Each route calls
// exactly one service method; protected routes go through the token
// middleware first.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"tweeter/internal/auth"
	"tweeter/internal/server"
	"tweeter/internal/service"
)

// errRouter is a newtype around a mux router that allows attaching handlers that return errors.
type errRouter struct {
	*mux.Router
}

func (r errRouter) HandleFuncE(path string, f server.HandlerFuncE) *mux.Route {
	return r.Handle(path, f)
}

type (
	// Server is the HTTP front of the application.
	Server struct {
		*http.Server

		users  service.UserService
		tweets service.TweetService
		tokens auth.Tokens
	}

	ServerConfig struct {
		Port       int
		CorsOrigin string
	}
)

func NewServer(config ServerConfig, users service.UserService, tweets service.TweetService, tokens auth.Tokens) *Server {
	r := errRouter{Router: mux.NewRouter()}

	srvr := Server{
		users:  users,
		tweets: tweets,
		tokens: tokens,
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			Handler: handlers.CORS(
				handlers.AllowedOrigins([]string{config.CorsOrigin}),
				handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
				handlers.AllowedHeaders([]string{"content-type", "authorization"}),
			)(r),
		},
	}

	r.Use(server.AccessLogMiddleware) // Log everything
	r.HandleFuncE("/ping", srvr.getPing).Methods(http.MethodGet)
	r.HandleFuncE("/sign-up", srvr.postSignUp).Methods(http.MethodPost)
	r.HandleFuncE("/login", srvr.postLogin).Methods(http.MethodPost)

	// Anyone can read a user's timeline by id
	r.HandleFuncE("/timeline/{userID}", srvr.getUserTimeline).Methods(http.MethodGet)

	authed := errRouter{Router: r.NewRoute().Subrouter()}
	authed.Use(requireTokenMiddleware(tokens))

	authed.HandleFuncE("/tweet", srvr.postTweet).Methods(http.MethodPost)
	authed.HandleFuncE("/follow", srvr.postFollow).Methods(http.MethodPost)
	authed.HandleFuncE("/unfollow", srvr.postUnfollow).Methods(http.MethodPost)
	authed.HandleFuncE("/timeline", srvr.getOwnTimeline).Methods(http.MethodGet)

	return &srvr
}

func (s *Server) getPing(w http.ResponseWriter, r *http.Request) error {
	_, err := fmt.Fprint(w, "pong")
	return err
}
