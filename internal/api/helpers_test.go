package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"tweeter/internal/auth"
	"tweeter/internal/migrations"
	"tweeter/internal/service"
	twsqlite "tweeter/internal/sqlite"
)

var testTokens = auth.NewTokens([]byte("api-test-secret"))

// Spins up the whole stack on an in-memory database.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	dbx, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbx.Close() })
	dbx.SetMaxOpenConns(1)

	require.NoError(t, migrations.Run(dbx))

	repo := twsqlite.New(dbx)

	return NewServer(
		ServerConfig{Port: 0},
		service.NewUserService(repo, repo, testTokens),
		service.NewTweetService(repo),
		testTokens,
	)
}

// Runs a request through the full router, middleware included.
func do(t *testing.T, s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	s.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// Registers a user and returns their id and a live session token.
func signUpAndLogin(t *testing.T, s *Server, name, email, password string) (int64, string) {
	t.Helper()

	rec := do(t, s, "POST", "/sign-up", "", fmt.Sprintf(
		`{"name": %q, "email": %q, "password": %q}`, name, email, password,
	))
	require.Equal(t, 200, rec.Code, rec.Body.String())

	rec = do(t, s, "POST", "/login", "", fmt.Sprintf(
		`{"email": %q, "password": %q}`, email, password,
	))
	require.Equal(t, 200, rec.Code, rec.Body.String())

	res := decodeBody[LoginResp](t, rec)
	return res.UserID, res.AccessToken
}
