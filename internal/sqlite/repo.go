// Package sqlite implements the domain repositories on a SQLite database
// through sqlx.
package sqlite

import (
	"github.com/jmoiron/sqlx"

	"tweeter/internal/tweeter"
)

// Ensure Repo implements the repository interfaces
var (
	_ tweeter.UserRepo   = (*Repo)(nil)
	_ tweeter.FollowRepo = (*Repo)(nil)
	_ tweeter.TweetRepo  = (*Repo)(nil)
)

type Repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repo {
	return Repo{db: db}
}
