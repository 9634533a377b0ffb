// Package tweeter holds the domain types and service surfaces for the
// social feed: users, follow edges, tweets, and the timelines built
// from them.
package tweeter

import (
	"context"
	"errors"
	"time"
)

var (
	ErrConflict        = errors.New("resource already exists")
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTweetTooLong    = errors.New("tweet exceeds maximum length")
)

// MaxTweetRunes is the longest tweet body accepted, counted in runes.
const MaxTweetRunes = 300

type (
	// User is a registered account. The hashed password never leaves
	// the repository layer except through Credential.
	User struct {
		ID        int64     `db:"id"`
		Name      string    `db:"name"`
		Email     string    `db:"email"`
		Profile   string    `db:"profile"`
		CreatedAt time.Time `db:"created_at"`
	}

	// Credential is the subset of a user needed to check a login.
	Credential struct {
		ID             int64  `db:"id"`
		HashedPassword string `db:"hashed_password"`
	}

	// Tweet is a single immutable post.
	Tweet struct {
		ID        int64     `db:"id"`
		UserID    int64     `db:"user_id"`
		Tweet     string    `db:"tweet"`
		CreatedAt time.Time `db:"created_at"`
	}

	// TimelineEntry is one visible tweet in a user's timeline.
	TimelineEntry struct {
		UserID int64  `db:"user_id" json:"user_id"`
		Tweet  string `db:"tweet" json:"tweet"`
	}

	UserRepo interface {
		CreateUser(ctx context.Context, name, email, profile, hashedPassword string) (int64, error)
		User(ctx context.Context, id int64) (User, error)
		CredentialByEmail(ctx context.Context, email string) (Credential, error)
	}

	FollowRepo interface {
		AddFollow(ctx context.Context, userID, followID int64) (int64, error)
		RemoveFollow(ctx context.Context, userID, followID int64) (int64, error)
	}

	TweetRepo interface {
		InsertTweet(ctx context.Context, userID int64, body string) (int64, error)
		// Timeline returns the user's own tweets plus those of everyone
		// they currently follow, in insertion order.
		Timeline(ctx context.Context, userID int64) ([]TimelineEntry, error)
	}
)
