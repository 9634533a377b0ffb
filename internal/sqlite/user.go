package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tweeter/internal/tweeter"
)

func (r Repo) CreateUser(ctx context.Context, name, email, profile, hashedPassword string) (int64, error) {
	const q = `INSERT INTO users (name, email, profile, hashed_password)
	VALUES (?, ?, ?, ?);`

	res, err := r.db.ExecContext(ctx, q, name, email, profile, hashedPassword)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return 0, fmt.Errorf("inserting user %q: %w", email, tweeter.ErrConflict)
	}
	if err != nil {
		return 0, fmt.Errorf("error inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new user id: %w", err)
	}

	return id, nil
}

func (r Repo) User(ctx context.Context, id int64) (tweeter.User, error) {
	const q = `SELECT id, name, email, profile, created_at FROM users WHERE id = ?;`

	var usr tweeter.User
	err := r.db.GetContext(ctx, &usr, q, id)
	if errors.Is(err, sql.ErrNoRows) {
		return tweeter.User{}, tweeter.ErrNotFound
	}
	if err != nil {
		return tweeter.User{}, err
	}

	return usr, nil
}

func (r Repo) CredentialByEmail(ctx context.Context, email string) (tweeter.Credential, error) {
	const q = `SELECT id, hashed_password FROM users WHERE email = ?;`

	var cred tweeter.Credential
	err := r.db.GetContext(ctx, &cred, q, email)
	if errors.Is(err, sql.ErrNoRows) {
		return tweeter.Credential{}, tweeter.ErrNotFound
	}
	if err != nil {
		return tweeter.Credential{}, err
	}

	return cred, nil
}
