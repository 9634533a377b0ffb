// Package service orchestrates the domain operations on top of the
// repositories and the auth primitives.
package service

import (
	"context"
	"errors"
	"fmt"

	goaway "github.com/TwiN/go-away"
	"github.com/microcosm-cc/bluemonday"

	"tweeter/internal/auth"
	"tweeter/internal/tweeter"
)

// Strips any markup from user-supplied text before it is stored.
var stripPolicy = bluemonday.StrictPolicy()

// ErrProfaneName rejects sign-ups whose display name fails the
// profanity check.
var ErrProfaneName = errors.New("display name contains profanity")

type UserService struct {
	users   tweeter.UserRepo
	follows tweeter.FollowRepo
	tokens  auth.Tokens
}

func NewUserService(users tweeter.UserRepo, follows tweeter.FollowRepo, tokens auth.Tokens) UserService {
	return UserService{
		users:   users,
		follows: follows,
		tokens:  tokens,
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Profile  string
	Password string
}

// SignUp hashes the password, persists the user, and reloads the stored
// row so the caller gets the public view with the store-assigned id. The
// hash itself is never returned.
func (s UserService) SignUp(ctx context.Context, in SignUpInput) (tweeter.User, error) {
	name := stripPolicy.Sanitize(in.Name)
	if goaway.IsProfane(name) {
		return tweeter.User{}, ErrProfaneName
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return tweeter.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, name, in.Email, stripPolicy.Sanitize(in.Profile), hash)
	if err != nil {
		return tweeter.User{}, err
	}

	return s.users.User(ctx, id)
}

type LoginResult struct {
	UserID int64
	Token  string
}

// Login checks the credential and issues a session token. An unknown
// email and a wrong password come back as the same unauthenticated
// error, so the response never confirms whether an email is registered.
func (s UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	cred, err := s.users.CredentialByEmail(ctx, email)
	if errors.Is(err, tweeter.ErrNotFound) {
		return LoginResult{}, tweeter.ErrUnauthenticated
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !auth.CheckPassword(password, cred.HashedPassword) {
		return LoginResult{}, tweeter.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(cred.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("error issuing token: %w", err)
	}

	return LoginResult{UserID: cred.ID, Token: token}, nil
}

func (s UserService) Follow(ctx context.Context, userID, followID int64) error {
	_, err := s.follows.AddFollow(ctx, userID, followID)
	return err
}

func (s UserService) Unfollow(ctx context.Context, userID, followID int64) error {
	_, err := s.follows.RemoveFollow(ctx, userID, followID)
	return err
}
