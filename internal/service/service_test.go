package service

import (
	"context"

	"tweeter/internal/tweeter"
)

// An in-memory stand-in for the sqlite repositories.
type fakeRepo struct {
	users   []tweeter.User
	hashes  map[string]string // email -> hash
	follows map[[2]int64]bool
	tweets  []tweeter.Tweet
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hashes:  map[string]string{},
		follows: map[[2]int64]bool{},
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, name, email, profile, hashedPassword string) (int64, error) {
	for _, u := range f.users {
		if u.Email == email {
			return 0, tweeter.ErrConflict
		}
	}

	id := int64(len(f.users) + 1)
	f.users = append(f.users, tweeter.User{ID: id, Name: name, Email: email, Profile: profile})
	f.hashes[email] = hashedPassword
	return id, nil
}

func (f *fakeRepo) User(_ context.Context, id int64) (tweeter.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return tweeter.User{}, tweeter.ErrNotFound
}

func (f *fakeRepo) CredentialByEmail(_ context.Context, email string) (tweeter.Credential, error) {
	hash, ok := f.hashes[email]
	if !ok {
		return tweeter.Credential{}, tweeter.ErrNotFound
	}
	for _, u := range f.users {
		if u.Email == email {
			return tweeter.Credential{ID: u.ID, HashedPassword: hash}, nil
		}
	}
	return tweeter.Credential{}, tweeter.ErrNotFound
}

func (f *fakeRepo) AddFollow(_ context.Context, userID, followID int64) (int64, error) {
	key := [2]int64{userID, followID}
	if f.follows[key] {
		return 0, nil
	}
	f.follows[key] = true
	return 1, nil
}

func (f *fakeRepo) RemoveFollow(_ context.Context, userID, followID int64) (int64, error) {
	key := [2]int64{userID, followID}
	if !f.follows[key] {
		return 0, nil
	}
	delete(f.follows, key)
	return 1, nil
}

func (f *fakeRepo) InsertTweet(_ context.Context, userID int64, body string) (int64, error) {
	f.tweets = append(f.tweets, tweeter.Tweet{
		ID:     int64(len(f.tweets) + 1),
		UserID: userID,
		Tweet:  body,
	})
	return 1, nil
}

func (f *fakeRepo) Timeline(_ context.Context, userID int64) ([]tweeter.TimelineEntry, error) {
	entries := []tweeter.TimelineEntry{}
	for _, tw := range f.tweets {
		if tw.UserID == userID || f.follows[[2]int64{userID, tw.UserID}] {
			entries = append(entries, tweeter.TimelineEntry{UserID: tw.UserID, Tweet: tw.Tweet})
		}
	}
	return entries, nil
}
