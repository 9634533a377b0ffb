package service

import (
	"context"
	"unicode/utf8"

	"tweeter/internal/tweeter"
)

type TweetService struct {
	tweets tweeter.TweetRepo
}

func NewTweetService(tweets tweeter.TweetRepo) TweetService {
	return TweetService{tweets: tweets}
}

// Post stores a new tweet. Bodies over the limit are rejected before
// anything touches the database.
func (s TweetService) Post(ctx context.Context, userID int64, body string) error {
	if utf8.RuneCountInString(body) > tweeter.MaxTweetRunes {
		return tweeter.ErrTweetTooLong
	}

	_, err := s.tweets.InsertTweet(ctx, userID, body)
	return err
}

// Timeline is the user's own tweets plus everyone they follow, computed
// live from the current follow edges.
func (s TweetService) Timeline(ctx context.Context, userID int64) ([]tweeter.TimelineEntry, error) {
	return s.tweets.Timeline(ctx, userID)
}
