package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweeter/internal/tweeter"
)

func TestPost_WithinLimit(t *testing.T) {
	var (
		ctx  = context.Background()
		repo = newFakeRepo()
		svc  = NewTweetService(repo)
	)

	require.NoError(t, svc.Post(ctx, 1, strings.Repeat("a", 300)))

	got, err := svc.Timeline(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].UserID)
}

func TestPost_TooLong(t *testing.T) {
	var (
		ctx  = context.Background()
		repo = newFakeRepo()
		svc  = NewTweetService(repo)
	)

	err := svc.Post(ctx, 1, strings.Repeat("a", 301))
	require.ErrorIs(t, err, tweeter.ErrTweetTooLong)

	// Nothing was persisted
	assert.Empty(t, repo.tweets)
}

func TestPost_LimitCountsRunes(t *testing.T) {
	var (
		ctx  = context.Background()
		repo = newFakeRepo()
		svc  = NewTweetService(repo)
	)

	// 300 multibyte characters is within the limit even though the byte
	// count is far beyond it
	require.NoError(t, svc.Post(ctx, 1, strings.Repeat("한", 300)))
	require.ErrorIs(t, svc.Post(ctx, 1, strings.Repeat("한", 301)), tweeter.ErrTweetTooLong)
}

func TestTimeline_EmptyForNewUser(t *testing.T) {
	var (
		ctx  = context.Background()
		repo = newFakeRepo()
		svc  = NewTweetService(repo)
	)

	got, err := svc.Timeline(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
