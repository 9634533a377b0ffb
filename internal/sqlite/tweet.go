package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"tweeter/internal/tweeter"
)

func (r Repo) InsertTweet(ctx context.Context, userID int64, body string) (int64, error) {
	const q = `INSERT INTO tweets (user_id, tweet) VALUES (?, ?);`

	res, err := r.db.ExecContext(ctx, q, userID, body)
	if err != nil {
		return 0, fmt.Errorf("error inserting tweet: %w", err)
	}

	return res.RowsAffected()
}

// Timeline selects the user's own tweets and those of every author they
// currently follow. Ordered by tweet id so the result is deterministic
// insertion order.
func (r Repo) Timeline(ctx context.Context, userID int64) ([]tweeter.TimelineEntry, error) {
	q := sq.Select("user_id", "tweet").
		From("tweets").
		Where(sq.Or{
			sq.Eq{"user_id": userID},
			sq.Expr("user_id IN (SELECT follow_user_id FROM users_follow_list WHERE user_id = ?)", userID),
		}).
		OrderBy("id ASC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error generating SQL query: %s", err)
	}

	entries := []tweeter.TimelineEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("error selecting timeline: %s", err)
	}

	return entries, nil
}
