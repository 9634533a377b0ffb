package sqlite

import (
	"context"
	"fmt"
)

// AddFollow records that userID follows followID. The composite primary
// key plus OR IGNORE makes re-following a no-op, so duplicate edges never
// accumulate.
func (r Repo) AddFollow(ctx context.Context, userID, followID int64) (int64, error) {
	const q = `INSERT OR IGNORE INTO users_follow_list (user_id, follow_user_id) VALUES (?, ?);`

	res, err := r.db.ExecContext(ctx, q, userID, followID)
	if err != nil {
		return 0, fmt.Errorf("error inserting follow edge: %w", err)
	}

	return res.RowsAffected()
}

func (r Repo) RemoveFollow(ctx context.Context, userID, followID int64) (int64, error) {
	const q = `DELETE FROM users_follow_list WHERE user_id = ? AND follow_user_id = ?;`

	res, err := r.db.ExecContext(ctx, q, userID, followID)
	if err != nil {
		return 0, fmt.Errorf("error deleting follow edge: %w", err)
	}

	return res.RowsAffected()
}
