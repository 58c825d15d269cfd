package activity

import (
	"context"
	"errors"
	"iter"
)

var ErrDuplicateActivity = errors.New("activity already exists")

// Store is the append-only activity log. Add is a single atomic write; List
// is lazy and yields records ordered by timestamp (then id) descending.
type Store interface {
	Add(ctx context.Context, activity *Activity) error
	List(ctx context.Context, userID string, filter Filter) iter.Seq2[*Activity, error]
}
