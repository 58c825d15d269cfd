package activity

import (
	"errors"
	"iter"
	"sync/atomic"
)

var ErrSequenceConsumed = errors.New("activity sequence already consumed")

// singleUse wraps seq so it can be ranged over only once. Any further
// range yields ErrSequenceConsumed.
func singleUse(seq iter.Seq2[*Activity, error]) iter.Seq2[*Activity, error] {
	var consumed atomic.Bool
	return func(yield func(*Activity, error) bool) {
		if consumed.Swap(true) {
			yield(nil, ErrSequenceConsumed)
			return
		}
		seq(yield)
	}
}

// Collect drains the sequence, stopping at the first error.
func Collect(seq iter.Seq2[*Activity, error]) ([]*Activity, error) {
	activities := make([]*Activity, 0)
	for a, err := range seq {
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func errSeq(err error) iter.Seq2[*Activity, error] {
	return func(yield func(*Activity, error) bool) {
		yield(nil, err)
	}
}
