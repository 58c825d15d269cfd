package activity

import (
	"context"
	"iter"
	"slices"
	"sync"
)

// MemoryStore keeps activities in memory, one log per user. Writes to a
// user log are exclusive, reads run concurrently.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*userLog
}

type userLog struct {
	mu sync.RWMutex
	// sorted, newest first
	activities []*Activity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*userLog),
	}
}

func (s *MemoryStore) userLog(userID string, create bool) *userLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	ul, ok := s.users[userID]
	if !ok && create {
		ul = &userLog{}
		s.users[userID] = ul
	}
	return ul
}

func (s *MemoryStore) Add(ctx context.Context, activity *Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ul := s.userLog(activity.UserID, true)
	ul.mu.Lock()
	defer ul.mu.Unlock()

	stored := activity.clone()
	idx, found := slices.BinarySearchFunc(ul.activities, stored, newerFirst)
	if found {
		return ErrDuplicateActivity
	}
	ul.activities = slices.Insert(ul.activities, idx, stored)
	return nil
}

// List takes a snapshot of the matching records when ranged, so the caller
// never holds the user lock while consuming the sequence.
func (s *MemoryStore) List(ctx context.Context, userID string, filter Filter) iter.Seq2[*Activity, error] {
	return func(yield func(*Activity, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}

		ul := s.userLog(userID, false)
		if ul == nil {
			return
		}

		ul.mu.RLock()
		snapshot := make([]*Activity, 0, len(ul.activities))
		for _, a := range ul.activities {
			if filter.Matches(a) {
				snapshot = append(snapshot, a.clone())
			}
		}
		ul.mu.RUnlock()

		for _, a := range snapshot {
			if !yield(a, nil) {
				return
			}
		}
	}
}
