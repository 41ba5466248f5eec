package portfolio

import "sync"

// userLocks serializes mutating operations per user. The weighted-average
// math in the ledger is a read-modify-write, and a bulk replace racing a
// manual add would interleave badly without it.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (ul *userLocks) lock(userID string) func() {
	ul.mu.Lock()
	l, ok := ul.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		ul.locks[userID] = l
	}
	ul.mu.Unlock()

	l.Lock()
	return l.Unlock
}
