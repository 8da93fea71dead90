package lock

import "context"

// LockOperations defines the interface for named lock management.
type LockOperations interface {
	Acquire(ctx context.Context, key string) (*Lock, error)
	TryAcquire(key string) (*Lock, error)
	IsLocked(key string) (bool, int, error)
}

// Ensure Manager implements LockOperations
var _ LockOperations = (*Manager)(nil)
