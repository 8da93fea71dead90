// Package lockserver implements the cylclockd lock server: a broker that
// holds task and file locks, its gRPC service, and the remote handle
// clients use to reach it.
package lockserver

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jayteealao/cylclockd/internal/errors"
	"github.com/jayteealao/cylclockd/internal/lock"
)

const (
	taskPrefix = "task:"
	filePrefix = "file:"
)

// Snapshot is the broker's view of held locks.
type Snapshot struct {
	Tasks     []string
	Filenames []string
}

// ClearResult reports how many locks Clear released.
type ClearResult struct {
	Tasks     int
	Filenames int
}

// Broker tracks task and file locks held on behalf of clients.
// It is safe for concurrent use.
type Broker struct {
	mu    sync.Mutex
	locks lock.LockOperations
	tasks map[string]*lock.Lock
	files map[string]*lock.Lock
}

// NewBroker creates a broker that takes its locks from locks.
func NewBroker(locks lock.LockOperations) *Broker {
	return &Broker{
		locks: locks,
		tasks: make(map[string]*lock.Lock),
		files: make(map[string]*lock.Lock),
	}
}

// LockTask locks a task ID.
func (b *Broker) LockTask(id string) error {
	return b.acquire(b.tasks, taskPrefix, id)
}

// UnlockTask releases a task ID lock.
func (b *Broker) UnlockTask(id string) error {
	return b.release(b.tasks, id)
}

// LockFile locks a filename.
func (b *Broker) LockFile(path string) error {
	return b.acquire(b.files, filePrefix, path)
}

// AcquireFile locks a filename, waiting until the current holder releases
// it or ctx is done. The broker mutex is not held while waiting.
func (b *Broker) AcquireFile(ctx context.Context, path string) error {
	if path == "" {
		return errors.ErrInvalidLockKey
	}

	l, err := b.locks.Acquire(ctx, filePrefix+path)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.files[path]; ok {
		l.Release()
		return fmt.Errorf("%w: %s", errors.ErrResourceLocked, path)
	}

	b.files[path] = l
	return nil
}

// UnlockFile releases a filename lock.
func (b *Broker) UnlockFile(path string) error {
	return b.release(b.files, path)
}

// Filenames returns the locked filenames in sorted order.
func (b *Broker) Filenames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return sortedKeys(b.files)
}

// Dump returns the locked task IDs and filenames.
func (b *Broker) Dump() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Tasks:     sortedKeys(b.tasks),
		Filenames: sortedKeys(b.files),
	}
}

// Clear releases every held lock. Locks that fail to release are still
// forgotten; their errors are joined into the returned error.
func (b *Broker) Clear() (ClearResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	result := ClearResult{Tasks: len(b.tasks), Filenames: len(b.files)}

	for _, held := range []map[string]*lock.Lock{b.tasks, b.files} {
		for key, l := range held {
			if err := l.Release(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
			delete(held, key)
		}
	}

	return result, stderrors.Join(errs...)
}

func (b *Broker) acquire(held map[string]*lock.Lock, prefix, key string) error {
	if key == "" {
		return errors.ErrInvalidLockKey
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := held[key]; ok {
		return fmt.Errorf("%w: %s", errors.ErrResourceLocked, key)
	}

	l, err := b.locks.TryAcquire(prefix + key)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: %s", errors.ErrResourceLocked, key)
	}

	held[key] = l
	return nil
}

func (b *Broker) release(held map[string]*lock.Lock, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := held[key]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrLockNotHeld, key)
	}
	delete(held, key)
	return l.Release()
}

func sortedKeys(m map[string]*lock.Lock) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
