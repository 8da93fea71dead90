package lockserver

import (
	"context"
	"testing"
	"time"

	"github.com/jayteealao/cylclockd/internal/errors"
	"github.com/jayteealao/cylclockd/internal/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBroker(t *testing.T) (*Broker, *lock.Manager) {
	t.Helper()

	manager, err := lock.NewManager(t.TempDir())
	require.NoError(t, err)

	return NewBroker(manager), manager
}

func TestBroker_TaskLocks(t *testing.T) {
	broker, manager := setupTestBroker(t)

	t.Run("lock and unlock task", func(t *testing.T) {
		require.NoError(t, broker.LockTask("foo.2010010100"))

		locked, _, err := manager.IsLocked(taskPrefix + "foo.2010010100")
		require.NoError(t, err)
		assert.True(t, locked)

		require.NoError(t, broker.UnlockTask("foo.2010010100"))

		locked, _, err = manager.IsLocked(taskPrefix + "foo.2010010100")
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("second lock on same task conflicts", func(t *testing.T) {
		require.NoError(t, broker.LockTask("bar.1"))
		defer broker.UnlockTask("bar.1")

		err := broker.LockTask("bar.1")
		assert.ErrorIs(t, err, errors.ErrResourceLocked)
	})

	t.Run("unlock of unheld task", func(t *testing.T) {
		err := broker.UnlockTask("never.1")
		assert.ErrorIs(t, err, errors.ErrLockNotHeld)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		assert.ErrorIs(t, broker.LockTask(""), errors.ErrInvalidLockKey)
	})
}

func TestBroker_FileLocks(t *testing.T) {
	broker, _ := setupTestBroker(t)

	require.NoError(t, broker.LockFile("/data/b.nc"))
	require.NoError(t, broker.LockFile("/data/a.nc"))

	assert.Equal(t, []string{"/data/a.nc", "/data/b.nc"}, broker.Filenames())

	err := broker.LockFile("/data/a.nc")
	assert.ErrorIs(t, err, errors.ErrResourceLocked)

	require.NoError(t, broker.UnlockFile("/data/a.nc"))
	assert.Equal(t, []string{"/data/b.nc"}, broker.Filenames())

	assert.ErrorIs(t, broker.UnlockFile("/data/a.nc"), errors.ErrLockNotHeld)
}

func TestBroker_TaskAndFileNamespacesAreSeparate(t *testing.T) {
	broker, _ := setupTestBroker(t)

	require.NoError(t, broker.LockTask("same"))
	require.NoError(t, broker.LockFile("same"))

	snap := broker.Dump()
	assert.Equal(t, []string{"same"}, snap.Tasks)
	assert.Equal(t, []string{"same"}, snap.Filenames)
}

func TestBroker_DumpAndClear(t *testing.T) {
	broker, manager := setupTestBroker(t)

	snap := broker.Dump()
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Filenames)

	require.NoError(t, broker.LockTask("a.1"))
	require.NoError(t, broker.LockTask("b.1"))
	require.NoError(t, broker.LockFile("/x.lock"))

	snap = broker.Dump()
	assert.Equal(t, []string{"a.1", "b.1"}, snap.Tasks)
	assert.Equal(t, []string{"/x.lock"}, snap.Filenames)

	result, err := broker.Clear()
	require.NoError(t, err)
	assert.Equal(t, ClearResult{Tasks: 2, Filenames: 1}, result)

	snap = broker.Dump()
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Filenames)

	locked, _, err := manager.IsLocked(filePrefix + "/x.lock")
	require.NoError(t, err)
	assert.False(t, locked)

	// Everything is free again.
	require.NoError(t, broker.LockTask("a.1"))
}

func TestBroker_AcquireFile(t *testing.T) {
	broker, _ := setupTestBroker(t)

	t.Run("free file is taken immediately", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, broker.AcquireFile(ctx, "/data/free.nc"))
		assert.Contains(t, broker.Filenames(), "/data/free.nc")
		require.NoError(t, broker.UnlockFile("/data/free.nc"))
	})

	t.Run("waits for the holder to unlock", func(t *testing.T) {
		require.NoError(t, broker.LockFile("/data/busy.nc"))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		done := make(chan error, 1)
		go func() { done <- broker.AcquireFile(ctx, "/data/busy.nc") }()

		time.Sleep(200 * time.Millisecond)
		select {
		case err := <-done:
			t.Fatalf("AcquireFile returned before unlock: %v", err)
		default:
		}

		require.NoError(t, broker.UnlockFile("/data/busy.nc"))
		require.NoError(t, <-done)
		assert.Equal(t, []string{"/data/busy.nc"}, broker.Filenames())

		// Held again, so a non-blocking lock conflicts.
		assert.ErrorIs(t, broker.LockFile("/data/busy.nc"), errors.ErrResourceLocked)
		require.NoError(t, broker.UnlockFile("/data/busy.nc"))
	})

	t.Run("gives up when the context expires", func(t *testing.T) {
		require.NoError(t, broker.LockFile("/data/held.nc"))
		defer broker.UnlockFile("/data/held.nc")

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := broker.AcquireFile(ctx, "/data/held.nc")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("empty path rejected", func(t *testing.T) {
		assert.ErrorIs(t, broker.AcquireFile(context.Background(), ""), errors.ErrInvalidLockKey)
	})
}
