package lock

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jayteealao/cylclockd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*Manager, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "cylclockd-lock-test-*")
	require.NoError(t, err)

	manager, err := NewManager(tmpDir)
	require.NoError(t, err)

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}

	return manager, cleanup
}

func TestManager_AcquireAndRelease(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("acquire and release lock", func(t *testing.T) {
		lock, err := manager.Acquire(ctx, "task-a.1")
		require.NoError(t, err)
		require.NotNil(t, lock)
		assert.Equal(t, "task-a.1", lock.Key())

		locked, _, err := manager.IsLocked("task-a.1")
		require.NoError(t, err)
		assert.True(t, locked)

		err = lock.Release()
		require.NoError(t, err)

		locked, _, err = manager.IsLocked("task-a.1")
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("acquire lock on different keys", func(t *testing.T) {
		lock1, err := manager.Acquire(ctx, "key-a")
		require.NoError(t, err)
		defer lock1.Release()

		lock2, err := manager.Acquire(ctx, "key-b")
		require.NoError(t, err)
		defer lock2.Release()

		locked1, _, _ := manager.IsLocked("key-a")
		locked2, _, _ := manager.IsLocked("key-b")
		assert.True(t, locked1)
		assert.True(t, locked2)
	})

	t.Run("file path keys are escaped inside the lock dir", func(t *testing.T) {
		key := "/home/user/cylc-run/suite/share/data.nc"
		lock, err := manager.Acquire(ctx, key)
		require.NoError(t, err)
		defer lock.Release()

		assert.Equal(t, key, lock.Key())
		assert.Equal(t, manager.Dir(), filepath.Dir(lock.lockPath))
	})
}

func TestManager_InvalidKey(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	for _, key := range []string{"", "   ", ".", ".."} {
		_, err := manager.TryAcquire(key)
		assert.ErrorIs(t, err, errors.ErrInvalidLockKey, "key %q", key)
	}
}

func TestManager_TryAcquire(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	t.Run("try acquire succeeds when not locked", func(t *testing.T) {
		lock, err := manager.TryAcquire("free-key")
		require.NoError(t, err)
		require.NotNil(t, lock)
		defer lock.Release()
	})

	t.Run("try acquire returns nil when locked", func(t *testing.T) {
		ctx := context.Background()
		lock1, err := manager.Acquire(ctx, "held-key")
		require.NoError(t, err)
		defer lock1.Release()

		lock2, err := manager.TryAcquire("held-key")
		require.NoError(t, err)
		assert.Nil(t, lock2)
	})
}

func TestManager_IsLocked(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("not locked initially", func(t *testing.T) {
		locked, pid, err := manager.IsLocked("nonexistent")
		require.NoError(t, err)
		assert.False(t, locked)
		assert.Equal(t, 0, pid)
	})

	t.Run("locked returns current pid", func(t *testing.T) {
		lock, err := manager.Acquire(ctx, "pid-test")
		require.NoError(t, err)
		defer lock.Release()

		locked, pid, err := manager.IsLocked("pid-test")
		require.NoError(t, err)
		assert.True(t, locked)
		assert.Equal(t, os.Getpid(), pid)
	})
}

func TestManager_StaleLockDetection(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	ctx := context.Background()
	key := "stale-test"

	lockPath := filepath.Join(manager.lockDir, key+".lock")
	pidFile := filepath.Join(manager.lockDir, key+".pid")

	// Use a very high PID that's unlikely to exist
	require.NoError(t, os.WriteFile(lockPath, []byte{}, 0644))
	require.NoError(t, os.WriteFile(pidFile, []byte("999999999"), 0644))

	lock, err := manager.Acquire(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, lock)
	lock.Release()
}

func TestManager_AcquireWaitsForRelease(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	key := "wait-test"

	holder, err := manager.TryAcquire(key)
	require.NoError(t, err)
	require.NotNil(t, holder)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	acquired := make(chan *Lock, 1)
	go func() {
		l, err := manager.Acquire(ctx, key)
		if err != nil {
			acquired <- nil
			return
		}
		acquired <- l
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, holder.Release())

	waiter := <-acquired
	require.NotNil(t, waiter)
	defer waiter.Release()

	// The waiter holds the same file a newcomer would open.
	_, err = os.Stat(waiter.lockPath)
	require.NoError(t, err)

	other, err := manager.TryAcquire(key)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestManager_ContextCancellation(t *testing.T) {
	manager, cleanup := setupTestManager(t)
	defer cleanup()

	key := "ctx-test"

	lock1, err := manager.TryAcquire(key)
	require.NoError(t, err)
	require.NotNil(t, lock1)
	defer lock1.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	lock2, err := manager.Acquire(ctx, key)
	assert.Error(t, err)
	assert.Nil(t, lock2)
}

func TestReadWritePIDFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pid-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	pidFile := filepath.Join(tmpDir, "test.pid")

	t.Run("write and read pid", func(t *testing.T) {
		err := writePIDFile(pidFile)
		require.NoError(t, err)

		pid, err := readPIDFile(pidFile)
		require.NoError(t, err)
		assert.Equal(t, os.Getpid(), pid)
	})

	t.Run("read non-existent file", func(t *testing.T) {
		_, err := readPIDFile(filepath.Join(tmpDir, "nonexistent.pid"))
		assert.Error(t, err)
	})
}
