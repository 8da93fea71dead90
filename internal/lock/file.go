// Package lock provides named file-based locking with PID-based stale detection.
package lock

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/jayteealao/cylclockd/internal/errors"
)

// Lock represents a held file lock for a key.
type Lock struct {
	flock    *flock.Flock
	pidFile  string
	lockPath string
	key      string
}

// Manager manages named locks under a single directory.
type Manager struct {
	lockDir string
}

// NewManager creates a new lock manager rooted at <dataDir>/locks.
func NewManager(dataDir string) (*Manager, error) {
	lockDir := filepath.Join(dataDir, "locks")
	if err := os.MkdirAll(lockDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	return &Manager{lockDir: lockDir}, nil
}

// Dir returns the directory holding lock and PID files.
func (m *Manager) Dir() string {
	return m.lockDir
}

// Acquire attempts to acquire the lock for key, polling until ctx is done.
// It will check for stale locks and remove them before attempting to acquire.
func (m *Manager) Acquire(ctx context.Context, key string) (*Lock, error) {
	lockPath, pidFile, err := m.paths(key)
	if err != nil {
		return nil, err
	}

	if err := m.cleanStaleLock(pidFile, lockPath); err != nil {
		return nil, err
	}

	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		if pid, err := readPIDFile(pidFile); err == nil {
			return nil, fmt.Errorf("%w: held by PID %d", errors.ErrResourceLocked, pid)
		}
		return nil, errors.ErrResourceLocked
	}

	if err := writePIDFile(pidFile); err != nil {
		fl.Unlock()
		return nil, fmt.Errorf("failed to write PID file: %w", err)
	}

	return &Lock{
		flock:    fl,
		pidFile:  pidFile,
		lockPath: lockPath,
		key:      key,
	}, nil
}

// TryAcquire attempts to acquire a lock without waiting.
// Returns nil if lock cannot be acquired immediately.
func (m *Manager) TryAcquire(key string) (*Lock, error) {
	lockPath, pidFile, err := m.paths(key)
	if err != nil {
		return nil, err
	}

	if err := m.cleanStaleLock(pidFile, lockPath); err != nil {
		return nil, err
	}

	fl := flock.New(lockPath)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to try lock: %w", err)
	}
	if !locked {
		return nil, nil // Lock not acquired, but no error
	}

	if err := writePIDFile(pidFile); err != nil {
		fl.Unlock()
		return nil, fmt.Errorf("failed to write PID file: %w", err)
	}

	return &Lock{
		flock:    fl,
		pidFile:  pidFile,
		lockPath: lockPath,
		key:      key,
	}, nil
}

// IsLocked checks if key is currently locked by any process.
func (m *Manager) IsLocked(key string) (bool, int, error) {
	lockPath, pidFile, err := m.paths(key)
	if err != nil {
		return false, 0, err
	}

	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		return false, 0, nil
	}

	fl := flock.New(lockPath)

	// flock locks are per open file description, so this also
	// reports locks held by this process through another handle.
	locked, err := fl.TryLock()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check lock: %w", err)
	}

	if locked {
		fl.Unlock()
		return false, 0, nil
	}

	pid, err := readPIDFile(pidFile)
	if err != nil {
		return true, 0, nil // Locked but unknown PID
	}

	return true, pid, nil
}

// paths maps a key onto its lock and PID file paths.
// Keys may be arbitrary strings such as absolute file paths.
func (m *Manager) paths(key string) (string, string, error) {
	if strings.TrimSpace(key) == "" {
		return "", "", errors.ErrInvalidLockKey
	}
	name := url.PathEscape(key)
	if name == "." || name == ".." {
		return "", "", fmt.Errorf("%w: %q", errors.ErrInvalidLockKey, key)
	}
	return filepath.Join(m.lockDir, name+".lock"), filepath.Join(m.lockDir, name+".pid"), nil
}

// cleanStaleLock checks if an existing lock is stale and removes it.
func (m *Manager) cleanStaleLock(pidFile, lockPath string) error {
	pid, err := readPIDFile(pidFile)
	if err != nil {
		return nil
	}

	if isProcessRunning(pid) {
		return nil
	}

	os.Remove(pidFile)
	os.Remove(lockPath)
	return nil
}

// Release releases the lock. The lock file itself is left in place so
// that waiters blocked on it and new acquirers contend on the same inode.
func (l *Lock) Release() error {
	os.Remove(l.pidFile)

	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}

// Key returns the key this lock was acquired for.
func (l *Lock) Key() string {
	return l.key
}

// writePIDFile writes the current process PID to the given file.
func writePIDFile(path string) error {
	pid := os.Getpid()
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0644)
}

// readPIDFile reads a PID from the given file.
func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, err
	}
	return pid, nil
}

// isProcessRunning checks if a process with the given PID is running.
func isProcessRunning(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// On Unix, FindProcess always succeeds; signal 0 probes for existence.
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}

	errStr := err.Error()
	if strings.Contains(errStr, "process already finished") ||
		strings.Contains(errStr, "no such process") ||
		strings.Contains(errStr, "Access is denied") {
		return false
	}

	// If we can't determine, assume it's running
	return true
}
