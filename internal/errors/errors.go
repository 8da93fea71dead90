// Package errors provides sentinel errors for cylclockd operations.
package errors

import "errors"

// Naming errors
var (
	// ErrNameNotFound indicates the composite name is not registered with the nameserver.
	ErrNameNotFound = errors.New("name not registered with nameserver")

	// ErrNameserverUnreachable indicates the nameserver could not be contacted.
	ErrNameserverUnreachable = errors.New("nameserver unreachable")

	// ErrInvalidName indicates a group or object name does not match validation rules.
	ErrInvalidName = errors.New("invalid name: must be alphanumeric with '-' or '_', 1-64 characters per segment")

	// ErrInvalidAddress indicates a host or host:port value is malformed.
	ErrInvalidAddress = errors.New("invalid address")
)

// Lock errors
var (
	// ErrResourceLocked indicates the task or file is already locked.
	ErrResourceLocked = errors.New("resource is locked by another holder")

	// ErrLockNotHeld indicates a release was requested for a lock that is not held.
	ErrLockNotHeld = errors.New("lock not held")

	// ErrInvalidLockKey indicates an empty or otherwise unusable lock key.
	ErrInvalidLockKey = errors.New("invalid lock key")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
