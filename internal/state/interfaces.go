package state

import "context"

// Registry defines the name registry operations backing the nameserver.
type Registry interface {
	Close() error

	Register(ctx context.Context, name, address string) (*Entry, error)
	Lookup(ctx context.Context, name string) (*Entry, error)
	Unregister(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Entry, error)
}

// Ensure Store implements Registry
var _ Registry = (*Store)(nil)
