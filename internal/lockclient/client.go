// Package lockclient is the client-side proxy for the cylclockd lock server.
//
// A Client resolves the lock server's composite name through the nameserver
// once, at construction, and then forwards Dump, Clear and GetFilenames to the
// resolved handle. Errors from resolution and from remote calls are returned
// unchanged: whether failing to reach the lock server is fatal is up to the
// caller, since some callers can run without it.
package lockclient

import (
	"context"

	"github.com/jayteealao/cylclockd/internal/lockserver"
	"github.com/jayteealao/cylclockd/internal/naming"
	"google.golang.org/protobuf/types/known/structpb"
)

// Handle is a resolved reference to a remote lock server.
type Handle interface {
	Dump(ctx context.Context) (*structpb.Value, error)
	Clear(ctx context.Context) (*structpb.Value, error)
	GetFilenames(ctx context.Context) ([]string, error)
}

// Dialer turns a resolved address into a Handle.
type Dialer func(address string) (Handle, error)

var _ Handle = (*lockserver.Client)(nil)

// Client forwards calls to a lock server located by name.
type Client struct {
	handle Handle
}

type options struct {
	resolver naming.Resolver
	dial     Dialer
}

// Option configures New.
type Option func(*options)

// WithResolver replaces the default gRPC nameserver resolver.
func WithResolver(r naming.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithDialer replaces the default gRPC lock server dialer.
func WithDialer(d Dialer) Option {
	return func(o *options) { o.dial = d }
}

// New resolves the lock server through the nameserver on host and returns a
// client bound to it. An empty host leaves the choice to the resolver.
func New(ctx context.Context, host string, opts ...Option) (*Client, error) {
	o := options{
		resolver: naming.NewResolver(),
		dial:     dialLockServer,
	}
	for _, opt := range opts {
		opt(&o)
	}

	name := naming.CompositeName(naming.GroupName, naming.ObjectName)

	addr, err := o.resolver.Resolve(ctx, host, name)
	if err != nil {
		return nil, err
	}

	handle, err := o.dial(addr)
	if err != nil {
		return nil, err
	}

	return &Client{handle: handle}, nil
}

// Get returns the resolved handle. It makes no remote call.
func (c *Client) Get() Handle {
	return c.handle
}

// Dump forwards to the lock server's Dump.
func (c *Client) Dump(ctx context.Context) (*structpb.Value, error) {
	return c.handle.Dump(ctx)
}

// Clear forwards to the lock server's Clear.
func (c *Client) Clear(ctx context.Context) (*structpb.Value, error) {
	return c.handle.Clear(ctx)
}

// GetFilenames forwards to the lock server's GetFilenames.
func (c *Client) GetFilenames(ctx context.Context) ([]string, error) {
	return c.handle.GetFilenames(ctx)
}

func dialLockServer(address string) (Handle, error) {
	return lockserver.Dial(address)
}
