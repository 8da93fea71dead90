package lockserver

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a remote handle to a lock server. Errors from the server or
// the transport are returned exactly as gRPC reports them.
type Client struct {
	cc     *grpc.ClientConn
	client LockServerClient
	addr   string
}

// Dial creates a handle for the lock server at address. No connection is
// made until the first call, so an unreachable server surfaces there.
func Dial(address string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	cc, err := grpc.NewClient("passthrough:///"+address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create lock server client for %s: %w", address, err)
	}
	return &Client{cc: cc, client: NewLockServerClient(cc), addr: address}, nil
}

// Address returns the address this handle was created for.
func (c *Client) Address() string {
	return c.addr
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) Dump(ctx context.Context) (*structpb.Value, error) {
	return c.client.Dump(ctx, &emptypb.Empty{})
}

func (c *Client) Clear(ctx context.Context) (*structpb.Value, error) {
	return c.client.Clear(ctx, &emptypb.Empty{})
}

func (c *Client) GetFilenames(ctx context.Context) ([]string, error) {
	list, err := c.client.GetFilenames(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		names = append(names, v.GetStringValue())
	}
	return names, nil
}

func (c *Client) LockTask(ctx context.Context, id string) error {
	_, err := c.client.LockTask(ctx, wrapperspb.String(id))
	return err
}

func (c *Client) UnlockTask(ctx context.Context, id string) error {
	_, err := c.client.UnlockTask(ctx, wrapperspb.String(id))
	return err
}

func (c *Client) LockFile(ctx context.Context, path string) error {
	_, err := c.client.LockFile(ctx, wrapperspb.String(path))
	return err
}

func (c *Client) UnlockFile(ctx context.Context, path string) error {
	_, err := c.client.UnlockFile(ctx, wrapperspb.String(path))
	return err
}

// AcquireFile blocks until the file lock is granted or ctx ends.
// Callers should set a deadline.
func (c *Client) AcquireFile(ctx context.Context, path string) error {
	_, err := c.client.AcquireFile(ctx, wrapperspb.String(path))
	return err
}
