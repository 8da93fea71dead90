// Package naming resolves composite object names to network addresses
// through the cylclockd nameserver.
package naming

import (
	"context"
	"net"
	"strconv"
	"strings"
)

// The group and object name the lock server registers under. Clients
// and the lock server daemon must agree on both or resolution fails.
const (
	GroupName  = "cylclockd"
	ObjectName = "broker"
)

const (
	// DefaultHost is used when no nameserver host is supplied.
	DefaultHost = "localhost"
	// DefaultPort is the nameserver port appended to hosts given without one.
	DefaultPort = 9090
)

// Resolver looks up the address registered under name at the nameserver on host.
// An empty host selects DefaultHost.
type Resolver interface {
	Resolve(ctx context.Context, host, name string) (string, error)
}

// Registrar announces and withdraws names at a nameserver.
type Registrar interface {
	Register(ctx context.Context, host, name, address string) (string, error)
	Unregister(ctx context.Context, host, name string) error
}

// CompositeName joins a group and object name into a registry key.
func CompositeName(group, object string) string {
	return group + "." + object
}

// LockServerName is the composite name of the lock server.
func LockServerName() string {
	return CompositeName(GroupName, ObjectName)
}

// Target turns a host identifier into a dialable host:port.
func Target(host string) string {
	if host == "" {
		host = DefaultHost
	}
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	// JoinHostPort adds its own brackets to IPv6 literals.
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(DefaultPort))
}
