// Package validate provides input validation for cylclockd.
package validate

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/jayteealao/cylclockd/internal/errors"
)

// segmentRegex validates one dot-separated segment of a composite name.
// Must start with an alphanumeric, then alphanumerics, '-' or '_' (1-64 chars).
var segmentRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// Segment validates a single group or object name.
func Segment(name string) error {
	if name == "" {
		return errors.ErrInvalidName
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("%w: segment may not contain '.'", errors.ErrInvalidName)
	}
	if !segmentRegex.MatchString(name) {
		return errors.ErrInvalidName
	}
	return nil
}

// CompositeName validates a "group.object" lookup key.
// Both halves must be valid segments.
func CompositeName(name string) error {
	group, object, ok := strings.Cut(name, ".")
	if !ok {
		return fmt.Errorf("%w: %q is not of the form group.object", errors.ErrInvalidName, name)
	}
	if err := Segment(group); err != nil {
		return err
	}
	return Segment(object)
}

// Host validates a nameserver host identifier, with or without a port.
// An empty host is valid and means "use the default".
func Host(host string) error {
	if host == "" {
		return nil
	}
	if strings.ContainsAny(host, " \t\r\n/") {
		return fmt.Errorf("%w: %q contains invalid characters", errors.ErrInvalidAddress, host)
	}
	if h, port, err := net.SplitHostPort(host); err == nil {
		if h == "" {
			return fmt.Errorf("%w: missing host in %q", errors.ErrInvalidAddress, host)
		}
		return Port(port)
	}
	if strings.HasPrefix(host, "[") || strings.HasSuffix(host, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
		if !strings.HasPrefix(host, "[") || !strings.HasSuffix(host, "]") || net.ParseIP(inner) == nil {
			return fmt.Errorf("%w: malformed IPv6 literal %q", errors.ErrInvalidAddress, host)
		}
	}
	return nil
}

// Address validates a dialable host:port address.
func Address(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: address cannot be empty", errors.ErrInvalidAddress)
	}
	h, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidAddress, err)
	}
	if h == "" {
		return fmt.Errorf("%w: missing host in %q", errors.ErrInvalidAddress, addr)
	}
	return Port(port)
}

// Port validates a numeric TCP port in 1-65535.
func Port(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: bad port %q", errors.ErrInvalidAddress, port)
	}
	return nil
}
