package validate

import (
	"strings"
	"testing"

	"github.com/jayteealao/cylclockd/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "broker", false},
		{"with hyphen", "cylc-lockd", false},
		{"with underscore", "lock_server", false},
		{"single char", "a", false},
		{"uppercase allowed", "Broker", false},
		{"empty", "", true},
		{"contains dot", "a.b", true},
		{"leading hyphen", "-broker", true},
		{"space", "lock server", true},
		{"slash", "a/b", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Segment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompositeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "cylclockd.broker", false},
		{"no separator", "cylclockd", true},
		{"empty group", ".broker", true},
		{"empty object", "cylclockd.", true},
		{"extra dot", "cylclockd.broker.x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompositeName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means default", "", false},
		{"hostname", "nameserver.local", false},
		{"host and port", "localhost:9090", false},
		{"ip and port", "10.0.0.5:9090", false},
		{"bad port", "localhost:notaport", true},
		{"port out of range", "localhost:70000", true},
		{"missing host", ":9090", true},
		{"slash", "localhost/x", true},
		{"bracketed ipv6 without port", "[::1]", false},
		{"bracketed ipv6 with port", "[::1]:9090", false},
		{"unclosed bracket", "[::1", true},
		{"brackets around hostname", "[nameserver]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Host(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidAddress)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	assert.NoError(t, Address("127.0.0.1:7766"))
	assert.ErrorIs(t, Address(""), errors.ErrInvalidAddress)
	assert.ErrorIs(t, Address("localhost"), errors.ErrInvalidAddress)
	assert.ErrorIs(t, Address(":7766"), errors.ErrInvalidAddress)
	assert.ErrorIs(t, Address("localhost:0"), errors.ErrInvalidAddress)
}
