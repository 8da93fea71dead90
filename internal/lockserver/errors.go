package lockserver

import (
	"context"

	"github.com/jayteealao/cylclockd/internal/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFor converts broker errors into gRPC status errors.
func statusFor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrInvalidLockKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errors.ErrResourceLocked):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, errors.ErrLockNotHeld):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
