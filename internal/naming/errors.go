package naming

import (
	"fmt"

	"github.com/jayteealao/cylclockd/internal/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapRPC converts nameserver status errors into sentinel errors.
func mapRPC(target string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", errors.ErrNameNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w at %s: %s", errors.ErrNameserverUnreachable, target, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", errors.ErrInvalidName, st.Message())
	default:
		return err
	}
}

// statusFor converts registry and validation errors into gRPC status errors.
func statusFor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrNameNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errors.ErrInvalidName), errors.Is(err, errors.ErrInvalidAddress):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
