package cmd

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jayteealao/cylclockd/internal/lockserver"
	"github.com/jayteealao/cylclockd/internal/logging"
	"github.com/jayteealao/cylclockd/internal/naming"
	"github.com/jayteealao/cylclockd/internal/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lock server",
	Long: `Run the lock server and register it with the nameserver as
"cylclockd.broker".

Locks are kept as flock files under <data-dir>/locks. On shutdown the
server unregisters itself and releases every lock it holds.

Examples:
  cylclockd serve
  cylclockd serve --listen 0.0.0.0:7766 --advertise lockhost:7766 --ns-host nshost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveListenFlag    string
	serveAdvertiseFlag string
)

// unregisterTimeout bounds the best-effort unregister on shutdown.
const unregisterTimeout = 5 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveListenFlag, "listen", "127.0.0.1:7766", "listen address")
	serveCmd.Flags().StringVar(&serveAdvertiseFlag, "advertise", "", "address registered with the nameserver (default: the listen address)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := validate.Host(getNSHost()); err != nil {
		return fmt.Errorf("invalid nameserver host: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	manager, err := initLockManager()
	if err != nil {
		return err
	}
	broker := lockserver.NewBroker(manager)

	lis, err := net.Listen("tcp", serveListenFlag)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", serveListenFlag, err)
	}

	advertise := serveAdvertiseFlag
	if advertise == "" {
		advertise = lis.Addr().String()
	}
	if err := validate.Address(advertise); err != nil {
		lis.Close()
		return fmt.Errorf("invalid advertise address: %w", err)
	}

	registrar := naming.NewResolver()
	name := naming.LockServerName()

	id, err := registrar.Register(ctx, getNSHost(), name, advertise)
	if err != nil {
		lis.Close()
		return fmt.Errorf("failed to register %s with nameserver: %w", name, err)
	}
	logger.Info("registered with nameserver",
		zap.String("name", name),
		zap.String("address", advertise),
		zap.String("id", id))

	defer func() {
		// ctx is already cancelled here
		uctx, cancel := context.WithTimeout(context.Background(), unregisterTimeout)
		defer cancel()
		if err := registrar.Unregister(uctx, getNSHost(), name); err != nil {
			logger.Warn("failed to unregister from nameserver", zap.Error(err))
		}

		result, err := broker.Clear()
		if err != nil {
			logger.Warn("failed to release some locks", zap.Error(err))
		}
		logger.Info("released locks",
			zap.Int("tasks", result.Tasks),
			zap.Int("filenames", result.Filenames))
	}()

	srv := grpc.NewServer(grpc.UnaryInterceptor(logging.UnaryServerInterceptor(logger)))
	lockserver.RegisterLockServerServer(srv, lockserver.NewServer(broker, logger))

	logger.Info("lock server listening",
		zap.String("address", lis.Addr().String()),
		zap.String("lock_dir", manager.Dir()))

	return serveGRPC(ctx, srv, lis)
}
