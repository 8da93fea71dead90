package cmd

import (
	"fmt"
	"net"
	"strconv"

	"github.com/jayteealao/cylclockd/internal/logging"
	"github.com/jayteealao/cylclockd/internal/naming"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

var nameserverCmd = &cobra.Command{
	Use:   "nameserver",
	Short: "Run the nameserver",
	Long: `Run the nameserver that maps composite names such as "cylclockd.broker"
to network addresses.

Registrations are stored in <data-dir>/registry.db and survive restarts.`,
	Args: cobra.NoArgs,
	RunE: runNameserver,
}

var nameserverListenFlag string

func init() {
	rootCmd.AddCommand(nameserverCmd)

	nameserverCmd.Flags().StringVar(&nameserverListenFlag, "listen", net.JoinHostPort("", strconv.Itoa(naming.DefaultPort)), "listen address")
}

func runNameserver(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := initStore()
	if err != nil {
		return err
	}
	defer store.Close()

	lis, err := net.Listen("tcp", nameserverListenFlag)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", nameserverListenFlag, err)
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(logging.UnaryServerInterceptor(logger)))
	naming.RegisterNameServerServer(srv, naming.NewServer(store, logger))

	logger.Info("nameserver listening",
		zap.String("address", lis.Addr().String()),
		zap.String("data_dir", store.DataDir()))

	return serveGRPC(ctx, srv, lis)
}
