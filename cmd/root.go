// Package cmd provides CLI commands for cylclockd.
package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jayteealao/cylclockd/internal/lock"
	"github.com/jayteealao/cylclockd/internal/logging"
	"github.com/jayteealao/cylclockd/internal/state"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Version is the current version of cylclockd.
// Can be overridden at build time: go build -ldflags "-X github.com/jayteealao/cylclockd/cmd.Version=v1.0.0"
var Version = "v0.1.0"

var (
	cfgFile string
	dataDir string
	nsHost  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cylclockd",
	Short: "Lock server, nameserver and client for suite task and file locks",
	Long: `cylclockd runs a lock server that holds task and file locks for suites,
a nameserver through which clients locate it, and client commands that
inspect or clear the lock server's state.

Clients find the lock server by looking up "cylclockd.broker" at the
nameserver given by --ns-host (default localhost:9090).`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nReceived signal %v, shutting down...\n", sig)
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cylclockd/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default is $HOME/.cylclockd)")
	rootCmd.PersistentFlags().StringVar(&nsHost, "ns-host", "", "nameserver host[:port] (default is localhost:9090)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("ns-host", rootCmd.PersistentFlags().Lookup("ns-host"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".cylclockd")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// CYLCLOCKD_NS_HOST, CYLCLOCKD_DATA_DIR, ...
	viper.SetEnvPrefix("CYLCLOCKD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// getDataDir returns the data directory, defaulting to $HOME/.cylclockd
func getDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	if d := viper.GetString("data-dir"); d != "" {
		return d, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cylclockd"), nil
}

// getNSHost returns the nameserver host. Empty means the resolver default.
func getNSHost() string {
	if nsHost != "" {
		return nsHost
	}
	return viper.GetString("ns-host")
}

// initStore initializes and returns the registry store.
func initStore() (*state.Store, error) {
	dir, err := getDataDir()
	if err != nil {
		return nil, err
	}

	store, err := state.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize registry: %w", err)
	}

	return store, nil
}

// initLockManager initializes and returns the lock manager.
func initLockManager() (*lock.Manager, error) {
	dir, err := getDataDir()
	if err != nil {
		return nil, err
	}

	manager, err := lock.NewManager(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lock manager: %w", err)
	}

	return manager, nil
}

// newLogger returns the daemon logger for the current verbosity.
func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(isVerbose())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// serveGRPC serves srv on lis until ctx is cancelled, then stops gracefully.
func serveGRPC(ctx context.Context, srv *grpc.Server, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		srv.GracefulStop()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}

// isVerbose returns true if verbose output is enabled.
func isVerbose() bool {
	return verbose || viper.GetBool("verbose")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if isVerbose() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// checkContext returns an error if the context is cancelled.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
