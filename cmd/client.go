package cmd

import (
	"context"
	"fmt"

	"github.com/jayteealao/cylclockd/internal/lockclient"
	"github.com/jayteealao/cylclockd/internal/validate"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the locks held by the lock server",
	Long: `Print the task and file locks currently held by the lock server, as JSON.

The lock server is located through the nameserver given by --ns-host.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Release every lock held by the lock server",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

var filenamesCmd = &cobra.Command{
	Use:     "filenames",
	Aliases: []string{"files"},
	Short:   "List filenames locked by the lock server",
	Args:    cobra.NoArgs,
	RunE:    runFilenames,
}

// clientOptions are passed to every lockclient.New call made by commands.
var clientOptions []lockclient.Option

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(filenamesCmd)
}

// connectLockServer locates the lock server through the configured nameserver.
func connectLockServer(ctx context.Context) (*lockclient.Client, error) {
	host := getNSHost()
	if err := validate.Host(host); err != nil {
		return nil, fmt.Errorf("invalid nameserver host: %w", err)
	}

	printVerbose("Resolving lock server via nameserver %q...", host)
	client, err := lockclient.New(ctx, host, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to locate lock server: %w", err)
	}
	return client, nil
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := connectLockServer(ctx)
	if err != nil {
		return err
	}

	v, err := client.Dump(ctx)
	if err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	return printJSON(cmd, v)
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := connectLockServer(ctx)
	if err != nil {
		return err
	}

	if err := checkContext(ctx); err != nil {
		return err
	}

	v, err := client.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	return printJSON(cmd, v)
}

func runFilenames(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := connectLockServer(ctx)
	if err != nil {
		return err
	}

	names, err := client.GetFilenames(ctx)
	if err != nil {
		return fmt.Errorf("get filenames failed: %w", err)
	}

	if len(names) == 0 {
		printVerbose("No filenames locked.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func printJSON(cmd *cobra.Command, m proto.Message) error {
	data, err := protojson.MarshalOptions{Multiline: true}.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
