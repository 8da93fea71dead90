package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jayteealao/cylclockd/internal/naming"
	"github.com/jayteealao/cylclockd/internal/validate"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List names registered with the nameserver",
	Args:  cobra.NoArgs,
	RunE:  runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	host := getNSHost()
	if err := validate.Host(host); err != nil {
		return fmt.Errorf("invalid nameserver host: %w", err)
	}

	bindings, err := naming.NewResolver().List(ctx, host)
	if err != nil {
		return fmt.Errorf("failed to list names: %w", err)
	}

	if len(bindings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No names registered.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tADDRESS")
	fmt.Fprintln(w, "----\t-------")
	for _, b := range bindings {
		fmt.Fprintf(w, "%s\t%s\n", b.Name, b.Address)
	}
	w.Flush()

	return nil
}
