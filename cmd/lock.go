package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jayteealao/cylclockd/internal/lockserver"
	"github.com/spf13/cobra"
)

const (
	kindTask = "task"
	kindFile = "file"
)

var lockCmd = &cobra.Command{
	Use:   "lock <task|file> <id-or-path>",
	Short: "Take a task or file lock on the lock server",
	Long: `Take a task or file lock on the lock server. The lock is held by the
server until it is released with "unlock" or "clear", or the server stops.

With --wait, a file lock that is already held is waited for instead of
failing, for at most the given duration.

Examples:
  cylclockd lock task foo.2010010100
  cylclockd lock file /home/user/cylc-run/suite/share/data.nc --wait 30s`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{kindTask, kindFile},
	RunE:      runLock,
}

var unlockCmd = &cobra.Command{
	Use:       "unlock <task|file> <id-or-path>",
	Short:     "Release a task or file lock on the lock server",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{kindTask, kindFile},
	RunE:      runUnlock,
}

var lockWaitFlag time.Duration

// lockHandle is the part of the lock server handle that takes and releases locks.
type lockHandle interface {
	LockTask(ctx context.Context, id string) error
	UnlockTask(ctx context.Context, id string) error
	LockFile(ctx context.Context, path string) error
	UnlockFile(ctx context.Context, path string) error
	AcquireFile(ctx context.Context, path string) error
}

var _ lockHandle = (*lockserver.Client)(nil)

func init() {
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(unlockCmd)

	lockCmd.Flags().DurationVar(&lockWaitFlag, "wait", 0, "wait up to this long for a held file lock")
}

// connectLocker resolves the lock server and returns its locking interface.
func connectLocker(ctx context.Context) (lockHandle, error) {
	client, err := connectLockServer(ctx)
	if err != nil {
		return nil, err
	}

	h, ok := client.Get().(lockHandle)
	if !ok {
		return nil, fmt.Errorf("lock server handle does not support locking")
	}
	return h, nil
}

func checkKind(kind string) error {
	if kind != kindTask && kind != kindFile {
		return fmt.Errorf("unknown lock kind %q: must be %q or %q", kind, kindTask, kindFile)
	}
	return nil
}

func runLock(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, key := args[0], args[1]

	if err := checkKind(kind); err != nil {
		return err
	}
	if lockWaitFlag < 0 {
		return fmt.Errorf("--wait cannot be negative")
	}
	if lockWaitFlag > 0 && kind != kindFile {
		return fmt.Errorf("--wait applies to file locks only")
	}

	h, err := connectLocker(ctx)
	if err != nil {
		return err
	}

	switch {
	case kind == kindTask:
		err = h.LockTask(ctx, key)
	case lockWaitFlag > 0:
		printVerbose("Waiting up to %s for %s...", lockWaitFlag, key)
		wctx, cancel := context.WithTimeout(ctx, lockWaitFlag)
		defer cancel()
		err = h.AcquireFile(wctx, key)
	default:
		err = h.LockFile(ctx, key)
	}
	if err != nil {
		return fmt.Errorf("failed to lock %s %s: %w", kind, key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Locked %s %s\n", kind, key)
	return nil
}

func runUnlock(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	kind, key := args[0], args[1]

	if err := checkKind(kind); err != nil {
		return err
	}

	h, err := connectLocker(ctx)
	if err != nil {
		return err
	}

	if kind == kindTask {
		err = h.UnlockTask(ctx, key)
	} else {
		err = h.UnlockFile(ctx, key)
	}
	if err != nil {
		return fmt.Errorf("failed to unlock %s %s: %w", kind, key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %s %s\n", kind, key)
	return nil
}
