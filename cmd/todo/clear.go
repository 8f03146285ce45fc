package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all tasks",
	Long: `Remove every task after confirmation.

Type "yes" (any letter case) at the prompt to proceed. Any other
answer leaves the task file untouched.`,
	Args: cobra.ArbitraryArgs,
	// Words such as "-5" belong to the task, not to cobra
	DisableFlagParsing: true,
	RunE:               runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ok, err := cli.Confirm(cmd.InOrStdin(), out, "Are you sure? This cannot be undone. (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Clear cancelled.")
		return nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	if err := ops.ClearTasks(s); err != nil {
		return err
	}

	fmt.Fprintln(out, "All tasks cleared.")
	return nil
}
