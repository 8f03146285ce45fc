package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as complete",
	Long: `Mark a task as complete.

Completing a task that is already complete changes nothing.

Examples:
  todo complete 3`,
	Args: cobra.ArbitraryArgs,
	// Words such as "-5" belong to the task, not to cobra
	DisableFlagParsing: true,
	RunE:               runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	id, ok := parseIDArg(cmd, "complete", args)
	if !ok {
		return nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	_, err = ops.CompleteTask(s, id)
	var notFound *cli.NotFoundError
	var already *ops.AlreadyCompleteError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(out, "Task %d not found.\n", id)
	case errors.As(err, &already):
		fmt.Fprintf(out, "Task %d is already complete!\n", id)
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Task %d marked as complete.\n", id)
	}
	return nil
}

// parseIDArg reads the task ID argument for name, printing a usage
// message and returning false if it is missing or not a number.
func parseIDArg(cmd *cobra.Command, name string, args []string) (int, bool) {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintf(out, "Error: '%s' requires a task ID\n", name)
		return 0, false
	}

	id, err := ops.ParseTaskID(args[0])
	if err != nil {
		fmt.Fprintln(out, "Error: Task ID must be a number")
		return 0, false
	}
	return id, true
}
