package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Long: `Remove a task. Other tasks keep their IDs.

Examples:
  todo remove 3`,
	Args: cobra.ArbitraryArgs,
	// Words such as "-5" belong to the task, not to cobra
	DisableFlagParsing: true,
	RunE:               runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	id, ok := parseIDArg(cmd, "remove", args)
	if !ok {
		return nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	_, err = ops.RemoveTask(s, id)
	var notFound *cli.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(out, "Task %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Task %d removed.\n", id)
	return nil
}
