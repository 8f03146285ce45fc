package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>...",
	Short: "Add a new task",
	Long: `Add a new task. All arguments are joined with single spaces
to form the description.

Examples:
  todo add Buy milk
  todo add "Call the bank"`,
	Args: cobra.ArbitraryArgs,
	// Words such as "-5" belong to the task, not to cobra
	DisableFlagParsing: true,
	RunE:               runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	description := strings.Join(args, " ")
	if len(args) == 0 || ops.ValidateDescription(description) != nil {
		fmt.Fprintln(out, "Error: 'add' requires a task description")
		return nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	task, err := ops.AddTask(s, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Task added with ID: %d\n", task.ID)
	return nil
}
