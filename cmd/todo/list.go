package main

import (
	"fmt"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/ops"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List all tasks in the order they were added.

Completed tasks are shown with [x], open tasks with [ ].`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}

	tasks, err := ops.ListTasks(s)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks yet!")
		return nil
	}

	for _, t := range tasks {
		fmt.Fprintf(out, "%d. %s %s\n", t.ID, cli.StatusMarker(t.Completed), t.Description)
	}
	return nil
}
