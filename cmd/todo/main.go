// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a small task tracker backed by a JSON file",
	Long: `todo keeps a list of tasks in a JSON file in the current directory
(todos.json unless configured otherwise in .todoconfig.yaml).

Examples:
  todo add Buy milk
  todo list
  todo complete 1
  todo remove 1
  todo clear

Flags such as --file and --verbose go before the command name;
everything after the command name is passed to the command as-is.`,
	Version: Version,
	// Unknown commands land here instead of erroring in cobra
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Root flags go before the command name: todo --file x.json add ...
	TraverseChildren: true,
	RunE:             runRoot,
}

var (
	rootFile    string
	rootVerbose bool
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("todo version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootFile, "file", "", "task file (default from .todoconfig.yaml or todos.json)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "log store activity to stderr")

	// Traverse only consults local flags when deciding whether "-v" takes
	// a value, so the persistent ones must be visible there too.
	rootCmd.Flags().AddFlagSet(rootCmd.PersistentFlags())
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Unknown command: %s\n", args[0])
	}
	return cmd.Help()
}

// openStore resolves configuration and returns the task store for this run.
// Flags take precedence over .todoconfig.yaml.
func openStore(cmd *cobra.Command) (*storage.Storage, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	switch cfg.Color {
	case storage.ColorAlways:
		cli.SetColorEnabled(true)
	case storage.ColorNever:
		cli.SetColorEnabled(false)
	default:
		cli.SetColorEnabled(cli.IsTerminal(cmd.OutOrStdout()))
	}

	path := cfg.File
	if rootFile != "" {
		path = rootFile
	}

	logger := cli.NewLogger(cmd.ErrOrStderr(), rootVerbose || cfg.Verbose)
	logger.Debug("using task file", "path", path)

	return storage.Open(path, storage.WithLogger(logger)), nil
}
