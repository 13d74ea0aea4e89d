// Package commands implements the labyrinth CLI.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRoot builds the command tree. Each call returns fresh flag state.
func NewRoot() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "labyrinth",
		Short: "Generate and solve mazes over arbitrary topologies",
		Long: `labyrinth - carve, solve and draw mazes.

A run is described by a YAML file (see 'labyrinth generate --print-config')
or by flags overriding the built-in default: a 20x12 box carved by the
recursive backtracker and solved by A*.

Examples:
  labyrinth generate
  labyrinth generate --generator wilson --seed 7 --dims 30,15
  labyrinth generate -f run.yaml --braid 0.5
  labyrinth export -f run.yaml -o maze.msgpack
  labyrinth show maze.msgpack
  labyrinth export --archive ./mazes && labyrinth list --archive ./mazes
  labyrinth serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newGenerateCmd(), newExportCmd(), newShowCmd(), newListCmd(), newServeCmd(), newNamesCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRoot().Execute()
}
