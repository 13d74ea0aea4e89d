package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/storage"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List generators, solvers and storage backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "generators: %s\n", strings.Join(generate.Names(), ", "))
			fmt.Fprintf(w, "solvers:    %s\n", strings.Join(solve.Names(), ", "))
			_, err := fmt.Fprintf(w, "storage:    %s, %s\n", storage.NameInline, storage.NameBlock)
			return err
		},
	}
}
