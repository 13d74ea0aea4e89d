package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/export"
)

func newShowCmd() *cobra.Command {
	var (
		plain   bool
		archDir string
	)
	cmd := &cobra.Command{
		Use:   "show <snapshot-file | id>",
		Short: "Draw a snapshot written by export",
		Long: `Draw a snapshot. The argument is a file written by 'export -o', or a
snapshot ID when --archive is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(args[0], archDir)
			if err != nil {
				return err
			}
			sp, err := spaceOf(snap)
			if err != nil {
				return err
			}
			r := config.Default()
			r.Space = sp
			inst, err := r.Build()
			if err != nil {
				return err
			}
			if err := export.Restore(snap, inst.Maze); err != nil {
				return err
			}
			return draw(cmd.OutOrStdout(), inst, snap.Solution(), plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "draw without colours")
	cmd.Flags().StringVar(&archDir, "archive", "", "archive directory to read the snapshot from")
	return cmd
}

func loadSnapshot(arg, archDir string) (*export.Snapshot, error) {
	if archDir != "" {
		a, err := openArchive(archDir)
		if err != nil {
			return nil, err
		}
		defer a.Close()
		return a.Get(arg)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, err
	}
	return export.Unmarshal(data)
}

// spaceOf rebuilds the space section of a run from a snapshot.
func spaceOf(s *export.Snapshot) (config.Space, error) {
	switch s.Kind {
	case export.KindBox:
		return config.Space{Kind: config.KindBox, Dims: s.Shape}, nil
	case export.KindPolar:
		if len(s.Shape) == 2 {
			return config.Space{Kind: config.KindPolar, Rings: s.Shape[0], Base: s.Shape[1]}, nil
		}
	case export.KindHex:
		if len(s.Shape) == 2 {
			return config.Space{Kind: config.KindHex, Width: s.Shape[0], Height: s.Shape[1]}, nil
		}
	default:
		return config.Space{}, fmt.Errorf("snapshot kind %q cannot be rebuilt", s.Kind)
	}
	return config.Space{}, fmt.Errorf("%w: shape %v", export.ErrCorrupt, s.Shape)
}
