package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/export"
)

func newExportCmd() *cobra.Command {
	var (
		flags   runFlags
		output  string
		archDir string
	)
	cmd := &cobra.Command{
		Use:   "export [-o <file>] [--archive <dir>]",
		Short: "Carve and solve a maze, then write a msgpack snapshot",
		Long: `Carve and solve a maze, then write it as a msgpack snapshot to a file,
to an archive directory, or both. The snapshot ID is printed on success.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" && archDir == "" {
				return fmt.Errorf("one of -o or --archive is required")
			}
			r, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			res, err := execute(cmd, r)
			if err != nil {
				return err
			}
			snap, err := export.Capture(res.inst.Maze)
			if err != nil {
				return err
			}
			snap.WithPath(res.path)

			if output != "" {
				data, err := export.Marshal(snap)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				slog.Info("snapshot written", "id", snap.ID, "file", output, "bytes", len(data))
			}
			if archDir != "" {
				a, err := openArchive(archDir)
				if err != nil {
					return err
				}
				defer a.Close()
				if err := a.Put(snap); err != nil {
					return err
				}
				slog.Info("snapshot archived", "id", snap.ID, "archive", archDir)
			}
			fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file to write")
	cmd.Flags().StringVar(&archDir, "archive", "", "archive directory to store the snapshot in")
	return cmd
}
