package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/archive"
)

func newListCmd() *cobra.Command {
	var archDir string
	cmd := &cobra.Command{
		Use:   "list --archive <dir>",
		Short: "List the snapshots stored in an archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if archDir == "" {
				return fmt.Errorf("flag --archive is required")
			}
			a, err := openArchive(archDir)
			if err != nil {
				return err
			}
			defer a.Close()
			for id, err := range a.IDs() {
				if err != nil {
					return err
				}
				s, err := a.Get(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %v cells=%d path=%d\n", id, s.Kind, s.Shape, s.Cells, len(s.Path))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&archDir, "archive", "", "archive directory")
	return cmd
}

func openArchive(dir string) (*archive.Archive, error) {
	return archive.Open(archive.Options{Dir: dir, Logger: badgerLogger{}})
}

// badgerLogger forwards badger's messages to slog. Info goes to debug,
// badger is chatty at startup.
type badgerLogger struct{}

func (badgerLogger) Errorf(f string, v ...interface{}) {
	slog.Error("badger: " + fmt.Sprintf(f, v...))
}

func (badgerLogger) Warningf(f string, v ...interface{}) {
	slog.Warn("badger: " + fmt.Sprintf(f, v...))
}

func (badgerLogger) Infof(f string, v ...interface{}) {
	slog.Debug("badger: " + fmt.Sprintf(f, v...))
}

func (badgerLogger) Debugf(f string, v ...interface{}) {
	slog.Debug("badger: " + fmt.Sprintf(f, v...))
}
