package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags       runFlags
		plain       bool
		printConfig bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve and solve a maze, then draw it",
		Long: `Carve a maze, solve it from start to goal and draw the result.

Planar boxes are drawn with the solution highlighted. Other spaces print
the solution as a list of points.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if printConfig {
				data, err := r.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			res, err := execute(cmd, r)
			if err != nil {
				return err
			}
			return draw(cmd.OutOrStdout(), res.inst, res.path, plain)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "draw without colours")
	cmd.Flags().BoolVar(&printConfig, "print-config", false, "print the resolved run description as YAML and exit")
	return cmd
}

// draw writes the maze and path to w, falling back to a point list when
// the space cannot be drawn.
func draw(w io.Writer, inst *config.Instance, p maze.Path, plain bool) error {
	st := render.NewStyles(render.DefaultTheme)
	if plain {
		st = render.Plain()
	}
	out, err := render.Text(inst.Maze, p, st)
	switch {
	case err == nil:
		_, err = fmt.Fprint(w, out)
		if err == nil && len(p) > 0 {
			_, err = fmt.Fprintf(w, "length %d\n", p.Edges())
		}
		return err
	case !errors.Is(err, render.ErrUnsupported):
		return err
	}

	points := make([]string, len(p))
	for i, id := range p {
		c, err := inst.Point(id)
		if err != nil {
			return err
		}
		points[i] = fmt.Sprint(c)
	}
	_, err = fmt.Fprintf(w, "cells %d passages %d dead-ends %d\nlength %d\n%s\n",
		inst.Maze.Len(), maze.Passages(inst.Maze), maze.DeadEnds(inst.Maze),
		p.Edges(), strings.Join(points, " "))
	return err
}
