// Package render draws planar box mazes as text, with the solution path
// highlighted through lipgloss styles.
package render

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// ErrUnsupported indicates a maze that is not a planar box.
var ErrUnsupported = errors.New("render: only planar boxes can be drawn")

// Theme defines the colours of a drawing.
type Theme struct {
	Wall lipgloss.Color
	Path lipgloss.Color
	Ends lipgloss.Color
}

// DefaultTheme is a dim wall with a bright green route.
var DefaultTheme = Theme{
	Wall: lipgloss.Color("#6e7681"),
	Path: lipgloss.Color("#00ff9f"),
	Ends: lipgloss.Color("#ffd700"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Wall lipgloss.Style
	Path lipgloss.Style
	Ends lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Wall: lipgloss.NewStyle().Foreground(t.Wall),
		Path: lipgloss.NewStyle().Foreground(t.Path),
		Ends: lipgloss.NewStyle().Bold(true).Foreground(t.Ends),
	}
}

// Plain returns styles that leave text unchanged.
func Plain() Styles {
	return Styles{Wall: lipgloss.NewStyle(), Path: lipgloss.NewStyle(), Ends: lipgloss.NewStyle()}
}

// Glyphs used in drawings.
const (
	glyphCorner = "+"
	glyphHoriz  = "---"
	glyphVert   = "|"
	glyphOpenH  = "   "
	glyphOpenV  = " "
	glyphPath   = " * "
	glyphStart  = " S "
	glyphGoal   = " G "
	glyphEmpty  = "   "
)

// Text draws g, a planar box, row by row with north up. Cells on path are
// marked, its first and last cells as S and G. path may be nil.
// Complexity: O(V) time and output size.
func Text(g maze.Graph, path maze.Path, st Styles) (string, error) {
	topo := g.Topology()
	w, h, ok := space.Planar(topo)
	if !ok || topo.TypeCount() != 4 {
		return "", ErrUnsupported
	}

	onPath := make(map[space.CellID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	glyph := func(id space.CellID) string {
		switch {
		case len(path) > 0 && id == path.Start():
			return st.Ends.Render(glyphStart)
		case len(path) > 0 && id == path.End():
			return st.Ends.Render(glyphGoal)
		case onPath[id]:
			return st.Path.Render(glyphPath)
		}
		return glyphEmpty
	}

	var b strings.Builder
	wall := func(s string) { b.WriteString(st.Wall.Render(s)) }
	for y := 0; y < h; y++ {
		row := space.CellID(y * w)
		for x := 0; x < w; x++ {
			wall(glyphCorner)
			if g.Open(row+space.CellID(x), space.North) {
				b.WriteString(glyphOpenH)
			} else {
				wall(glyphHoriz)
			}
		}
		wall(glyphCorner)
		b.WriteByte('\n')

		for x := 0; x < w; x++ {
			id := row + space.CellID(x)
			if g.Open(id, space.West) {
				b.WriteString(glyphOpenV)
			} else {
				wall(glyphVert)
			}
			b.WriteString(glyph(id))
		}
		wall(glyphVert)
		b.WriteByte('\n')
	}
	for x := 0; x < w; x++ {
		wall(glyphCorner + glyphHoriz)
	}
	wall(glyphCorner)
	b.WriteByte('\n')
	return b.String(), nil
}
