package generate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
)

// Unicursal turns a planar box with even sides into a labyrinth: a single
// closed corridor through every cell, with no branches. Base carves a
// perfect maze on a box of half the width and height (RecursiveBacktracker
// if nil); each of its cells becomes a 2×2 block, and the corridor runs
// along both sides of every passage and around every wall of that maze.
//
// Existing passages of g are closed first. Every cell ends with degree 2.
// Complexity: that of Base on V/4 cells, plus O(V).
type Unicursal struct {
	Base Generator
}

// Generate implements Generator.
func (u Unicursal) Generate(g maze.Graph, rng *rand.Rand) error {
	rng, err := begin(g, rng)
	if err != nil {
		return err
	}
	defer g.ResetAux()
	w, h, err := planar(g, "unicursal")
	if err != nil {
		return err
	}
	if w%2 != 0 || h%2 != 0 {
		return fmt.Errorf("%w: unicursal needs even sides, got %d×%d", ErrUnsupportedTopology, w, h)
	}

	sub, err := space.NewBox(w/2, h/2)
	if err != nil {
		return err
	}
	tree, err := maze.New[space.Point](sub, nil)
	if err != nil {
		return err
	}
	base := u.Base
	if base == nil {
		base = RecursiveBacktracker{}
	}
	if err = base.Generate(tree, rng); err != nil {
		return err
	}
	if !maze.IsPerfect(tree) {
		return fmt.Errorf("%w: unicursal base must carve a perfect maze", ErrInvalidOption)
	}

	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell > id && g.Open(id, adj.Type) {
				if err = g.Disconnect(id, adj.Cell); err != nil {
					return err
				}
			}
		}
	}

	var links [][2]space.CellID
	at := func(x, y int) space.CellID { return space.CellID(y*w + x) }
	for j := 0; j < h/2; j++ {
		for i := 0; i < w/2; i++ {
			sid := space.CellID(j*(w/2) + i)
			x, y := 2*i, 2*j
			tl, tr, bl, br := at(x, y), at(x+1, y), at(x, y+1), at(x+1, y+1)
			links = links[:0]
			if !tree.Open(sid, space.North) {
				links = append(links, [2]space.CellID{tl, tr})
			}
			if !tree.Open(sid, space.West) {
				links = append(links, [2]space.CellID{tl, bl})
			}
			if tree.Open(sid, space.East) {
				links = append(links, [2]space.CellID{tr, at(x+2, y)}, [2]space.CellID{br, at(x+2, y+1)})
			} else {
				links = append(links, [2]space.CellID{tr, br})
			}
			if tree.Open(sid, space.South) {
				links = append(links, [2]space.CellID{bl, at(x, y+2)}, [2]space.CellID{br, at(x+1, y+2)})
			} else {
				links = append(links, [2]space.CellID{bl, br})
			}
			for _, l := range links {
				if err = g.Connect(l[0], l[1]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
