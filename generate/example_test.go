package generate_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/random"
	"github.com/katalvlaran/labyrinth/space"
)

// ExampleKruskal carves a perfect maze and then braids away every dead end.
func ExampleKruskal() {
	box, _ := space.NewBox(8, 8)
	m, _ := maze.New[space.Point](box, nil)

	_ = generate.Kruskal{}.Generate(m, random.New(42))
	fmt.Println("perfect:", maze.IsPerfect(m), "passages:", maze.Passages(m))

	_ = generate.Braid{DeadEnds: 0}.Generate(m, random.New(42))
	fmt.Println("dead ends after braid:", maze.DeadEnds(m))
	// Output:
	// perfect: true passages: 63
	// dead ends after braid: 0
}

// ExampleEllerStream produces rows for a strip that has no bottom.
func ExampleEllerStream() {
	strip, _ := space.NewStrip(4)
	stream, _ := generate.NewEllerStream(strip.Width(), random.New(1))

	for row := range stream.Rows() {
		pairs, _ := row.Passages(strip)
		fmt.Println("row", row.Y, "has passages:", len(pairs) > 0)
		if row.Y == 2 {
			break
		}
	}
	// Output:
	// row 0 has passages: true
	// row 1 has passages: true
	// row 2 has passages: true
}
