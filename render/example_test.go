package render_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/space"
)

func ExampleText() {
	b, _ := space.NewBox(2, 2)
	m, _ := maze.New[space.Point](b, nil)
	_ = m.Connect(0, 1)
	_ = m.Connect(1, 3)
	_ = m.Connect(3, 2)

	out, _ := render.Text(m, maze.Path{0, 1, 3}, render.Plain())
	fmt.Print(out)
	// Output:
	// +---+---+
	// | S   * |
	// +---+   +
	// |     G |
	// +---+---+
}
