package space_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/space"
)

// ExampleBox shows row-major addressing and boundary clipping on a 3×2 box.
func ExampleBox() {
	b, _ := space.NewBox(3, 2)
	id, _ := b.CellID(space.Pt(2, 1))
	fmt.Println("cells:", b.Len(), "id of (2, 1):", id)

	nb, _ := b.Neighbours(space.Pt(2, 1))
	for _, n := range nb {
		fmt.Println(b.TypeName(n.Type), n.Point)
	}
	// Output:
	// cells: 6 id of (2, 1): 5
	// west (1, 1)
	// north (2, 0)
}

// ExamplePolar shows how rings grow as the radius increases.
func ExamplePolar() {
	p, _ := space.NewPolar(4, 3)
	for r := 0; r < p.Rings(); r++ {
		fmt.Printf("ring %d: %d sectors\n", r, p.Sectors(r))
	}
	// Output:
	// ring 0: 3 sectors
	// ring 1: 6 sectors
	// ring 2: 6 sectors
	// ring 3: 12 sectors
}
