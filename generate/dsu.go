package generate

// dsu is a disjoint-set forest over dense indices with path compression
// and union by rank.
type dsu struct {
	parent []int
	rank   []uint8
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// find returns the root of x, compressing the path by halving.
func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	// attach the shallower tree under the deeper root
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	return true
}
