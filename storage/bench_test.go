package storage_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/space"
)

// BenchmarkBackends_SetGet measures a write and a read per op on a
// million-cell planar backend.
func BenchmarkBackends_SetGet(b *testing.B) {
	const cells = 1 << 20
	for name, f := range factories {
		b.Run(name, func(b *testing.B) {
			be, err := f(cells, 4)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				id := space.CellID(i & (cells - 1))
				be.SetConnection(id, space.ConnectionType(i&3), true)
				_ = be.Connection(id, space.ConnectionType(i&3))
			}
		})
	}
}
