// Package export captures a maze as a self-describing snapshot and encodes
// it with msgpack, for external renderers and analysers that should not
// link the library.
//
// A Snapshot stores, per cell, a bitmask of open connection types plus
// enough of the space's shape to rebuild it, and the payload tags of
// backends that keep them (storage.Block). Restore replays a snapshot onto
// a maze of the same space.
package export

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/space"
	"github.com/katalvlaran/labyrinth/storage"
)

// Sentinel errors for export.
var (
	// ErrTooManyTypes indicates a space with more than 64 connection types.
	ErrTooManyTypes = errors.New("export: more than 64 connection types")

	// ErrMismatch indicates a snapshot taken from a different space.
	ErrMismatch = errors.New("export: snapshot does not match maze")

	// ErrCorrupt indicates a snapshot that fails its own consistency checks.
	ErrCorrupt = errors.New("export: corrupt snapshot")
)

// Topology kinds recorded in snapshots.
const (
	KindBox     = "box"
	KindPolar   = "polar"
	KindHex     = "hex"
	KindNetwork = "network"
	KindOther   = "other"
)

// Snapshot is the serialized form of a maze and, optionally, one path.
type Snapshot struct {
	ID    string `json:"id" msgpack:"id"`
	Kind  string `json:"kind" msgpack:"kind"`
	Shape []int  `json:"shape,omitempty" msgpack:"shape,omitempty"`
	Cells int    `json:"cells" msgpack:"cells"`
	Types int    `json:"types" msgpack:"types"`

	// Open[c] has bit t set when connection type t of cell c is open.
	Open []uint64 `json:"open" msgpack:"open"`

	// Tags holds one payload per cell when the source backend keeps tags
	// and at least one is set.
	Tags []uint16 `json:"tags,omitempty" msgpack:"tags,omitempty"`

	// Path is an optional solution, as CellIDs.
	Path []int64 `json:"path,omitempty" msgpack:"path,omitempty"`
}

// tagger is a backend with a per-cell payload, such as storage.Block.
type tagger interface {
	Tag(id space.CellID) uint16
	SetTag(id space.CellID, v uint16)
}

// tagsOf returns the tag store behind g, if its backend has one.
func tagsOf(g maze.Graph) (tagger, bool) {
	b, ok := g.(interface{ Backend() storage.Backend })
	if !ok {
		return nil, false
	}
	t, ok := b.Backend().(tagger)
	return t, ok
}

// Capture records the connections of g, and any Block tags, under a fresh
// random ID.
// Complexity: O(V · degree).
func Capture(g maze.Graph) (*Snapshot, error) {
	topo := g.Topology()
	if topo.TypeCount() > 64 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyTypes, topo.TypeCount())
	}
	kind, shape := describe(topo)
	s := &Snapshot{
		ID:    uuid.NewString(),
		Kind:  kind,
		Shape: shape,
		Cells: g.Len(),
		Types: topo.TypeCount(),
		Open:  make([]uint64, g.Len()),
	}
	for id := range g.Cells() {
		var mask uint64
		for _, adj := range g.Adjacent(id) {
			if g.Open(id, adj.Type) {
				mask |= 1 << adj.Type
			}
		}
		s.Open[id] = mask
	}
	if tg, ok := tagsOf(g); ok {
		tags := make([]uint16, g.Len())
		set := false
		for id := range g.Cells() {
			tags[id] = tg.Tag(id)
			set = set || tags[id] != 0
		}
		if set {
			s.Tags = tags
		}
	}
	return s, nil
}

// WithPath attaches p to s.
func (s *Snapshot) WithPath(p maze.Path) *Snapshot {
	s.Path = make([]int64, len(p))
	for i, id := range p {
		s.Path[i] = int64(id)
	}
	return s
}

// Solution returns the attached path, if any.
func (s *Snapshot) Solution() maze.Path {
	if len(s.Path) == 0 {
		return nil
	}
	p := make(maze.Path, len(s.Path))
	for i, id := range s.Path {
		p[i] = space.CellID(id)
	}
	return p
}

// Marshal encodes s with msgpack.
func Marshal(s *Snapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

// Unmarshal decodes and checks a snapshot.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the ID and that the masks (and tags, if any) cover every
// cell and fit the declared type count.
func (s *Snapshot) Validate() error {
	if _, err := uuid.Parse(s.ID); err != nil {
		return fmt.Errorf("%w: id: %w", ErrCorrupt, err)
	}
	if s.Cells < 0 || len(s.Open) != s.Cells {
		return fmt.Errorf("%w: %d masks for %d cells", ErrCorrupt, len(s.Open), s.Cells)
	}
	if len(s.Tags) != 0 && len(s.Tags) != s.Cells {
		return fmt.Errorf("%w: %d tags for %d cells", ErrCorrupt, len(s.Tags), s.Cells)
	}
	if s.Types < 0 || s.Types > 64 {
		return fmt.Errorf("%w: %d types", ErrCorrupt, s.Types)
	}
	if s.Types < 64 {
		for c, m := range s.Open {
			if m>>s.Types != 0 {
				return fmt.Errorf("%w: cell %d uses types beyond %d", ErrCorrupt, c, s.Types)
			}
		}
	}
	for _, id := range s.Path {
		if id < 0 || id >= int64(s.Cells) {
			return fmt.Errorf("%w: path cell %d", ErrCorrupt, id)
		}
	}
	return nil
}

// Restore sets the connections of g to exactly those recorded in s.
// g must have the snapshot's kind, shape and type count. An edge
// recorded open on one side only is ErrCorrupt, and g is left unchanged.
// If g's backend keeps tags they are set from s (zero when s has none);
// otherwise recorded tags are dropped.
// Complexity: O(V · degree).
func Restore(s *Snapshot, g maze.Graph) error {
	topo := g.Topology()
	kind, shape := describe(topo)
	if kind != s.Kind || !slices.Equal(shape, s.Shape) || g.Len() != s.Cells || topo.TypeCount() != s.Types {
		return fmt.Errorf("%w: snapshot %s %d×%d, maze %s %d×%d",
			ErrMismatch, s.Kind, s.Cells, s.Types, kind, g.Len(), topo.TypeCount())
	}
	if len(s.Open) != s.Cells {
		return fmt.Errorf("%w: %d masks for %d cells", ErrCorrupt, len(s.Open), s.Cells)
	}
	if len(s.Tags) != 0 && len(s.Tags) != s.Cells {
		return fmt.Errorf("%w: %d tags for %d cells", ErrCorrupt, len(s.Tags), s.Cells)
	}
	open := func(id space.CellID, t space.ConnectionType) bool { return s.Open[id]&(1<<t) != 0 }

	// symmetry first, so a corrupt snapshot never half-applies
	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell < id {
				continue
			}
			back, ok := reverse(g, adj.Cell, id)
			if !ok || open(id, adj.Type) != open(adj.Cell, back) {
				return fmt.Errorf("%w: edge %d-%d is one-sided", ErrCorrupt, id, adj.Cell)
			}
		}
	}
	for id := range g.Cells() {
		for _, adj := range g.Adjacent(id) {
			if adj.Cell < id {
				continue
			}
			want := open(id, adj.Type)
			if g.Open(id, adj.Type) == want {
				continue
			}
			var err error
			if want {
				err = g.Connect(id, adj.Cell)
			} else {
				err = g.Disconnect(id, adj.Cell)
			}
			if err != nil {
				return err
			}
		}
	}
	if tg, ok := tagsOf(g); ok {
		for id := range g.Cells() {
			var v uint16
			if len(s.Tags) != 0 {
				v = s.Tags[id]
			}
			tg.SetTag(id, v)
		}
	}
	return nil
}

// reverse finds the connection type leading from a back to b.
func reverse(g maze.Graph, a, b space.CellID) (space.ConnectionType, bool) {
	for _, adj := range g.Adjacent(a) {
		if adj.Cell == b {
			return adj.Type, true
		}
	}
	return 0, false
}

// describe names the topology and records its shape parameters.
func describe(t space.Topology) (string, []int) {
	switch s := t.(type) {
	case *space.Box:
		return KindBox, s.Shape()
	case *space.Polar:
		return KindPolar, []int{s.Rings(), s.Sectors(0)}
	case *space.Hex:
		w, h := s.Size()
		return KindHex, []int{w, h}
	case *space.Network:
		return KindNetwork, []int{s.Len(), s.Edges()}
	}
	return KindOther, nil
}
