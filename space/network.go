package space

import (
	"fmt"
	"strconv"
)

// maxNetworkDegree is the number of distinct ConnectionType values.
const maxNetworkDegree = 256

// Node is the point type of a Network: the node index itself.
type Node int

// Network is a graph-only space with no geometry. Nodes are 0..n-1 and
// adjacency comes from an explicit undirected edge list. The k-th edge
// listed for a node is its connection type k, so TypeCount is the
// maximum degree.
type Network struct {
	adj      [][]Adjacency
	maxDeg   int
	edgeSize int
}

// NewNetwork builds a network of n nodes from undirected edges.
// Self-loops, duplicate edges and out-of-range endpoints are rejected with
// ErrInvalidShape.
// Complexity: O(n + E·deg).
func NewNetwork(n int, edges [][2]int) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: network needs at least one node, got %d", ErrInvalidShape, n)
	}
	nw := &Network{adj: make([][]Adjacency, n)}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d-%d out of range", ErrInvalidShape, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: self-loop on %d", ErrInvalidShape, u)
		}
		for _, a := range nw.adj[u] {
			if a.Cell == CellID(v) {
				return nil, fmt.Errorf("%w: duplicate edge %d-%d", ErrInvalidShape, u, v)
			}
		}
		if len(nw.adj[u]) >= maxNetworkDegree || len(nw.adj[v]) >= maxNetworkDegree {
			return nil, fmt.Errorf("%w: degree exceeds %d connection types", ErrInvalidShape, maxNetworkDegree)
		}
		nw.adj[u] = append(nw.adj[u], Adjacency{Cell: CellID(v), Type: ConnectionType(len(nw.adj[u]))})
		nw.adj[v] = append(nw.adj[v], Adjacency{Cell: CellID(u), Type: ConnectionType(len(nw.adj[v]))})
		nw.maxDeg = max(nw.maxDeg, len(nw.adj[u]), len(nw.adj[v]))
		nw.edgeSize++
	}
	return nw, nil
}

// Len returns the node count.
func (nw *Network) Len() int { return len(nw.adj) }

// Edges returns the number of undirected edges.
func (nw *Network) Edges() int { return nw.edgeSize }

// Dimensions returns 0: a network has no coordinates.
func (nw *Network) Dimensions() int { return 0 }

// TypeCount returns the maximum node degree.
func (nw *Network) TypeCount() int { return nw.maxDeg }

// Adjacent appends the neighbours of id in edge insertion order.
func (nw *Network) Adjacent(id CellID, buf []Adjacency) []Adjacency {
	return append(buf, nw.adj[id]...)
}

// Distance returns 0; without geometry no tighter bound is known.
func (nw *Network) Distance(_, _ CellID) int { return 0 }

// CellID maps a node to its id.
func (nw *Network) CellID(n Node) (CellID, error) {
	if err := checkID(CellID(n), len(nw.adj)); err != nil {
		return NoCell, err
	}
	return CellID(n), nil
}

// Point maps id back to its node.
func (nw *Network) Point(id CellID) (Node, error) {
	if err := checkID(id, len(nw.adj)); err != nil {
		return 0, err
	}
	return Node(id), nil
}

// Neighbours returns the neighbours of n.
func (nw *Network) Neighbours(n Node) ([]Neighbour[Node], error) {
	if _, err := nw.CellID(n); err != nil {
		return nil, err
	}
	out := make([]Neighbour[Node], len(nw.adj[n]))
	for k, e := range nw.adj[n] {
		out[k] = Neighbour[Node]{Point: Node(e.Cell), Type: e.Type}
	}
	return out, nil
}

// ConnectionTypes returns 0..maxDegree-1.
func (nw *Network) ConnectionTypes() []ConnectionType { return Types(nw.maxDeg) }

// TypeName names t as "edge#k".
func (nw *Network) TypeName(t ConnectionType) string { return "edge#" + strconv.Itoa(int(t)) }
