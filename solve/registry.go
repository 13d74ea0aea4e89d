package solve

import (
	"fmt"
	"sort"
)

// Registered solver names.
const (
	NameRandomMouse  = "random-mouse"
	NameWallFollower = "wall-follower"
	NamePledge       = "pledge"
	NameTremaux      = "tremaux"
	NameBFS          = "bfs"
	NameAStar        = "astar"
)

var registry = map[string]Solver{
	NameRandomMouse:  RandomMouse{},
	NameWallFollower: WallFollower{},
	NamePledge:       Pledge{},
	NameTremaux:      Tremaux{},
	NameBFS:          BFS{},
	NameAStar:        AStar{},
}

// ByName returns the solver registered under name.
func ByName(name string) (Solver, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
	return s, nil
}

// Names returns every registered solver name in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParseHand resolves "left" or "right" ("" is left).
func ParseHand(name string) (Hand, error) {
	switch name {
	case "", "left":
		return LeftHand, nil
	case "right":
		return RightHand, nil
	}
	return LeftHand, fmt.Errorf("%w: unknown hand %q", ErrOptionViolation, name)
}
