package generate

import (
	"fmt"
	"sort"
)

// Registered generator names.
const (
	NameBacktracker   = "backtracker"
	NameHuntAndKill   = "hunt-and-kill"
	NameSidewinder    = "sidewinder"
	NameAldousBroder  = "aldous-broder"
	NameWilson        = "wilson"
	NameKruskal       = "kruskal"
	NamePrim          = "prim"
	NameGrowingTree   = "growing-tree"
	NameGrowingForest = "growing-forest"
	NameEller         = "eller"
	NameNaryTree      = "nary-tree"
	NameDivision      = "division"
	NameUnicursal     = "unicursal"
)

// Weighting names accepted by ParseWeighting.
const (
	WeightSimplified = "simplified"
	WeightEdges      = "edges"
	WeightCells      = "cells"
)

// DefaultSeeds is the GrowingForest seed count used by ByName.
const DefaultSeeds = 4

// Options carries the parameters ByName forwards to configurable algorithms.
type Options struct {
	Select    Selector
	Weighting Weighting
	Seeds     int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Newest selection, simplified Prim and DefaultSeeds.
func DefaultOptions() Options {
	return Options{Seeds: DefaultSeeds}
}

// WithSelector sets the GrowingTree/GrowingForest selector. nil is rejected.
func WithSelector(s Selector) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil selector", ErrInvalidOption)
			return
		}
		o.Select = s
	}
}

// WithWeighting sets the Prim weighting; nil selects simplified Prim.
func WithWeighting(w Weighting) Option {
	return func(o *Options) { o.Weighting = w }
}

// WithSeeds sets the GrowingForest seed count; it must be at least 1.
func WithSeeds(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: seeds %d < 1", ErrInvalidOption, k)
			return
		}
		o.Seeds = k
	}
}

// ParseWeighting resolves a Prim weighting by name; "" is simplified.
func ParseWeighting(name string) (Weighting, error) {
	switch name {
	case "", WeightSimplified:
		return nil, nil
	case WeightEdges:
		return EdgeWeights(), nil
	case WeightCells:
		return CellWeights(), nil
	}
	return nil, fmt.Errorf("%w: unknown weighting %q", ErrInvalidOption, name)
}

var registry = map[string]func(o Options) Generator{
	NameBacktracker:   func(Options) Generator { return RecursiveBacktracker{} },
	NameHuntAndKill:   func(Options) Generator { return HuntAndKill{} },
	NameSidewinder:    func(Options) Generator { return Sidewinder{} },
	NameAldousBroder:  func(Options) Generator { return AldousBroder{} },
	NameWilson:        func(Options) Generator { return Wilson{} },
	NameKruskal:       func(Options) Generator { return Kruskal{} },
	NamePrim:          func(o Options) Generator { return Prim{Weighting: o.Weighting} },
	NameGrowingTree:   func(o Options) Generator { return GrowingTree{Select: o.Select} },
	NameGrowingForest: func(o Options) Generator { return GrowingForest{Seeds: o.Seeds, Select: o.Select} },
	NameEller:         func(Options) Generator { return Eller{} },
	NameNaryTree:      func(Options) Generator { return NaryTree{} },
	NameDivision:      func(Options) Generator { return RecursiveDivision{} },
	NameUnicursal:     func(Options) Generator { return Unicursal{} },
}

// ByName returns the generator registered under name, configured by opts.
func ByName(name string, opts ...Option) (Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return build(o), nil
}

// Names returns every registered generator name in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
