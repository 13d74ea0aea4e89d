package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/storage"
)

// ErrInvalidConfig indicates a document that decodes but cannot be run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Space kinds.
const (
	KindBox   = "box"
	KindPolar = "polar"
	KindHex   = "hex"
)

// Run is one complete run description.
type Run struct {
	Space     Space     `yaml:"space"`
	Storage   string    `yaml:"storage,omitempty"`
	Generator Generator `yaml:"generator"`
	Braid     *Braid    `yaml:"braid,omitempty"`
	Solver    Solver    `yaml:"solver"`
	Start     []int     `yaml:"start,omitempty"`
	Goal      []int     `yaml:"goal,omitempty"`
}

// Space selects and sizes the coordinate space.
type Space struct {
	Kind   string `yaml:"kind"`
	Dims   []int  `yaml:"dims,omitempty"`
	Rings  int    `yaml:"rings,omitempty"`
	Base   int    `yaml:"base,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Generator selects the carving algorithm and its parameters.
type Generator struct {
	Name      string  `yaml:"name"`
	Seed      int64   `yaml:"seed,omitempty"`
	Selector  string  `yaml:"selector,omitempty"`
	Mixed     float64 `yaml:"mixed,omitempty"`
	Weighting string  `yaml:"weighting,omitempty"`
	Seeds     int     `yaml:"seeds,omitempty"`
}

// Braid enables the dead-end removal pass.
type Braid struct {
	DeadEnds float64 `yaml:"dead_ends"`
}

// Solver selects the solving algorithm and its options.
type Solver struct {
	Name     string `yaml:"name"`
	MaxSteps int    `yaml:"max_steps,omitempty"`
	Hand     string `yaml:"hand,omitempty"`
	Heading  int    `yaml:"heading,omitempty"`
	Seed     int64  `yaml:"seed,omitempty"`
}

// Default returns a 20×12 box carved by the recursive backtracker and
// solved by A* from corner to corner.
func Default() Run {
	return Run{
		Space:     Space{Kind: KindBox, Dims: []int{20, 12}},
		Storage:   storage.NameInline,
		Generator: Generator{Name: generate.NameBacktracker, Seed: 1},
		Solver:    Solver{Name: solve.NameAStar},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, rejecting unknown keys, and validates it.
func Parse(data []byte) (Run, error) {
	var r Run
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Run{}, fmt.Errorf("config: cannot unmarshal YAML: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}

// Marshal encodes r as YAML.
func (r Run) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Validate checks every section without building anything large.
func (r Run) Validate() error {
	if err := r.Space.validate(); err != nil {
		return err
	}
	if _, err := r.Factory(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := r.Carver(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, _, err := r.Solve(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for name, p := range map[string][]int{"start": r.Start, "goal": r.Goal} {
		if p != nil && len(p) != r.Space.pointDims() {
			return fmt.Errorf("%w: %s has %d coordinates, space needs %d", ErrInvalidConfig, name, len(p), r.Space.pointDims())
		}
	}
	return nil
}

func (s Space) validate() error {
	switch s.Kind {
	case KindBox:
		if len(s.Dims) == 0 {
			return fmt.Errorf("%w: box needs dims", ErrInvalidConfig)
		}
	case KindPolar:
		if s.Rings < 1 || s.Base < 3 {
			return fmt.Errorf("%w: polar needs rings >= 1 and base >= 3", ErrInvalidConfig)
		}
	case KindHex:
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("%w: hex needs width and height", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown space kind %q", ErrInvalidConfig, s.Kind)
	}
	return nil
}

// pointDims is the number of coordinates of a point in the space.
func (s Space) pointDims() int {
	if s.Kind == KindBox {
		return len(s.Dims)
	}
	return 2
}

// Factory resolves the storage backend.
func (r Run) Factory() (storage.Factory, error) {
	return storage.ByName(r.Storage)
}

// Carver resolves the generator, chained with the braid pass if present.
func (r Run) Carver() (generate.Generator, error) {
	var opts []generate.Option
	if r.Generator.Selector != "" {
		sel, err := generate.ParseSelector(r.Generator.Selector, r.Generator.Mixed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generate.WithSelector(sel))
	}
	w, err := generate.ParseWeighting(r.Generator.Weighting)
	if err != nil {
		return nil, err
	}
	opts = append(opts, generate.WithWeighting(w))
	if r.Generator.Seeds != 0 {
		opts = append(opts, generate.WithSeeds(r.Generator.Seeds))
	}
	gen, err := generate.ByName(r.Generator.Name, opts...)
	if err != nil {
		return nil, err
	}
	if r.Braid == nil {
		return gen, nil
	}
	if r.Braid.DeadEnds < 0 || r.Braid.DeadEnds > 1 {
		return nil, fmt.Errorf("%w: dead_ends %v outside [0, 1]", generate.ErrInvalidOption, r.Braid.DeadEnds)
	}
	return generate.Chain(gen, generate.Braid{DeadEnds: r.Braid.DeadEnds}), nil
}

// Solve resolves the solver and the options of its call.
func (r Run) Solve() (solve.Solver, []solve.Option, error) {
	s, err := solve.ByName(r.Solver.Name)
	if err != nil {
		return nil, nil, err
	}
	hand, err := solve.ParseHand(r.Solver.Hand)
	if err != nil {
		return nil, nil, err
	}
	if r.Solver.MaxSteps < 0 || r.Solver.Heading < 0 {
		return nil, nil, fmt.Errorf("%w: max_steps and heading must be non-negative", solve.ErrOptionViolation)
	}
	opts := []solve.Option{
		solve.WithMaxSteps(r.Solver.MaxSteps),
		solve.WithHand(hand),
		solve.WithHeading(r.Solver.Heading),
	}
	if r.Solver.Seed != 0 {
		opts = append(opts, solve.WithRand(randomFor(r.Solver.Seed)))
	}
	return s, opts, nil
}
