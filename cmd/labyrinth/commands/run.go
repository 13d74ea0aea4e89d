package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solve"
	"github.com/katalvlaran/labyrinth/storage"
)

// runFlags are the flags shared by generate and export.
type runFlags struct {
	file      string
	generator string
	solver    string
	storage   string
	seed      int64
	dims      []int
	braid     float64
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "", "YAML run description (default: built-in)")
	fs.StringVar(&f.generator, "generator", "", "generator name, see 'labyrinth names'")
	fs.StringVar(&f.solver, "solver", "", "solver name, see 'labyrinth names'")
	fs.StringVar(&f.storage, "storage", "", "storage backend: inline or block")
	fs.Int64Var(&f.seed, "seed", 0, "generator seed")
	fs.IntSliceVar(&f.dims, "dims", nil, "box dimensions, e.g. 20,12")
	fs.Float64Var(&f.braid, "braid", -1, "dead-end fraction to keep after braiding, in [0, 1]")
}

// resolve loads the run description and applies the flags set on cmd.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Run, error) {
	r := config.Default()
	if f.file != "" {
		var err error
		if r, err = config.Load(f.file); err != nil {
			return config.Run{}, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("generator") {
		r.Generator.Name = f.generator
	}
	if fs.Changed("solver") {
		r.Solver.Name = f.solver
	}
	if fs.Changed("storage") {
		r.Storage = f.storage
	}
	if fs.Changed("seed") {
		r.Generator.Seed = f.seed
	}
	if fs.Changed("dims") {
		r.Space = config.Space{Kind: config.KindBox, Dims: f.dims}
		r.Start, r.Goal = nil, nil
	}
	if fs.Changed("braid") {
		r.Braid = &config.Braid{DeadEnds: f.braid}
	}
	return r, r.Validate()
}

// result is one carved and solved maze.
type result struct {
	inst *config.Instance
	path maze.Path
}

// execute builds, carves and solves r, logging each stage.
func execute(cmd *cobra.Command, r config.Run) (*result, error) {
	inst, err := r.Build()
	if err != nil {
		return nil, err
	}
	attrs := []any{"space", r.Space.Kind, "cells", inst.Maze.Len()}
	if b, ok := inst.Maze.(interface{ Backend() storage.Backend }); ok {
		attrs = append(attrs, "bytes", b.Backend().Bytes())
	}
	slog.Debug("maze allocated", attrs...)

	gen, err := r.Carver()
	if err != nil {
		return nil, err
	}
	began := time.Now()
	if err = gen.Generate(inst.Maze, r.Rand()); err != nil {
		return nil, fmt.Errorf("generate %s: %w", r.Generator.Name, err)
	}
	slog.Debug("maze generated",
		"generator", r.Generator.Name,
		"seed", r.Generator.Seed,
		"passages", maze.Passages(inst.Maze),
		"dead_ends", maze.DeadEnds(inst.Maze),
		"perfect", maze.IsPerfect(inst.Maze),
		"elapsed", time.Since(began))

	s, opts, err := r.Solve()
	if err != nil {
		return nil, err
	}
	began = time.Now()
	p, err := s.Solve(inst.Maze, inst.Start, solve.To(inst.Goal), append(opts, solve.WithContext(cmd.Context()))...)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", r.Solver.Name, err)
	}
	slog.Debug("maze solved", "solver", r.Solver.Name, "length", p.Edges(), "elapsed", time.Since(began))
	return &result{inst: inst, path: p}, nil
}
