// Package main is the entry point for the labyrinth CLI.
//
// Usage:
//
//	labyrinth [flags] <command> [args]
//
// Commands:
//
//	generate - Carve and solve a maze, then draw it
//	export   - Carve and solve a maze, then save a msgpack snapshot
//	show     - Draw a snapshot from a file or an archive
//	list     - List the snapshots of an archive
//	serve    - Stream endless Eller mazes over WebSocket
//	names    - List generators, solvers and storage backends
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/labyrinth/cmd/labyrinth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
