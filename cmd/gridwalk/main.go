// Command gridwalk is a small demonstration front end for the gridgraph
// package: it reads an ASCII map from a file, runs FindPath between the
// map's 'S' and 'T' markers, and prints the turn-compressed waypoint
// list — or, with -tui, opens a terminal view of the grid with the path
// overlaid.
//
// This supplements (rather than replaces) gridgraph's own package tests;
// it exists to give the library a runnable surface, the same role the
// donor repo's examples/ directory served for its own packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func main() {
	mapPath := flag.String("map", "", "path to an ASCII map file (required)")
	tui := flag.Bool("tui", false, "open an interactive terminal view instead of printing the path")
	heapCap := flag.Int("heap-capacity", 0, "initial open-set heap capacity (0 picks a default)")
	flag.Parse()

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "gridwalk: -map is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*mapPath, *tui, *heapCap); err != nil {
		fmt.Fprintln(os.Stderr, "gridwalk:", err)
		os.Exit(1)
	}
}

func run(mapPath string, tui bool, heapCapacity int) error {
	f, err := os.Open(mapPath)
	if err != nil {
		return fmt.Errorf("opening map: %w", err)
	}
	defer f.Close()

	gm, err := parseMap(f)
	if err != nil {
		return err
	}

	opts := gridgraph.DefaultPathfinderOptions()
	opts.HeapCapacity = heapCapacity
	pf, err := gridgraph.NewPathfinder(gm.width, gm.height, gm.cost, opts)
	if err != nil {
		return fmt.Errorf("constructing pathfinder: %w", err)
	}
	defer pf.Dispose()

	reached := pf.FindPath([]gridgraph.Point{gm.source}, gm.target)
	var path []gridgraph.Point
	if reached {
		path, _ = pf.GetPath(nil, gm.target)
	}

	if tui {
		return runTUI(gm, path, reached)
	}

	if !reached {
		fmt.Println("no path")
		return nil
	}
	fmt.Println(path)

	return nil
}
