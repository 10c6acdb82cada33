package gridgraph_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// buildCost turns a rectangular ASCII map into a flat cost buffer with a
// 1-cell impassable border, same convention as the package's own test
// harness: ' ' = cost 0, 'X' = impassable, digits = that integer cost.
func buildCost(rows []string) (width, height int, cost []float32) {
	innerH := len(rows)
	innerW := len(rows[0])
	width, height = innerW+2, innerH+2
	cost = make([]float32, width*height)
	inf := float32(math.Inf(1))
	for i := range cost {
		cost[i] = inf
	}
	for y, row := range rows {
		for x, ch := range row {
			c := float32(0)
			switch {
			case ch >= '0' && ch <= '9':
				c = float32(ch - '0')
			case ch != ' ':
				c = inf
			}
			cost[(y+1)*width+(x+1)] = c
		}
	}

	return width, height, cost
}

// ExamplePathfinder_FindPath routes around a short wall, then prints the
// turn-compressed waypoint list from target back to source.
//
// Map ('X' walls the middle cell of the top row):
//
//	" X "
//	"   "
func ExamplePathfinder_FindPath() {
	width, height, cost := buildCost([]string{
		" X ",
		"   ",
	})
	pf, err := gridgraph.NewPathfinder(width, height, cost, gridgraph.DefaultPathfinderOptions())
	if err != nil {
		panic(err)
	}

	source := gridgraph.Point{X: 1, Y: 1}
	target := gridgraph.Point{X: 3, Y: 1}
	if !pf.FindPath([]gridgraph.Point{source}, target) {
		fmt.Println("no path")
		return
	}
	path, _ := pf.GetPath(nil, target)
	fmt.Println(path)
	// Output:
	// [{3 1} {3 2} {1 2} {1 1}]
}

// ExamplePathfinder_FloodFill relaxes every reachable cell from a single
// source, then reconstructs a path back to one of the farther corners
// using the populated predecessor field — no target was ever named
// during the search itself.
func ExamplePathfinder_FloodFill() {
	width, height, cost := buildCost([]string{
		"   ",
		"   ",
		"   ",
	})
	pf, err := gridgraph.NewPathfinder(width, height, cost, gridgraph.DefaultPathfinderOptions())
	if err != nil {
		panic(err)
	}

	if !pf.FloodFill([]gridgraph.Point{{X: 1, Y: 1}}) {
		fmt.Println("flood fill rejected")
		return
	}
	path, ok := pf.GetPath(nil, gridgraph.Point{X: 3, Y: 3})
	if !ok {
		fmt.Println("corner never reached")
		return
	}
	fmt.Println(path)
	// Output:
	// [{3 3} {1 1}]
}
