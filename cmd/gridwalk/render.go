package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// runTUI opens a terminal screen and draws gm with the resolved path
// overlaid, then waits for q, Esc, Enter or Ctrl-C before exiting; other
// keys are ignored. Grounded on the
// tcell screen lifecycle used throughout the terminal game in the pack
// (init, draw cells with SetContent, Show, poll for quit) but with none
// of that game's scene/input-mode machinery — gridwalk only ever draws
// one static frame.
func runTUI(gm *gridMap, path []gridgraph.Point, reached bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("gridwalk: opening terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("gridwalk: initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	drawFrame(screen, gm, path, reached)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawFrame(screen, gm, path, reached)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyEnter:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			}
		}
	}
}

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleOpen   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleSource = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
)

// drawFrame renders one frame: the cost field as walls/open cells, the
// raw (uncompressed) path walked cell-by-cell between the waypoints
// returned by Pathfinder.GetPath, then source and target on top.
func drawFrame(screen tcell.Screen, gm *gridMap, waypoints []gridgraph.Point, reached bool) {
	screen.Clear()

	for y := 0; y < gm.height; y++ {
		for x := 0; x < gm.width; x++ {
			idx := y*gm.width + x
			style := styleOpen
			ch := '.'
			if isInfCost(gm.cost[idx]) {
				style = styleWall
				ch = '#'
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	if reached {
		for _, seg := range walkWaypoints(waypoints) {
			screen.SetContent(seg.X, seg.Y, '*', nil, stylePath)
		}
	}

	screen.SetContent(gm.source.X, gm.source.Y, 'S', nil, styleSource)
	screen.SetContent(gm.target.X, gm.target.Y, 'T', nil, styleTarget)

	status := "path found — press q/Esc to quit"
	if !reached {
		status = "no path — press q/Esc to quit"
	}
	for i, r := range status {
		screen.SetContent(i, gm.height, r, nil, tcell.StyleDefault)
	}

	screen.Show()
}

// walkWaypoints expands a turn-compressed waypoint list (target-first,
// source-last, as returned by Pathfinder.GetPath) back into every cell
// crossed along each straight segment, for cell-by-cell rendering.
func walkWaypoints(waypoints []gridgraph.Point) []gridgraph.Point {
	if len(waypoints) == 0 {
		return nil
	}

	var cells []gridgraph.Point
	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]
		dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
		cur := from
		for cur != to {
			cells = append(cells, cur)
			cur.X += dx
			cur.Y += dy
		}
	}
	cells = append(cells, waypoints[len(waypoints)-1])

	return cells
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func isInfCost(c float32) bool {
	return c > 1e30
}
