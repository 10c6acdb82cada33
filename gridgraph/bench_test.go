package gridgraph

import "testing"

// BenchmarkFloodFill measures FloodFill on a 1000×1000 all-cost-0 open
// field (plus its impassable border), mirroring the donor's
// BenchmarkConnectedComponents setup.
func BenchmarkFloodFill(b *testing.B) {
	const n = 1000
	rows := make([]string, n)
	for i := range rows {
		row := make([]byte, n)
		for j := range row {
			row[j] = ' '
		}
		rows[i] = string(row)
	}
	w, h, cost := parseMap(rows)
	pf, err := NewPathfinder(w, h, cost, DefaultPathfinderOptions())
	if err != nil {
		b.Fatalf("setup NewPathfinder failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.FloodFill([]Point{{1, 1}})
	}
}

// BenchmarkFindPath measures FindPath between opposite corners of the
// same 1000×1000 open field.
func BenchmarkFindPath(b *testing.B) {
	const n = 1000
	rows := make([]string, n)
	for i := range rows {
		row := make([]byte, n)
		for j := range row {
			row[j] = ' '
		}
		rows[i] = string(row)
	}
	w, h, cost := parseMap(rows)
	pf, err := NewPathfinder(w, h, cost, DefaultPathfinderOptions())
	if err != nil {
		b.Fatalf("setup NewPathfinder failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.FindPath([]Point{{1, 1}}, Point{n, n})
	}
}
