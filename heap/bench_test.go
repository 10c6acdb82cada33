package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/heap"
)

// BenchmarkBinaryHeap_PushPopHead measures amortized Push/PopHead cost on a
// heap of 10000 random ints, mirroring gridgraph's BenchmarkFloodFill
// setup style: deterministic random data, ResetTimer after setup.
func BenchmarkBinaryHeap_PushPopHead(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(1 << 20)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.NewBinaryHeap[int, intMaxCmp](n, intMaxCmp{})
		for _, v := range values {
			h.Push(v)
		}
		for !h.IsEmpty() {
			h.PopHead()
		}
	}
}
