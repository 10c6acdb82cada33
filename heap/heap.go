package heap

// Comparator defines the total order a BinaryHeap sorts its elements under.
//
// Compare(a, b) must return a positive value when a belongs above b (closer
// to the head), negative when a belongs below b, and 0 when the two compare
// equal (in which case relative order is unspecified — stability is not
// part of the contract).
type Comparator[T any] interface {
	Compare(a, b T) int
}

// BinaryHeap is a growable array-backed binary heap over elements of type T,
// ordered by a comparator of type C. C is held by value: mutating it between
// searches (e.g. retargeting a heuristic) changes the order future sifts
// observe without needing a new heap.
//
// Not safe for concurrent use; callers that need one search per goroutine
// should construct one BinaryHeap per goroutine.
type BinaryHeap[T any, C Comparator[T]] struct {
	data []T
	cmp  C
}

// NewBinaryHeap constructs an empty heap with the given starting capacity
// (capacity grows by doubling as needed; a capacity of 1 is valid) and
// comparator cmp.
//
// Complexity: O(capacity) allocation.
func NewBinaryHeap[T any, C Comparator[T]](capacity int, cmp C) *BinaryHeap[T, C] {
	if capacity < 1 {
		capacity = 1
	}

	return &BinaryHeap[T, C]{
		data: make([]T, 0, capacity),
		cmp:  cmp,
	}
}

// Comparator returns a pointer to the heap's embedded comparator so callers
// can mutate its state (e.g. update a search target) between Clear calls.
func (h *BinaryHeap[T, C]) Comparator() *C {
	return &h.cmp
}

// Len returns the number of elements currently stored.
//
// Complexity: O(1).
func (h *BinaryHeap[T, C]) Len() int {
	return len(h.data)
}

// IsEmpty reports whether the heap holds no elements.
//
// Complexity: O(1).
func (h *BinaryHeap[T, C]) IsEmpty() bool {
	return len(h.data) == 0
}

// Clear empties the heap while retaining its backing array capacity.
//
// Complexity: O(1).
func (h *BinaryHeap[T, C]) Clear() {
	h.data = h.data[:0]
}

// Head returns the element the comparator ranks highest, without removing
// it. Panics if the heap is empty — callers must check IsEmpty first.
//
// Complexity: O(1).
func (h *BinaryHeap[T, C]) Head() T {
	if len(h.data) == 0 {
		panic("heap: Head called on empty BinaryHeap")
	}

	return h.data[0]
}

// Push appends x and sifts it upward until heap order holds.
//
// Complexity: O(log n) amortized.
func (h *BinaryHeap[T, C]) Push(x T) {
	if len(h.data) == cap(h.data) {
		grown := make([]T, len(h.data), max(2*cap(h.data), 1))
		copy(grown, h.data)
		h.data = grown
	}
	h.data = append(h.data, x)
	h.siftUp(len(h.data) - 1)
}

// PopHead removes and returns the head element, moving the last element
// into its place and sifting it downward. Panics if the heap is empty.
//
// Complexity: O(log n).
func (h *BinaryHeap[T, C]) PopHead() T {
	if len(h.data) == 0 {
		panic("heap: PopHead called on empty BinaryHeap")
	}

	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero // drop the reference so it can be GC'd
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return top
}

// ValidateIntegrity walks the whole backing array and returns -1 if heap
// order holds everywhere, or the index of the first element that violates
// it against its parent. Used only by tests; O(n).
func (h *BinaryHeap[T, C]) ValidateIntegrity() int {
	for i := 1; i < len(h.data); i++ {
		parent := (i - 1) / 2
		if h.cmp.Compare(h.data[parent], h.data[i]) < 0 {
			return i
		}
	}

	return -1
}

// siftUp moves the element at index i upward while its parent compares
// strictly lower under cmp. Stops on equality — equal-priority elements
// need not swap.
func (h *BinaryHeap[T, C]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp.Compare(h.data[parent], h.data[i]) >= 0 {
			break
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

// siftDown moves the element at index i downward, at each step swapping
// with whichever child the comparator ranks highest, until neither child
// outranks it.
func (h *BinaryHeap[T, C]) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.cmp.Compare(h.data[left], h.data[largest]) > 0 {
			largest = left
		}
		if right < n && h.cmp.Compare(h.data[right], h.data[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}
