package rangeblaze

// priorityIter is the pull cursor a merge pulls from: a stream of
// priority-tagged (range,value) pairs in non-decreasing start order.
// A single producer's own output is already sorted by start; Merge/KMerge
// combine several such producers.
type priorityIter[T Integer, V comparable] interface {
	Next() (priorityItem[T, V], bool)
}

type slicePriorityIter[T Integer, V comparable] struct {
	items []priorityItem[T, V]
	pos   int
}

func newSlicePriorityIter[T Integer, V comparable](items []priorityItem[T, V]) *slicePriorityIter[T, V] {
	return &slicePriorityIter[T, V]{items: items}
}

func (s *slicePriorityIter[T, V]) Next() (priorityItem[T, V], bool) {
	if s.pos >= len(s.items) {
		var zero priorityItem[T, V]
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// mergeHeapItem holds one source's current head item plus the cursor it came
// from, so the heap can refill from the same source after popping.
type mergeHeapItem[T Integer, V comparable] struct {
	item   priorityItem[T, V]
	source priorityIter[T, V]
}

type mergeHeap[T Integer, V comparable] struct {
	items []*mergeHeapItem[T, V]
}

func (h *mergeHeap[T, V]) Len() int { return len(h.items) }

// Less orders by range start only; ties are broken arbitrarily at this
// stage, not by priority (priority resolution happens later, in the stream
// algebra that consumes this merge's output).
func (h *mergeHeap[T, V]) Less(i, j int) bool {
	return h.items[i].item.rng.Start < h.items[j].item.rng.Start
}

func (h *mergeHeap[T, V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *mergeHeap[T, V]) Push(x *mergeHeapItem[T, V]) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

func (h *mergeHeap[T, V]) Pop() *mergeHeapItem[T, V] {
	if len(h.items) == 0 {
		return nil
	}
	item := h.items[0]
	n := len(h.items) - 1
	h.items[0] = h.items[n]
	h.items = h.items[:n]
	if n > 0 {
		h.down(0)
	}
	return item
}

func (h *mergeHeap[T, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.Less(i, parent) {
			break
		}
		h.Swap(i, parent)
		i = parent
	}
}

func (h *mergeHeap[T, V]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && h.Less(right, left) {
			smallest = right
		}
		if !h.Less(smallest, i) {
			break
		}
		h.Swap(i, smallest)
		i = smallest
	}
}

// KMerge performs a k-way merge of priority-tagged range streams, each
// already in non-decreasing-start order, into a single non-decreasing-start
// stream. Overlaps between sources are preserved as-is (SortedStarts, not
// SortedDisjoint); resolving them is the stream algebra's job (union_iter.go
// etc), not the merge's.
type KMerge[T Integer, V comparable] struct {
	heap    *mergeHeap[T, V]
	inited  bool
	sources []priorityIter[T, V]
}

// NewKMerge builds a k-way merge over the given sources.
func NewKMerge[T Integer, V comparable](sources ...priorityIter[T, V]) *KMerge[T, V] {
	return &KMerge[T, V]{sources: sources}
}

func (m *KMerge[T, V]) ensureInit() {
	if m.inited {
		return
	}
	m.inited = true
	m.heap = &mergeHeap[T, V]{items: make([]*mergeHeapItem[T, V], 0, len(m.sources))}
	for _, src := range m.sources {
		if item, ok := src.Next(); ok {
			m.heap.Push(&mergeHeapItem[T, V]{item: item, source: src})
		}
	}
}

func (m *KMerge[T, V]) Next() (priorityItem[T, V], bool) {
	m.ensureInit()
	top := m.heap.Pop()
	if top == nil {
		var zero priorityItem[T, V]
		return zero, false
	}
	result := top.item
	if next, ok := top.source.Next(); ok {
		top.item = next
		m.heap.Push(top)
	}
	return result, true
}

// Merge is the 2-way specialization of KMerge. Both share the same
// heap-driven implementation since a 2-element heap is already optimal.
func Merge[T Integer, V comparable](a, b priorityIter[T, V]) *KMerge[T, V] {
	return NewKMerge(a, b)
}

// drainPriorityIter collects a priority stream into a slice.
func drainPriorityIter[T Integer, V comparable](it priorityIter[T, V]) []priorityItem[T, V] {
	var out []priorityItem[T, V]
	for {
		item, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}
