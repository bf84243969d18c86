package pq

// heapItem is one slot in the heap.
type heapItem[K comparable, P any] struct {
	key  K
	prio P
	seq  uint64 // insertion sequence for stable ties
}

// Heap is an indexed binary min-heap keyed by K and ordered by P.
// The zero value is not usable; construct with NewHeap.
type Heap[K comparable, P any] struct {
	items []heapItem[K, P]
	index map[K]int // key → slot in items
	less  func(a, b P) bool
	seq   uint64
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[K comparable, P any](less func(a, b P) bool) *Heap[K, P] {
	return &Heap[K, P]{
		items: make([]heapItem[K, P], 0, 16),
		index: make(map[K]int, 16),
		less:  less,
	}
}

// Len returns the number of keys in the heap.
func (h *Heap[K, P]) Len() int { return len(h.items) }

// Contains reports whether key is currently in the heap.
func (h *Heap[K, P]) Contains(key K) bool {
	_, ok := h.index[key]
	return ok
}

// Priority returns the current priority of key.
func (h *Heap[K, P]) Priority(key K) (P, bool) {
	i, ok := h.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	return h.items[i].prio, true
}

// Push inserts key with prio. If key is already present its priority is
// replaced and the heap re-fixed around that slot; the key keeps its
// original tie-break sequence.
// Complexity: O(log n).
func (h *Heap[K, P]) Push(key K, prio P) {
	if i, ok := h.index[key]; ok {
		h.items[i].prio = prio
		if !h.down(i) {
			h.up(i)
		}
		return
	}
	h.seq++
	h.items = append(h.items, heapItem[K, P]{key: key, prio: prio, seq: h.seq})
	n := len(h.items) - 1
	h.index[key] = n
	h.up(n)
}

// Peek returns the minimum key and priority without removing it.
func (h *Heap[K, P]) Peek() (K, P, bool) {
	if len(h.items) == 0 {
		var k K
		var p P
		return k, p, false
	}
	it := h.items[0]
	return it.key, it.prio, true
}

// Pop removes and returns the minimum key and its priority.
// Complexity: O(log n).
func (h *Heap[K, P]) Pop() (K, P, bool) {
	if len(h.items) == 0 {
		var k K
		var p P
		return k, p, false
	}
	it := h.removeAt(0)
	return it.key, it.prio, true
}

// Remove deletes key from the heap, reporting whether it was present.
// Complexity: O(log n).
func (h *Heap[K, P]) Remove(key K) bool {
	i, ok := h.index[key]
	if !ok {
		return false
	}
	h.removeAt(i)
	return true
}

// Clear empties the heap, keeping allocated capacity.
func (h *Heap[K, P]) Clear() {
	h.items = h.items[:0]
	clear(h.index)
	h.seq = 0
}

func (h *Heap[K, P]) removeAt(i int) heapItem[K, P] {
	n := len(h.items) - 1
	it := h.items[i]
	if i != n {
		h.swap(i, n)
	}
	h.items = h.items[:n]
	delete(h.index, it.key)
	if i != n {
		if !h.down(i) {
			h.up(i)
		}
	}
	return it
}

// before orders slot i ahead of slot j: by priority, then by sequence.
func (h *Heap[K, P]) before(i, j int) bool {
	a, b := &h.items[i], &h.items[j]
	if h.less(a.prio, b.prio) {
		return true
	}
	if h.less(b.prio, a.prio) {
		return false
	}
	return a.seq < b.seq
}

func (h *Heap[K, P]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].key] = i
	h.index[h.items[j].key] = j
}

func (h *Heap[K, P]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.before(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts slot i0 towards the leaves and reports whether it moved.
func (h *Heap[K, P]) down(i0 int) bool {
	n := len(h.items)
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n {
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.before(j2, j1) {
			j = j2 // right child
		}
		if !h.before(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
