// Package pq provides the frontier containers shared by the search
// algorithms: an indexed binary min-heap with in-place priority updates,
// an array-backed FIFO queue with amortised O(1) dequeue, and a LIFO stack.
//
// Heap:
//
//   - Ordered by a caller-supplied less(a, b P) on priorities.
//   - Push on a key already present updates its priority in place
//     (decrease-key or increase-key) instead of adding a duplicate.
//   - Ties under less are broken by insertion sequence, so equal
//     priorities pop in first-pushed order and results are deterministic.
//   - A key→slot map gives O(1) Contains / Priority lookups.
//
// Queue:
//
//   - A slice plus head index; Pop advances the head instead of shifting.
//   - When more than half of the backing slice has been consumed the live
//     tail is copied to the front, keeping memory bounded.
//
// Complexity:
//
//   - Heap Push / Pop / Remove: O(log n).  Peek / Len / Contains: O(1).
//   - Queue Push / Pop: amortised O(1).
//   - Stack Push / Pop: amortised O(1).
//
// None of the containers are safe for concurrent use; each search run owns
// its own.
package pq
