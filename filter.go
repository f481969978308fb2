package stringqueue

// Ascend removes every element that has a strictly smaller value anywhere to
// its right and returns the resulting size.
func (q *Queue) Ascend() int {
	return q.keepMonotonic(func(candidate, survivor string) bool {
		return candidate <= survivor
	})
}

// Descend removes every element that has a strictly greater value anywhere
// to its right and returns the resulting size.
func (q *Queue) Descend() int {
	return q.keepMonotonic(func(candidate, survivor string) bool {
		return candidate >= survivor
	})
}

// keepMonotonic walks from the tail towards the front with two cursors:
// survivor is the leftmost element kept so far and candidate the element
// directly to its left. keep decides whether candidate stays; otherwise it is
// released and the new left neighbour of survivor is tried next.
func (q *Queue) keepMonotonic(keep func(candidate, survivor string) bool) int {
	if !q.live() || q.head.Empty() {
		return 0
	}

	h := &q.head
	survivor := h.Last()
	for candidate := survivor.Prev(); candidate != h; candidate = survivor.Prev() {
		if keep(candidate.Entry().Value, survivor.Entry().Value) {
			survivor = candidate
			continue
		}
		q.discard(candidate.Entry())
	}
	return q.Size()
}
