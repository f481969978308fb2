package list

// Sort orders the list headed by h by cmp applied to the link owners, in
// ascending order. It is a top-down merge sort that allocates nothing.
//
// The ring is opened into a nil-terminated forward chain first, so the
// recursive split and merge only maintain next links. Prev links and
// circularity are rebuilt in a single pass once the chain is sorted.
//
// When cmp reports equality the link from the right half is emitted first,
// so the sort is not stable.
func (h *Head[T]) Sort(cmp func(a, b T) int) {
	if h.Empty() || h.Singular() {
		return
	}

	h.prev.next = nil
	h.next = mergeSort(h.next, cmp)

	prev := h
	for it := h.next; it != nil; it = it.next {
		it.prev = prev
		prev = it
	}
	prev.next = h
	h.prev = prev
}

func mergeSort[T any](first *Head[T], cmp func(a, b T) int) *Head[T] {
	if first == nil || first.next == nil {
		return first
	}

	slow, fast := first, first
	for fast.next != nil && fast.next.next != nil {
		fast = fast.next.next
		slow = slow.next
	}
	right := slow.next
	slow.next = nil

	return mergeChains(mergeSort(first, cmp), mergeSort(right, cmp), cmp)
}

func mergeChains[T any](left, right *Head[T], cmp func(a, b T) int) *Head[T] {
	var merged *Head[T]
	tail := &merged
	for left != nil && right != nil {
		if cmp(left.owner, right.owner) >= 0 {
			*tail = right
			right = right.next
		} else {
			*tail = left
			left = left.next
		}
		tail = &(*tail).next
	}

	if left != nil {
		*tail = left
	} else {
		*tail = right
	}
	return merged
}
