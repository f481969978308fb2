package stringqueue

import "github.com/timzifer/string_queue/internal/list"

// DeleteMid removes and releases the element at index ⌊n/2⌋, counting from
// zero; for an even number of elements that is the one just after the
// midpoint. It reports false when the queue is invalid or empty.
func (q *Queue) DeleteMid() bool {
	if !q.live() || q.head.Empty() {
		return false
	}

	h := &q.head
	slow, fast := h.First(), h.First()
	for fast != h && fast.Next() != h {
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	q.discard(slow.Entry())
	return true
}

// DeleteDup removes every run of consecutive equal values in full, keeping
// only values that are not repeated next to themselves. The queue is
// expected to be sorted; on unsorted input only adjacent repeats are seen.
// It reports false only when the queue is invalid.
func (q *Queue) DeleteDup() bool {
	if !q.live() {
		return false
	}

	inRun := false
	for it := range q.head.Links() {
		e := it.Entry()
		next := it.Next()
		if next != &q.head && next.Entry().Value == e.Value {
			q.discard(e)
			inRun = true
		} else if inRun {
			q.discard(e)
			inRun = false
		}
	}
	return true
}

// Swap exchanges the values of each adjacent pair: first with second, third
// with fourth, and so on. A trailing odd element stays put. Links are not
// touched.
func (q *Queue) Swap() {
	if !q.live() {
		return
	}

	h := &q.head
	for a := h.First(); a != h && a.Next() != h; a = a.Next().Next() {
		first, second := a.Entry(), a.Next().Entry()
		first.Value, second.Value = second.Value, first.Value
	}
}

// Reverse reverses the order of the queue by moving each element in turn
// to the front.
func (q *Queue) Reverse() {
	if !q.live() || q.head.Empty() {
		return
	}

	for it := range q.head.Links() {
		q.head.Move(it)
	}
}

// ReverseK reverses the queue in consecutive blocks of k elements, left to
// right. A trailing block shorter than k keeps its order. k <= 0 is a no-op.
func (q *Queue) ReverseK(k int) {
	if !q.live() || k <= 0 {
		return
	}

	var block, done list.Head[*Element]
	block.Init()
	done.Init()

	it := q.head.First()
	for blocks := q.head.Len() / k; blocks > 0; blocks-- {
		for range k {
			next := it.Next()
			block.Move(it)
			it = next
		}
		done.SpliceTailInit(&block)
	}
	q.head.SpliceInit(&done)
}
