// Package list provides a circular doubly-linked list whose links live inside
// the records they chain together.
//
// A Head serves two roles. Embedded in a record it is that record's link;
// standing alone it is the sentinel of a list. A sentinel whose next and prev
// both point back to itself is an empty list. Each link remembers the record
// it is embedded in, so code walking the ring can recover the owning record
// without pointer arithmetic.
//
// Every operation except Len is O(1). The list does not track its length.
package list

import "iter"

// Head is a list link. The zero value is not a valid list; call Init (or
// Bind for links embedded in a record) before use.
type Head[T any] struct {
	next  *Head[T]
	prev  *Head[T]
	owner T
}

// Init makes h self-circular, which is the empty-list state.
func (h *Head[T]) Init() {
	h.next = h
	h.prev = h
}

// Bind records owner as the record h is embedded in and initialises h.
func (h *Head[T]) Bind(owner T) {
	h.owner = owner
	h.Init()
}

// Entry returns the record h is embedded in. For a sentinel it returns the
// zero value of T.
func (h *Head[T]) Entry() T {
	return h.owner
}

// Next returns the link following h in its ring.
func (h *Head[T]) Next() *Head[T] { return h.next }

// Prev returns the link preceding h in its ring.
func (h *Head[T]) Prev() *Head[T] { return h.prev }

// First returns the first link of the list headed by h, or h itself when the
// list is empty.
func (h *Head[T]) First() *Head[T] { return h.next }

// Last returns the last link of the list headed by h, or h itself when the
// list is empty.
func (h *Head[T]) Last() *Head[T] { return h.prev }

// Empty reports whether the list headed by h holds no links.
func (h *Head[T]) Empty() bool {
	return h.next == h
}

// Singular reports whether the list headed by h holds exactly one link.
func (h *Head[T]) Singular() bool {
	return !h.Empty() && h.next == h.prev
}

func link[T any](n, prev, next *Head[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// Add inserts n directly after h. With h as sentinel this is a head insert.
func (h *Head[T]) Add(n *Head[T]) {
	link(n, h, h.next)
}

// AddTail inserts n directly before h. With h as sentinel this is a tail
// insert.
func (h *Head[T]) AddTail(n *Head[T]) {
	link(n, h.prev, h)
}

// Del unlinks h from whichever ring it is in. The links of h are cleared
// afterwards; h must be re-initialised or re-added before further use.
func (h *Head[T]) Del() {
	h.unlink()
	h.next = nil
	h.prev = nil
}

func (h *Head[T]) unlink() {
	h.next.prev = h.prev
	h.prev.next = h.next
}

// Move relocates n to directly after h.
func (h *Head[T]) Move(n *Head[T]) {
	n.unlink()
	h.Add(n)
}

// MoveTail relocates n to directly before h.
func (h *Head[T]) MoveTail(n *Head[T]) {
	n.unlink()
	h.AddTail(n)
}

func splice[T any](list, prev, next *Head[T]) {
	first := list.next
	last := list.prev

	first.prev = prev
	prev.next = first

	last.next = next
	next.prev = last
}

// Splice joins the links of list in front of the links of h. list itself is
// left pointing into h's ring and must be re-initialised before reuse.
func (h *Head[T]) Splice(list *Head[T]) {
	if !list.Empty() {
		splice(list, h, h.next)
	}
}

// SpliceTail joins the links of list after the links of h.
func (h *Head[T]) SpliceTail(list *Head[T]) {
	if !list.Empty() {
		splice(list, h.prev, h)
	}
}

// SpliceInit is Splice followed by re-initialising list to empty.
func (h *Head[T]) SpliceInit(list *Head[T]) {
	if !list.Empty() {
		splice(list, h, h.next)
		list.Init()
	}
}

// SpliceTailInit is SpliceTail followed by re-initialising list to empty.
func (h *Head[T]) SpliceTailInit(list *Head[T]) {
	if !list.Empty() {
		splice(list, h.prev, h)
		list.Init()
	}
}

// Len counts the links of the list headed by h. It is O(n).
func (h *Head[T]) Len() int {
	n := 0
	for it := h.next; it != h; it = it.next {
		n++
	}
	return n
}

// Links yields every link of the list headed by h, front to back. The
// successor is read before each yield, so the yielded link may be deleted or
// moved by the loop body.
func (h *Head[T]) Links() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		for it, safe := h.next, h.next.next; it != h; it, safe = safe, safe.next {
			if !yield(it) {
				return
			}
		}
	}
}

// Entries yields the owner of every link, front to back, with the same
// deletion guarantee as Links.
func (h *Head[T]) Entries() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := range h.Links() {
			if !yield(it.owner) {
				return
			}
		}
	}
}

// Backward yields the owner of every link, back to front. The predecessor is
// read before each yield.
func (h *Head[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, safe := h.prev, h.prev.prev; it != h; it, safe = safe, safe.prev {
			if !yield(it.owner) {
				return
			}
		}
	}
}
