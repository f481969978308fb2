package stringqueue

import (
	"iter"

	"github.com/timzifer/string_queue/internal/list"
)

// Element is a queue entry. While linked into a queue the queue owns it;
// once returned by RemoveHead or RemoveTail the caller owns it and should
// hand it back with Release.
type Element struct {
	Value string

	link  list.Head[*Element]
	alloc *Allocator
}

// Release gives the element's storage back to the allocator it came from.
// It must only be called on an element that is no longer linked into a
// queue. Releasing nil is a no-op.
func (e *Element) Release() {
	if e == nil || e.alloc == nil {
		return
	}
	// record and payload copy
	e.alloc.release()
	e.alloc.release()
	e.alloc = nil
	e.Value = ""
}

// Queue is a string queue backed by a circular doubly-linked list with a
// sentinel head.
//
// Every method accepts a nil or freed receiver and returns the neutral value
// for its result type. Queue is not safe for concurrent use.
type Queue struct {
	head  list.Head[*Element]
	alloc *Allocator
}

// New returns an empty queue, or nil if allocating its sentinel failed.
func New(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.alloc.alloc(); err != nil {
		return nil
	}
	q := &Queue{alloc: o.alloc}
	q.head.Init()
	return q
}

func (q *Queue) live() bool {
	return q != nil && q.alloc != nil
}

// Free releases every element and then the sentinel. A freed queue behaves
// like a nil queue from then on.
func (q *Queue) Free() {
	if !q.live() {
		return
	}

	for it := range q.head.Links() {
		it.Del()
		it.Entry().Release()
	}
	q.alloc.release()
	q.alloc = nil
}

// InsertHead puts a copy of s at the front of the queue. It reports false
// when q is invalid or an allocation failed, in which case the queue is
// unchanged.
func (q *Queue) InsertHead(s string) bool {
	if !q.live() {
		return false
	}
	e, err := q.alloc.newElement(s)
	if err != nil {
		return false
	}
	q.head.Add(&e.link)
	return true
}

// InsertTail puts a copy of s at the back of the queue. Failure semantics
// match InsertHead.
func (q *Queue) InsertTail(s string) bool {
	if !q.live() {
		return false
	}
	e, err := q.alloc.newElement(s)
	if err != nil {
		return false
	}
	q.head.AddTail(&e.link)
	return true
}

// RemoveHead detaches and returns the first element, or nil when the queue
// is invalid or empty.
//
// If buf is non-empty, up to len(buf)-1 bytes of the removed value are copied
// into it followed by a NUL byte. buf is never written past its length.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if !q.live() || q.head.Empty() {
		return nil
	}
	return detach(q.head.First(), buf)
}

// RemoveTail is RemoveHead for the last element.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if !q.live() || q.head.Empty() {
		return nil
	}
	return detach(q.head.Last(), buf)
}

func detach(l *list.Head[*Element], buf []byte) *Element {
	l.Del()
	e := l.Entry()
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], e.Value)
		buf[n] = 0
	}
	return e
}

// discard unlinks and releases e.
func (q *Queue) discard(e *Element) {
	e.link.Del()
	e.Release()
}

// Size counts the elements of the queue. It is O(n).
func (q *Queue) Size() int {
	if !q.live() {
		return 0
	}
	return q.head.Len()
}

// Empty reports whether the queue holds no elements. An invalid queue is
// empty.
func (q *Queue) Empty() bool {
	return !q.live() || q.head.Empty()
}

// All yields the values front to back.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.live() {
			return
		}
		for e := range q.head.Entries() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward yields the values back to front.
func (q *Queue) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !q.live() {
			return
		}
		for e := range q.head.Backward() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns a copy of the queue contents, front to back. It returns nil
// for an empty or invalid queue.
func (q *Queue) Values() []string {
	var values []string
	for v := range q.All() {
		values = append(values, v)
	}
	return values
}
