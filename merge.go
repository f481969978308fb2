package stringqueue

import (
	"iter"

	"github.com/timzifer/string_queue/internal/list"
)

// Context threads one queue into a Chain. The chain refers to the queue but
// does not own it.
type Context struct {
	Q *Queue

	chain list.Head[*Context]
}

// Chain is an ordered ring of queue contexts, owned by the caller, that
// Merge combines into a single queue.
type Chain struct {
	head list.Head[*Context]
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	c := &Chain{}
	c.head.Init()
	return c
}

// Add appends q to the chain and returns its context.
func (c *Chain) Add(q *Queue) *Context {
	if c == nil {
		return nil
	}
	ctx := &Context{Q: q}
	ctx.chain.Bind(ctx)
	c.head.AddTail(&ctx.chain)
	return ctx
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.head.Len()
}

// Contexts yields the contexts in chain order.
func (c *Chain) Contexts() iter.Seq[*Context] {
	return func(yield func(*Context) bool) {
		if c == nil {
			return
		}
		for ctx := range c.head.Entries() {
			if !yield(ctx) {
				return
			}
		}
	}
}

// Merge combines every queue of the chain into the queue of the first
// context and returns its size. Each input queue must be sorted ascending;
// the result is ascending, or descending when descend is set. All other
// queues are left empty.
//
// Queues are merged pairwise in passes over the chain: the first context
// absorbs the second, the third absorbs the fourth, and so on, with each
// drained context moved to the tail of the chain. Every pass halves the
// number of populated queues, for O(N log k) work overall.
//
// Merge returns 0 for an empty or nil chain. A chain with a single context
// returns that queue's size untouched.
func (c *Chain) Merge(descend bool) int {
	if c == nil || c.head.Empty() {
		return 0
	}
	if c.head.Singular() {
		return c.head.First().Entry().Q.Size()
	}

	c.parkEmpty()

	h := &c.head
	for h.First().Next() != h && !h.First().Next().Entry().Q.Empty() {
		for it := h.First(); it != h; it = it.Next() {
			next := it.Next()
			if next == h || next.Entry().Q.Empty() {
				break
			}
			mergeSorted(it.Entry().Q, next.Entry().Q)
			h.MoveTail(next)
		}
	}

	q := h.First().Entry().Q
	if descend {
		q.Reverse()
	}
	return q.Size()
}

// parkEmpty moves contexts whose queues hold nothing to the tail of the
// chain, preserving the relative order of the rest.
func (c *Chain) parkEmpty() {
	var parked list.Head[*Context]
	parked.Init()
	for it := range c.head.Links() {
		if it.Entry().Q.Empty() {
			parked.MoveTail(it)
		}
	}
	c.head.SpliceTailInit(&parked)
}

// mergeSorted drains b into a, leaving a sorted when both were sorted. When
// the fronts compare equal, b's front is taken first.
func mergeSorted(a, b *Queue) {
	var merged list.Head[*Element]
	merged.Init()

	for !a.head.Empty() && !b.head.Empty() {
		x, y := a.head.First(), b.head.First()
		if compareElements(x.Entry(), y.Entry()) < 0 {
			merged.MoveTail(x)
		} else {
			merged.MoveTail(y)
		}
	}

	merged.SpliceTailInit(&a.head)
	merged.SpliceTailInit(&b.head)
	a.head.SpliceInit(&merged)
}
