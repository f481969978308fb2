// Package stringqueue implements a queue of strings on top of an intrusive
// circular doubly-linked list.
//
// Besides insertion and removal at both ends the queue supports in-place
// rearrangement: deleting the middle element or runs of duplicates, swapping
// adjacent pairs, full and k-block reversal, merge sort, and filtering down to
// a monotonic sequence. Several sorted queues can be threaded into a Chain and
// merged into one.
//
// All operations run synchronously on the caller's goroutine and none of them
// lock. Invalid handles (nil or freed queues) never panic; operations return
// false, nil or 0 instead.
//
// Elements are drawn from an Allocator, which accounts for every sentinel,
// element record and payload copy. An allocator built WithFaultInjector or
// WithFailureProbability simulates allocation failure, in which case the
// failing insert rolls back whatever it had already allocated.
package stringqueue
