package stringqueue

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
)

func newQueue(t *testing.T, values ...string) *Queue {
	t.Helper()

	q := New(WithAllocator(NewAllocator()))
	if q == nil {
		t.Fatalf("expected New to return a queue")
	}
	for _, v := range values {
		if !q.InsertTail(v) {
			t.Fatalf("insert %q failed", v)
		}
	}
	return q
}

func expectValues(t *testing.T, q *Queue, want ...string) {
	t.Helper()

	if got := q.Values(); !slices.Equal(got, want) {
		t.Fatalf("expected queue %v, got %v", want, got)
	}

	var back []string
	for v := range q.Backward() {
		back = append(back, v)
	}
	slices.Reverse(back)
	if !slices.Equal(back, want) {
		t.Fatalf("expected backward traversal %v, got reversed %v", want, back)
	}
}

func TestQueueInsertAndRemove(t *testing.T) {
	q := newQueue(t)

	if !q.InsertTail("b") || !q.InsertHead("a") || !q.InsertTail("c") {
		t.Fatalf("unexpected insert failure")
	}
	expectValues(t, q, "a", "b", "c")
	if got := q.Size(); got != 3 {
		t.Fatalf("expected size 3, got %d", got)
	}

	e := q.RemoveHead(nil)
	if e == nil || e.Value != "a" {
		t.Fatalf("expected RemoveHead to return a, got %v", e)
	}
	e.Release()

	e = q.RemoveTail(nil)
	if e == nil || e.Value != "c" {
		t.Fatalf("expected RemoveTail to return c, got %v", e)
	}
	e.Release()

	expectValues(t, q, "b")
	q.Free()
}

func TestQueueReverseScenario(t *testing.T) {
	q := newQueue(t, "a", "b", "c")
	if got := q.Size(); got != 3 {
		t.Fatalf("expected size 3, got %d", got)
	}

	q.Reverse()
	for _, want := range []string{"c", "b", "a"} {
		e := q.RemoveHead(nil)
		if e == nil || e.Value != want {
			t.Fatalf("expected RemoveHead to return %q, got %v", want, e)
		}
		e.Release()
	}

	if got := q.Size(); got != 0 {
		t.Fatalf("expected empty queue, got size %d", got)
	}
	if e := q.RemoveHead(nil); e != nil {
		t.Fatalf("expected RemoveHead on empty queue to return nil, got %v", e)
	}
	if e := q.RemoveTail(nil); e != nil {
		t.Fatalf("expected RemoveTail on empty queue to return nil, got %v", e)
	}
	q.Free()
}

func TestQueueInsertCopiesValue(t *testing.T) {
	q := newQueue(t)
	b := []byte("abc")
	q.InsertTail(string(b))
	b[0] = 'x'

	expectValues(t, q, "abc")
	q.Free()
}

func TestQueueRemoveBuffer(t *testing.T) {
	tests := []struct {
		name string
		size int
		want string
	}{
		{"Large", 16, "hello"},
		{"Exact", 6, "hello"},
		{"Truncated", 4, "hel"},
		{"OnlyTerminator", 1, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := newQueue(t, "hello", "world")
			defer q.Free()

			// guard byte after the buffer catches overruns
			backing := make([]byte, tc.size+1)
			backing[tc.size] = 0xff
			buf := backing[:tc.size]

			e := q.RemoveHead(buf)
			if e == nil || e.Value != "hello" {
				t.Fatalf("expected to remove hello, got %v", e)
			}
			e.Release()

			n := slices.Index(buf, 0)
			if n < 0 {
				t.Fatalf("expected NUL terminator in buffer %q", buf)
			}
			if got := string(buf[:n]); got != tc.want {
				t.Fatalf("expected buffer %q, got %q", tc.want, got)
			}
			if backing[tc.size] != 0xff {
				t.Fatalf("buffer overrun detected")
			}

			tail := make([]byte, tc.size)
			e = q.RemoveTail(tail)
			if e == nil || e.Value != "world" {
				t.Fatalf("expected to remove world, got %v", e)
			}
			e.Release()
			if slices.Index(tail, 0) < 0 {
				t.Fatalf("expected NUL terminator in tail buffer %q", tail)
			}
		})
	}

	t.Run("EmptyBuffer", func(t *testing.T) {
		q := newQueue(t, "x")
		defer q.Free()

		e := q.RemoveHead([]byte{})
		if e == nil || e.Value != "x" {
			t.Fatalf("expected to remove x, got %v", e)
		}
		e.Release()
	})
}

func TestQueueInvalidHandles(t *testing.T) {
	var q *Queue

	if q.InsertHead("a") || q.InsertTail("a") {
		t.Fatalf("expected inserts on nil queue to fail")
	}
	if q.RemoveHead(make([]byte, 4)) != nil || q.RemoveTail(nil) != nil {
		t.Fatalf("expected removes on nil queue to return nil")
	}
	if q.Size() != 0 || !q.Empty() || q.Values() != nil {
		t.Fatalf("expected nil queue to look empty")
	}
	if q.DeleteMid() || q.DeleteDup() {
		t.Fatalf("expected deletes on nil queue to fail")
	}
	if q.Ascend() != 0 || q.Descend() != 0 {
		t.Fatalf("expected filters on nil queue to return 0")
	}
	q.Swap()
	q.Reverse()
	q.ReverseK(2)
	q.Sort(false)
	q.Free()

	var e *Element
	e.Release()
}

func TestQueueFreedBehavesLikeNil(t *testing.T) {
	alloc := NewAllocator()
	q := New(WithAllocator(alloc))
	q.InsertTail("a")
	q.InsertTail("b")
	q.Free()

	if q.InsertTail("c") {
		t.Fatalf("expected insert into freed queue to fail")
	}
	if q.Size() != 0 {
		t.Fatalf("expected freed queue to report size 0")
	}
	q.Free()

	stats := alloc.Stats()
	if stats.Live() != 0 {
		t.Fatalf("expected no live blocks after free, got %d (%+v)", stats.Live(), stats)
	}
	// sentinel plus two blocks per element
	if stats.Allocations != 5 || stats.Releases != 5 {
		t.Fatalf("expected 5 allocations and releases, got %+v", stats)
	}
}

func TestQueueSizeMatchesOperationCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	q := newQueue(t)
	defer q.Free()

	inserts, removes := 0, 0
	for i := 0; i < 1000; i++ {
		var e *Element
		switch rng.IntN(4) {
		case 0:
			if q.InsertHead(strconv.Itoa(i)) {
				inserts++
			}
		case 1:
			if q.InsertTail(strconv.Itoa(i)) {
				inserts++
			}
		case 2:
			e = q.RemoveHead(nil)
		case 3:
			e = q.RemoveTail(nil)
		}
		if e != nil {
			removes++
			e.Release()
		}
	}

	if got := q.Size(); got != inserts-removes {
		t.Fatalf("expected size %d, got %d", inserts-removes, got)
	}
	back := 0
	for range q.Backward() {
		back++
	}
	if back != q.Size() {
		t.Fatalf("expected backward length %d, got %d", q.Size(), back)
	}
}
