package stringqueue

import (
	"errors"
	"fmt"

	"github.com/sugawarayuuta/sonnet"

	"github.com/timzifer/string_queue/internal/list"
)

// ErrInvalidQueue is returned when decoding into a nil or freed queue.
var ErrInvalidQueue = errors.New("stringqueue: invalid queue")

// MarshalJSON encodes the queue as a JSON array of its values, front to
// back. An empty or invalid queue encodes as [].
func (q *Queue) MarshalJSON() ([]byte, error) {
	values := q.Values()
	if values == nil {
		values = []string{}
	}
	return sonnet.Marshal(values)
}

// UnmarshalJSON replaces the queue contents with the values of a JSON array
// of strings. The new elements are built aside and swapped in only once all
// of them were allocated, so on error the queue is left as it was.
func (q *Queue) UnmarshalJSON(data []byte) error {
	if !q.live() {
		return ErrInvalidQueue
	}

	var values []string
	if err := sonnet.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("stringqueue: decode values: %w", err)
	}

	var staged list.Head[*Element]
	staged.Init()
	for i, v := range values {
		e, err := q.alloc.newElement(v)
		if err != nil {
			for it := range staged.Links() {
				it.Del()
				it.Entry().Release()
			}
			return fmt.Errorf("stringqueue: element %d: %w", i, err)
		}
		staged.AddTail(&e.link)
	}

	for it := range q.head.Links() {
		q.discard(it.Entry())
	}
	q.head.SpliceInit(&staged)
	return nil
}
