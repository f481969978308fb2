package stringqueue

import "strings"

func compareElements(a, b *Element) int {
	return strings.Compare(a.Value, b.Value)
}

// Sort orders the queue by byte-wise string comparison, ascending, or
// descending when descend is set. Equal values coming from the right half
// of a merge step are placed first, so equal values may change relative
// order.
func (q *Queue) Sort(descend bool) {
	if !q.live() || q.head.Empty() {
		return
	}

	q.head.Sort(compareElements)
	if descend {
		q.Reverse()
	}
}
