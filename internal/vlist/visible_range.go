package vlist

import "fmt"

// Range is an inclusive span of item indices. The zero-count range is represented by Low > High
type Range struct {
	Low, High int
}

var emptyRange = Range{Low: 0, High: -1}

func (r Range) Empty() bool {
	return r.High < r.Low
}

func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.High - r.Low + 1
}

func (r Range) Contains(index int) bool {
	return !r.Empty() && r.Low <= index && index <= r.High
}

func (r Range) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d]", r.Low, r.High)
}

// VisibleRange returns the indices to materialize for the given scroll position. It assumes uniform spacing of
// itemHeight, so expanded items above the viewport can make it over- or under-fetch by a few items
func VisibleRange(scrollOffset, viewportHeight, count, itemHeight, threshold int) Range {
	if count <= 0 {
		return emptyRange
	}
	itemHeight = max(1, itemHeight)
	low := max(floorDiv(scrollOffset-threshold, itemHeight), 0)
	high := min(floorDiv(scrollOffset+viewportHeight+threshold, itemHeight), count-1)
	if high < low {
		// scrolled past the end of the content, e.g. right after the collection shrank
		low = high
	}
	return Range{Low: low, High: high}
}

// CacheCapacity is the number of items that can be in range at once for a viewport, plus one
func CacheCapacity(viewportHeight, threshold, itemHeight int) int {
	itemHeight = max(1, itemHeight)
	span := max(0, viewportHeight+2*threshold)
	return max(1, (span+itemHeight-1)/itemHeight+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
