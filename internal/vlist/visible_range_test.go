package vlist

import (
	"github.com/robinovitch61/vl/internal/fixtures"
	"testing"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                                                     string
		scrollOffset, viewportHeight, count, itemHeight, threshold int
		want                                                     Range
	}{
		{
			name:         "top of a long list",
			scrollOffset: 0, viewportHeight: 200, count: 1000, itemHeight: 40, threshold: 40,
			want: Range{Low: 0, High: 6},
		},
		{
			name:         "scrolled partway",
			scrollOffset: 400, viewportHeight: 200, count: 1000, itemHeight: 40, threshold: 40,
			want: Range{Low: 9, High: 16},
		},
		{
			name:         "threshold reaches above the top",
			scrollOffset: 20, viewportHeight: 200, count: 1000, itemHeight: 40, threshold: 40,
			want: Range{Low: 0, High: 6},
		},
		{
			name:         "clipped to the last item",
			scrollOffset: 39800, viewportHeight: 200, count: 1000, itemHeight: 40, threshold: 40,
			want: Range{Low: 994, High: 999},
		},
		{
			name:         "fewer items than fit",
			scrollOffset: 0, viewportHeight: 200, count: 3, itemHeight: 40, threshold: 40,
			want: Range{Low: 0, High: 2},
		},
		{
			name:         "single row items without threshold",
			scrollOffset: 5, viewportHeight: 3, count: 10, itemHeight: 1, threshold: 0,
			want: Range{Low: 5, High: 8},
		},
		{
			name:         "zero height viewport",
			scrollOffset: 0, viewportHeight: 0, count: 10, itemHeight: 2, threshold: 2,
			want: Range{Low: 0, High: 1},
		},
		{
			name:         "past the end after the collection shrank",
			scrollOffset: 500, viewportHeight: 10, count: 5, itemHeight: 2, threshold: 2,
			want: Range{Low: 4, High: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(tt.scrollOffset, tt.viewportHeight, tt.count, tt.itemHeight, tt.threshold)
			fixtures.Cmp(t, tt.want, got)
		})
	}
}

func TestVisibleRange_EmptyIffNoItems(t *testing.T) {
	if r := VisibleRange(0, 100, 0, 10, 10); !r.Empty() || r.Len() != 0 {
		t.Errorf("expected empty range, got %s", r)
	}
	if r := VisibleRange(0, 100, 1, 10, 10); r.Empty() {
		t.Errorf("expected non-empty range")
	}
}

// TestVisibleRange_CoversWindow checks that the range is exactly the items intersecting
// [offset-threshold, offset+viewport+threshold] under uniform spacing
func TestVisibleRange_CoversWindow(t *testing.T) {
	count, itemHeight, threshold, viewportHeight := 50, 3, 3, 10
	for offset := 0; offset <= count*itemHeight-viewportHeight; offset++ {
		r := VisibleRange(offset, viewportHeight, count, itemHeight, threshold)
		top := offset - threshold
		bottom := offset + viewportHeight + threshold
		for i := 0; i < count; i++ {
			start := i * itemHeight
			end := start + itemHeight
			// an item starting exactly at bottom is included by the floor formula
			intersects := end > top && start <= bottom
			if intersects != r.Contains(i) {
				t.Fatalf("offset %d: item %d intersects=%t but range %s", offset, i, intersects, r)
			}
		}
	}
}

func TestCacheCapacity(t *testing.T) {
	fixtures.Cmp(t, 8, CacheCapacity(200, 40, 40))
	fixtures.Cmp(t, 6, CacheCapacity(10, 2, 3))
	fixtures.Cmp(t, 1, CacheCapacity(0, 0, 40))
	fixtures.Cmp(t, 1, CacheCapacity(-10, 0, 0))
}

func TestCacheCapacity_HoldsAnyRange(t *testing.T) {
	for _, itemHeight := range []int{1, 2, 3, 7} {
		for _, viewportHeight := range []int{0, 1, 5, 13} {
			threshold := itemHeight
			capacity := CacheCapacity(viewportHeight, threshold, itemHeight)
			for offset := 0; offset < 100; offset++ {
				r := VisibleRange(offset, viewportHeight, 1000, itemHeight, threshold)
				if r.Len() > capacity {
					t.Fatalf("h=%d vh=%d offset=%d: range %s exceeds capacity %d", itemHeight, viewportHeight, offset, r, capacity)
				}
			}
		}
	}
}
