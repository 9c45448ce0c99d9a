package scroller

// Extent reports the sizes a scroller is bounded by. A surface.Surface is an Extent
type Extent interface {
	ContentHeight() int
	ViewportHeight() int
}

// base holds the offset and scroll listeners shared by every scroller
type base struct {
	extent    Extent
	offset    int
	listeners []func()
}

func (b *base) Offset() int {
	return b.offset
}

func (b *base) MaxOffset() int {
	return max(0, b.extent.ContentHeight()-b.extent.ViewportHeight())
}

func (b *base) OnScroll(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// set moves to y clamped to the content, notifying listeners. It reports whether the offset changed
func (b *base) set(y int) bool {
	y = max(0, min(y, b.MaxOffset()))
	if y == b.offset {
		return false
	}
	b.offset = y
	for _, fn := range b.listeners {
		fn()
	}
	return true
}
