package scroller

// Native jumps straight to every requested offset
type Native struct {
	base
}

func NewNative(extent Extent) *Native {
	return &Native{base: base{extent: extent}}
}

func (n *Native) ScrollTo(y int, _ bool) {
	n.set(y)
}

func (n *Native) ScrollBy(dy int) {
	n.set(n.offset + dy)
}

func (n *Native) IsScrolling() bool {
	return false
}

// Refresh re-clamps the offset after the content or viewport changed size
func (n *Native) Refresh() {
	n.set(n.offset)
}
