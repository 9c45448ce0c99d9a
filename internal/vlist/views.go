package vlist

import (
	"fmt"
	"github.com/robinovitch61/vl/internal/dev"
)

// views owns the lifecycle of materialized item views and the empty view
type views struct {
	surface        Surface
	ledger         *Ledger
	childView      ViewFactory
	emptyView      EmptyViewFactory
	elementsOffset int

	// keepExpanded is true when models remember their expanded state, so a recreated view renders expanded again
	keepExpanded bool

	// registry maps index -> view for every materialized item
	registry map[int]View

	// emptyMode is true while the collection is empty and the empty view (if any) is shown
	emptyMode bool
	empty     View
}

func newViews(surface Surface, ledger *Ledger, opts Options) *views {
	return &views{
		surface:        surface,
		ledger:         ledger,
		childView:      opts.ChildView,
		emptyView:      opts.EmptyView,
		elementsOffset: opts.ElementsOffset,
		keepExpanded:   opts.ModelStoresExpandedState,
		registry:       make(map[int]View),
	}
}

// materialize creates, measures and places the view for index. It reports false when the factory declined the model
func (vs *views) materialize(index int, m Model) bool {
	if m == nil {
		return false
	}
	v := vs.childView(m)
	if v == nil {
		return false
	}
	v.Render()
	position := vs.ledger.PositionOf(index)
	height := vs.measure(v)
	vs.surface.Attach(index, v, position)
	vs.ledger.Record(index, position, height)
	vs.registry[index] = v
	return true
}

// destroy removes the view for index from the surface and forgets its measurements
func (vs *views) destroy(index int) {
	if v, ok := vs.registry[index]; ok {
		vs.surface.Detach(index)
		if d, ok := v.(Destroyer); ok {
			d.Teardown()
		}
		delete(vs.registry, index)
	}
	vs.ledger.Purge(index, vs.keepExpanded)
}

// destroyAll tears down every materialized view
func (vs *views) destroyAll() {
	for index := range vs.registry {
		vs.destroy(index)
	}
}

// redraw re-renders a materialized view in place and records its new height. It reports whether the height changed
func (vs *views) redraw(index int) bool {
	v, ok := vs.registry[index]
	if !ok {
		return false
	}
	v.Render()
	vs.surface.Redraw(index, v)
	return vs.remeasure(index)
}

// remeasure records the current height of a materialized view, reporting whether it changed
func (vs *views) remeasure(index int) bool {
	v, ok := vs.registry[index]
	if !ok {
		return false
	}
	prev, _ := vs.ledger.Height(index)
	height := vs.measure(v)
	vs.ledger.RecordMeasurement(index, height)
	return prev != height
}

func (vs *views) measure(v View) int {
	return vs.surface.Measure(v) + vs.elementsOffset
}

func (vs *views) get(index int) (View, bool) {
	v, ok := vs.registry[index]
	return v, ok
}

func (vs *views) len() int {
	return len(vs.registry)
}

// enterEmpty switches to the empty state. Item views are expected to be gone already
func (vs *views) enterEmpty() {
	if vs.emptyMode {
		return
	}
	dev.Debug("vlist: entering empty mode")
	vs.emptyMode = true
	if vs.emptyView == nil {
		return
	}
	vs.empty = vs.emptyView()
	if vs.empty == nil {
		return
	}
	vs.empty.Render()
	vs.surface.ShowEmpty(vs.empty)
}

func (vs *views) leaveEmpty() {
	if !vs.emptyMode {
		return
	}
	dev.Debug(fmt.Sprintf("vlist: leaving empty mode, empty view shown: %t", vs.empty != nil))
	vs.emptyMode = false
	if vs.empty != nil {
		vs.surface.HideEmpty()
		if d, ok := vs.empty.(Destroyer); ok {
			d.Teardown()
		}
		vs.empty = nil
	}
}

// notifyScrollEnd tells every materialized view that supports it that scrolling settled
func (vs *views) notifyScrollEnd() {
	for _, v := range vs.registry {
		if n, ok := v.(ScrollEndNotifiable); ok {
			n.OnScrollEnd()
		}
	}
}
