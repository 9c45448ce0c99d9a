package vlist

import "time"

// Terminology:
// - item: one record of the collection, addressed by its index
// - materialized: an item whose View currently lives on the Surface
// - row: the unit of all heights and offsets (a terminal row for the terminal host)
// - estimate: EstimatedItemHeight + ElementsOffset, the height assumed for any unmeasured item
// - expanded: an item whose measured height differs from the estimate
// - overdraft: the summed (height - estimate) of expanded items above an index
//
//                          position   height
// item 0 (estimate)        0          3
// item 1 (expanded)        3          7       <- overdraft(2..) = 4
// item 2 (estimate)        10         3
//

// ItemNotFound is returned by index lookups that fail
const ItemNotFound = -1

// Model is one record of a Collection
type Model interface {
	ID() string
	Get(field string) any
}

type EventKind int

const (
	EventUpdate EventKind = iota
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventUpdate:
		return "update"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is published by a Collection whenever its contents change
type Event struct {
	Kind EventKind
}

// Collection is the externally owned, ordered set of models the list virtualizes. The list never mutates it
type Collection interface {
	Len() int
	At(i int) Model
	// IndexOf returns ItemNotFound when no model has the id
	IndexOf(id string) int
	// Subscribe registers fn for change events and returns a function that removes it
	Subscribe(fn func(Event)) (unsubscribe func())
}

// View is a materialized item. Render refreshes Element from the view's model
type View interface {
	Render()
	Element() string
}

// ScrollEndNotifiable views are told when scrolling settles
type ScrollEndNotifiable interface {
	OnScrollEnd()
}

// Destroyer views own resources that must be released when they leave the surface
type Destroyer interface {
	Teardown()
}

// ViewFactory returns the view for a model, or nil if the model should not be shown
type ViewFactory func(m Model) View

// EmptyViewFactory returns the view shown when the collection is empty
type EmptyViewFactory func() View

// Surface is the host container: a scrollable viewport holding one absolutely positioned content child
type Surface interface {
	// ViewportHeight is the visible height of the container
	ViewportHeight() int
	// SetContentHeight sizes the content child, which determines the scrollable extent
	SetContentHeight(height int)
	// Measure returns the rendered height of a view
	Measure(v View) int
	Attach(index int, v View, top int)
	Move(index int, top int)
	Redraw(index int, v View)
	Detach(index int)
	ShowEmpty(v View)
	HideEmpty()
}

// Scroller owns the scroll position of the container
type Scroller interface {
	Offset() int
	MaxOffset() int
	ScrollTo(y int, animate bool)
	IsScrolling() bool
	// Refresh re-reads the content and viewport extents after they change
	Refresh()
	// OnScroll registers a listener invoked whenever the offset changes
	OnScroll(fn func())
}

// Stepper is an external scroller that animates one step per frame
type Stepper interface {
	Step() bool
}

// Driver is the host's scheduling primitive. Neither method may call back into the list synchronously
type Driver interface {
	// RequestFrame asks for List.Frame to be called on the next animation opportunity
	RequestFrame()
	// RequestScrollEnd asks for List.ScrollEnded(seq) to be called after the delay
	RequestScrollEnd(seq uint64, after time.Duration)
}
