package vlist

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOptions wraps every construction error
var ErrInvalidOptions = errors.New("invalid list options")

const (
	DefaultEstimatedItemHeight = 1
	DefaultScrollEndDelay      = 500 * time.Millisecond
)

type Options struct {
	// ContainerName identifies the host container the list renders into. Required
	ContainerName string

	// ElementsOffset is the gap between consecutive items
	ElementsOffset int

	// EstimatedItemHeight is the content height assumed for items that have not been measured
	EstimatedItemHeight int

	// Threshold is how far beyond each viewport edge items are materialized. Zero means one item height
	Threshold int

	// EmptyView is shown while the collection is empty. Optional
	EmptyView EmptyViewFactory

	// ChildView picks the view for each model. Required
	ChildView ViewFactory

	// ModelStoresExpandedState is true when models remember whether they are expanded, so an evicted expanded item
	// comes back expanded and its height keeps counting toward the positions of items below it
	ModelStoresExpandedState bool

	// UseExternalScroller means the scroller animates itself and must be a Stepper, which the list steps once per frame
	UseExternalScroller bool

	// EnableScrollEnd makes the list notify views once scrolling has been idle for ScrollEndDelay
	EnableScrollEnd bool

	// ScrollEndDelay defaults to DefaultScrollEndDelay
	ScrollEndDelay time.Duration
}

// itemHeight is the estimated spacing unit: item content plus the gap after it
func (o Options) itemHeight() int {
	return o.EstimatedItemHeight + o.ElementsOffset
}

func (o Options) threshold() int {
	if o.Threshold > 0 {
		return o.Threshold
	}
	return o.itemHeight()
}

func (o Options) withDefaults() Options {
	if o.EstimatedItemHeight == 0 {
		o.EstimatedItemHeight = DefaultEstimatedItemHeight
	}
	if o.ScrollEndDelay == 0 {
		o.ScrollEndDelay = DefaultScrollEndDelay
	}
	return o
}

func (o Options) Validate() error {
	if o.ContainerName == "" {
		return fmt.Errorf("%w: container name is required", ErrInvalidOptions)
	}
	if o.ChildView == nil {
		return fmt.Errorf("%w: child view factory is required", ErrInvalidOptions)
	}
	if o.EstimatedItemHeight < 0 {
		return fmt.Errorf("%w: estimated item height must be positive, got %d", ErrInvalidOptions, o.EstimatedItemHeight)
	}
	if o.ElementsOffset < 0 {
		return fmt.Errorf("%w: elements offset must be non-negative, got %d", ErrInvalidOptions, o.ElementsOffset)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be non-negative, got %d", ErrInvalidOptions, o.Threshold)
	}
	if o.ScrollEndDelay < 0 {
		return fmt.Errorf("%w: scroll end delay must be non-negative, got %s", ErrInvalidOptions, o.ScrollEndDelay)
	}
	return nil
}
