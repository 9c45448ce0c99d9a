package vlist

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/robinovitch61/vl/internal/dev"
	"sort"
)

// List virtualizes a Collection onto a Surface: only items within the viewport plus a threshold are materialized,
// and their views are recycled through a recency cache as the user scrolls.
//
// A List is not safe for concurrent use. Every method must be called from the host's event loop
type List struct {
	id         string
	opts       Options
	collection Collection
	surface    Surface
	scroller   Scroller
	driver     Driver

	ledger *Ledger
	cache  *RecencyCache
	views  *views
	sched  *scheduler

	// initialized is set by Render. Collection events and frames before it are ignored
	initialized bool
	closed      bool
	unsubscribe func()

	// viewportHeight is the height the cache capacity was last computed for, -1 before the first frame
	viewportHeight int
	contentHeight  int
	visible        Range

	// stale holds materialized indices to re-render the next time they are in range
	stale map[int]struct{}

	// scrollSeq identifies the latest scroll, so only the scroll-end timer of the last scroll fires
	scrollSeq uint64
}

type Stats struct {
	Range         Range
	Materialized  int
	CacheLen      int
	CacheCapacity int
	ContentHeight int
	Expanded      int
	Busy          bool
	Empty         bool
}

func New(collection Collection, surface Surface, scroller Scroller, driver Driver, opts Options) (*List, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if collection == nil || surface == nil || scroller == nil || driver == nil {
		return nil, fmt.Errorf("%w: collection, surface, scroller and driver are required", ErrInvalidOptions)
	}
	if _, ok := scroller.(Stepper); opts.UseExternalScroller && !ok {
		return nil, fmt.Errorf("%w: external scroller %T cannot be stepped", ErrInvalidOptions, scroller)
	}

	l := &List{
		id:             uuid.NewString(),
		opts:           opts,
		collection:     collection,
		surface:        surface,
		scroller:       scroller,
		driver:         driver,
		ledger:         NewLedger(opts.itemHeight()),
		sched:          newScheduler(driver),
		viewportHeight: -1,
		contentHeight:  -1,
		visible:        emptyRange,
		stale:          make(map[int]struct{}),
	}
	l.views = newViews(surface, l.ledger, opts)
	l.cache = NewRecencyCache(1, l.evict)
	scroller.OnScroll(l.handleScroll)
	return l, nil
}

// ID uniquely identifies this list instance
func (l *List) ID() string {
	return l.id
}

// Render attaches the list to its container and schedules the first frame. Calling it again only schedules a frame
func (l *List) Render() {
	if l.closed {
		return
	}
	if !l.initialized {
		dev.Debug(fmt.Sprintf("vlist %s: attaching to %q", l.id, l.opts.ContainerName))
		l.initialized = true
		l.unsubscribe = l.collection.Subscribe(l.handleCollectionEvent)
		l.setContentHeight(l.ledger.TotalHeight(l.collection.Len()))
		l.sched.startNext()
	}
	l.sched.requestFrame()
}

// Frame runs one update pass, first stepping an external scroller. The host calls it once for every RequestFrame it
// received
func (l *List) Frame() {
	l.sched.frameStarted()
	if !l.initialized || l.closed {
		return
	}
	if s, ok := l.scroller.(Stepper); ok && l.opts.UseExternalScroller {
		s.Step()
	}
	l.update()
	l.sched.drainCallbacks()
	if l.sched.settle(l.scroller.IsScrolling()) {
		l.sched.startNext()
	}
	if l.scroller.IsScrolling() {
		l.sched.requestFrame()
	}
}

// Refresh re-renders every materialized view the next time it is in range
func (l *List) Refresh() {
	for index := range l.views.registry {
		l.stale[index] = struct{}{}
	}
	l.requestFrame()
}

// UpdatePositions re-measures every materialized view and re-derives the positions in range. It is queued behind
// other requests
func (l *List) UpdatePositions() {
	l.queue(&request{
		kind: requestUpdatePositions,
		run: func() {
			for index := range l.views.registry {
				l.views.remeasure(index)
			}
			l.ledger.RecomputeRange(l.visible, l.surface.Move)
			l.setContentHeight(l.ledger.TotalHeight(l.collection.Len()))
		},
	})
}

// DiscardExpandedStateByID collapses the item's recorded height back to the estimate, moving everything below it
func (l *List) DiscardExpandedStateByID(id string) {
	l.queue(&request{
		kind: requestDiscardExpanded,
		run: func() {
			index := l.IndexByID(id)
			if index == ItemNotFound {
				return
			}
			l.ledger.DiscardExpansion(index, l.surface.Move)
			if _, ok := l.views.get(index); ok {
				l.stale[index] = struct{}{}
			}
			l.setContentHeight(l.ledger.TotalHeight(l.collection.Len()))
		},
	})
}

// FindViewByModel returns the materialized view of m
func (l *List) FindViewByModel(m Model) (View, bool) {
	if m == nil {
		return nil, false
	}
	index := l.IndexByID(m.ID())
	if index == ItemNotFound {
		return nil, false
	}
	return l.views.get(index)
}

func (l *List) IsScrolling() bool {
	return l.scroller.IsScrolling()
}

// IndexByID returns the index of the model with the id, or ItemNotFound
func (l *List) IndexByID(id string) int {
	index := l.collection.IndexOf(id)
	if index < 0 || index >= l.collection.Len() {
		return ItemNotFound
	}
	return index
}

// ScrollToElementByID scrolls so the item is at the top of the viewport. done is called once the scroll has
// settled and rendered; it is not called if the id is unknown
func (l *List) ScrollToElementByID(id string, done func()) {
	r := &request{kind: requestScrollTo, done: done}
	r.run = func() {
		index := l.IndexByID(id)
		if index == ItemNotFound {
			r.done = nil
			return
		}
		l.scrollToIndex(index)
	}
	l.queue(r)
}

// ScrollToElementByIndex is ScrollToElementByID for an index. Out of range indices are ignored
func (l *List) ScrollToElementByIndex(index int, done func()) {
	r := &request{kind: requestScrollTo, done: done}
	r.run = func() {
		if index < 0 || index >= l.collection.Len() {
			r.done = nil
			return
		}
		l.scrollToIndex(index)
	}
	l.queue(r)
}

// MakeItemFullyVisibleByID scrolls the least amount needed to show the whole item
func (l *List) MakeItemFullyVisibleByID(id string) {
	l.queue(&request{
		kind: requestMakeVisible,
		run: func() {
			if index := l.IndexByID(id); index != ItemNotFound {
				l.makeVisible(index)
			}
		},
	})
}

func (l *List) MakeItemFullyVisibleByIndex(index int) {
	l.queue(&request{
		kind: requestMakeVisible,
		run: func() {
			if 0 <= index && index < l.collection.Len() {
				l.makeVisible(index)
			}
		},
	})
}

// AddRenderCompleteCallback calls fn after the next completed frame
func (l *List) AddRenderCompleteCallback(fn func()) {
	l.sched.addRenderCompleteCallback(fn)
}

// ScrollEnded is called by the host when the scroll-end timer for seq fires. Only the timer of the latest scroll
// notifies views, and only once the scroller is idle
func (l *List) ScrollEnded(seq uint64) {
	if l.closed || !l.opts.EnableScrollEnd || seq != l.scrollSeq {
		return
	}
	if l.scroller.IsScrolling() {
		l.driver.RequestScrollEnd(seq, l.opts.ScrollEndDelay)
		return
	}
	l.views.notifyScrollEnd()
	// notified views may render differently once scrolling settled
	l.Refresh()
}

// Close detaches the list from its collection and tears down every view
func (l *List) Close() {
	if l.closed {
		return
	}
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
	l.views.destroyAll()
	l.views.leaveEmpty()
	l.cache.Clear()
	l.closed = true
}

func (l *List) VisibleRange() Range {
	return l.visible
}

// Empty is true while the list shows its empty state
func (l *List) Empty() bool {
	return l.views.emptyMode
}

// Materialized returns the indices with a live view, ascending
func (l *List) Materialized() []int {
	res := make([]int, 0, len(l.views.registry))
	for index := range l.views.registry {
		res = append(res, index)
	}
	sort.Ints(res)
	return res
}

// PositionOf is the recorded position of index if it was measured, its derived position otherwise
func (l *List) PositionOf(index int) int {
	if p, ok := l.ledger.Position(index); ok {
		return p
	}
	return l.ledger.PositionOf(index)
}

// HeightOf is the best known height of index, including the gap after it
func (l *List) HeightOf(index int) int {
	return l.ledger.HeightOf(index)
}

func (l *List) ContentHeight() int {
	return max(0, l.contentHeight)
}

// IndexAtOffset returns the index of the item covering offset y, or ItemNotFound when the collection is empty
func (l *List) IndexAtOffset(y int) int {
	count := l.collection.Len()
	if count == 0 {
		return ItemNotFound
	}
	index := clamp(floorDiv(y, l.ledger.ItemHeight()), 0, count-1)
	for index > 0 && l.PositionOf(index) > y {
		index--
	}
	for index < count-1 && l.PositionOf(index)+l.HeightOf(index) <= y {
		index++
	}
	return index
}

func (l *List) Stats() Stats {
	return Stats{
		Range:         l.visible,
		Materialized:  l.views.len(),
		CacheLen:      l.cache.Len(),
		CacheCapacity: l.cache.Capacity(),
		ContentHeight: l.ContentHeight(),
		Expanded:      l.ledger.ExpandedLen(),
		Busy:          l.sched.busy(),
		Empty:         l.views.emptyMode,
	}
}

// update is the per-frame pass: compute the range, materialize cache misses, redraw stale views, re-derive positions
func (l *List) update() {
	count := l.collection.Len()
	if count == 0 {
		if !l.views.emptyMode {
			l.clearItems()
		}
		l.views.enterEmpty()
		l.visible = emptyRange
		l.setContentHeight(0)
		return
	}

	if vh := l.surface.ViewportHeight(); vh != l.viewportHeight {
		l.viewportHeight = vh
		l.cache.SetCapacity(CacheCapacity(vh, l.opts.threshold(), l.ledger.ItemHeight()))
	}

	l.visible = VisibleRange(l.scroller.Offset(), l.viewportHeight, count, l.ledger.ItemHeight(), l.opts.threshold())
	changed := false
	// hits are touched before any miss is inserted, so an insert only ever evicts an index outside the range
	var misses []int
	for index := l.visible.Low; index <= l.visible.High; index++ {
		if !l.cache.Contains(index) {
			misses = append(misses, index)
			continue
		}
		l.cache.Touch(index)
		if _, ok := l.stale[index]; ok {
			delete(l.stale, index)
			l.views.redraw(index)
			changed = true
		}
	}
	for _, index := range misses {
		l.cache.Touch(index)
		l.views.leaveEmpty()
		if l.views.materialize(index, l.collection.At(index)) {
			changed = true
		}
	}

	l.ledger.RecomputeRange(l.visible, l.surface.Move)
	l.setContentHeight(l.ledger.TotalHeight(count))

	if !changed {
		if minimum, ok := l.cache.Minimum(); ok {
			dev.Debug(fmt.Sprintf("vlist %s: no-op frame %s, cache minimum %d", l.id, l.visible, minimum))
		}
	}
}

// evict is the recency cache's eviction callback
func (l *List) evict(index int) {
	dev.Debug(fmt.Sprintf("vlist %s: evicting %d", l.id, index))
	delete(l.stale, index)
	l.views.destroy(index)
}

// clearItems tears down every item view and forgets all per-item state, without going through eviction
func (l *List) clearItems() {
	l.views.destroyAll()
	l.cache.Clear()
	l.ledger.Clear()
	clear(l.stale)
}

func (l *List) handleCollectionEvent(e Event) {
	if !l.initialized || l.closed {
		return
	}
	dev.Debug(fmt.Sprintf("vlist %s: collection %s, %d items", l.id, e.Kind, l.collection.Len()))
	l.clearItems()
	l.sched.clearCallbacks()
	l.setContentHeight(l.ledger.TotalHeight(l.collection.Len()))
	l.requestFrame()
}

func (l *List) handleScroll() {
	if !l.initialized || l.closed {
		return
	}
	l.requestFrame()
	if l.opts.EnableScrollEnd {
		l.scrollSeq++
		l.driver.RequestScrollEnd(l.scrollSeq, l.opts.ScrollEndDelay)
	}
}

func (l *List) requestFrame() {
	if !l.initialized || l.closed {
		return
	}
	l.sched.requestFrame()
}

// queue adds r to the request queue. Requests made before Render wait for it
func (l *List) queue(r *request) {
	if l.closed {
		return
	}
	l.sched.enqueue(r)
	if l.initialized {
		l.sched.startNext()
	}
}

func (l *List) setContentHeight(height int) {
	if height == l.contentHeight {
		return
	}
	l.contentHeight = height
	l.surface.SetContentHeight(height)
	l.scroller.Refresh()
}

func (l *List) scrollToIndex(index int) {
	target := min(l.PositionOf(index), l.scroller.MaxOffset())
	l.scroller.ScrollTo(max(0, target), true)
}

func (l *List) makeVisible(index int) {
	top := l.PositionOf(index)
	bottom := top + l.HeightOf(index) - l.opts.ElementsOffset
	offset := l.scroller.Offset()
	viewportHeight := l.surface.ViewportHeight()
	switch {
	case top < offset:
		l.scroller.ScrollTo(top, false)
	case bottom > offset+viewportHeight:
		// items taller than the viewport are aligned to the top
		l.scroller.ScrollTo(min(top, bottom-viewportHeight), false)
	}
}

func clamp(v, minimum, maximum int) int {
	return max(minimum, min(maximum, v))
}
