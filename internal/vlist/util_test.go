package vlist

import (
	"fmt"
	"testing"
	"time"
)

type testModel struct {
	id     string
	height int
}

func (m *testModel) ID() string { return m.id }

func (m *testModel) Get(field string) any {
	if field == "height" {
		return m.height
	}
	return nil
}

type testCollection struct {
	models []Model
	subs   map[int]func(Event)
	nextID int
}

func newTestCollection(n, height int) *testCollection {
	c := &testCollection{subs: make(map[int]func(Event))}
	c.models = makeModels(n, height)
	return c
}

func makeModels(n, height int) []Model {
	models := make([]Model, n)
	for i := 0; i < n; i++ {
		models[i] = &testModel{id: fmt.Sprintf("m%d", i), height: height}
	}
	return models
}

func (c *testCollection) Len() int { return len(c.models) }

func (c *testCollection) At(i int) Model { return c.models[i] }

func (c *testCollection) IndexOf(id string) int {
	for i, m := range c.models {
		if m.ID() == id {
			return i
		}
	}
	return ItemNotFound
}

func (c *testCollection) Subscribe(fn func(Event)) func() {
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

func (c *testCollection) reset(models []Model) {
	c.models = models
	for _, fn := range c.subs {
		fn(Event{Kind: EventReset})
	}
}

type testView struct {
	model      *testModel
	renders    int
	teardowns  int
	scrollEnds int
}

func (v *testView) Render() { v.renders++ }

func (v *testView) Element() string { return v.model.id }

func (v *testView) Teardown() { v.teardowns++ }

func (v *testView) OnScrollEnd() { v.scrollEnds++ }

type testSurface struct {
	viewportHeight int
	contentHeight  int
	attached       map[int]int
	views          map[int]View
	detached       []int
	redrawn        []int
	empty          View
}

func newTestSurface(viewportHeight int) *testSurface {
	return &testSurface{
		viewportHeight: viewportHeight,
		attached:       make(map[int]int),
		views:          make(map[int]View),
	}
}

func (s *testSurface) ViewportHeight() int { return s.viewportHeight }

func (s *testSurface) SetContentHeight(h int) { s.contentHeight = h }

func (s *testSurface) Measure(v View) int {
	if tv, ok := v.(*testView); ok {
		return tv.model.height
	}
	return 1
}

func (s *testSurface) Attach(index int, v View, top int) {
	s.attached[index] = top
	s.views[index] = v
}

func (s *testSurface) Move(index int, top int) {
	if _, ok := s.attached[index]; ok {
		s.attached[index] = top
	}
}

func (s *testSurface) Redraw(index int, _ View) { s.redrawn = append(s.redrawn, index) }

func (s *testSurface) Detach(index int) {
	delete(s.attached, index)
	delete(s.views, index)
	s.detached = append(s.detached, index)
}

func (s *testSurface) ShowEmpty(v View) { s.empty = v }

func (s *testSurface) HideEmpty() { s.empty = nil }

// testScroller scrolls instantly unless animating is set, in which case ScrollTo stays in flight until finish
type testScroller struct {
	surface   *testSurface
	offset    int
	target    int
	animating bool
	inFlight  bool
	listeners []func()
}

func (s *testScroller) Offset() int { return s.offset }

func (s *testScroller) MaxOffset() int {
	return max(0, s.surface.contentHeight-s.surface.viewportHeight)
}

func (s *testScroller) ScrollTo(y int, animate bool) {
	y = max(0, min(y, s.MaxOffset()))
	if animate && s.animating {
		s.target = y
		s.inFlight = true
		return
	}
	s.set(y)
}

func (s *testScroller) finish() {
	s.inFlight = false
	s.set(s.target)
}

func (s *testScroller) set(y int) {
	if y == s.offset {
		return
	}
	s.offset = y
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *testScroller) IsScrolling() bool { return s.inFlight }

func (s *testScroller) Refresh() {
	if s.offset > s.MaxOffset() {
		s.set(s.MaxOffset())
	}
}

func (s *testScroller) OnScroll(fn func()) { s.listeners = append(s.listeners, fn) }

type testDriver struct {
	frames     int
	scrollEnds []uint64
}

func (d *testDriver) RequestFrame() { d.frames++ }

func (d *testDriver) RequestScrollEnd(seq uint64, _ time.Duration) {
	d.scrollEnds = append(d.scrollEnds, seq)
}

type harness struct {
	collection *testCollection
	surface    *testSurface
	scroller   *testScroller
	driver     *testDriver
	list       *List
}

func newHarness(t *testing.T, n, viewportHeight int, opts Options) *harness {
	t.Helper()
	h := &harness{
		collection: newTestCollection(n, opts.EstimatedItemHeight),
		surface:    newTestSurface(viewportHeight),
		driver:     &testDriver{},
	}
	h.scroller = &testScroller{surface: h.surface}
	if opts.ContainerName == "" {
		opts.ContainerName = "test"
	}
	if opts.ChildView == nil {
		opts.ChildView = func(m Model) View {
			return &testView{model: m.(*testModel)}
		}
	}
	l, err := New(h.collection, h.surface, h.scroller, h.driver, opts)
	if err != nil {
		t.Fatalf("unexpected error creating list: %v", err)
	}
	h.list = l
	return h
}

// runFrames delivers requested frames until none are pending
func (h *harness) runFrames(t *testing.T) int {
	t.Helper()
	n := 0
	for h.driver.frames > 0 {
		h.driver.frames--
		h.list.Frame()
		n++
		if n > 100 {
			t.Fatalf("frames never settled")
		}
	}
	return n
}

// runOneFrame delivers a single requested frame
func (h *harness) runOneFrame(t *testing.T) {
	t.Helper()
	if h.driver.frames == 0 {
		t.Fatalf("expected a pending frame")
	}
	h.driver.frames--
	h.list.Frame()
}

func (h *harness) view(index int) *testView {
	v, ok := h.list.views.get(index)
	if !ok {
		return nil
	}
	return v.(*testView)
}
