package vlist

import (
	"fmt"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/robinovitch61/vl/internal/dev"
)

type requestKind int

const (
	requestScrollTo requestKind = iota
	requestMakeVisible
	requestDiscardExpanded
	requestUpdatePositions
)

func (k requestKind) String() string {
	switch k {
	case requestScrollTo:
		return "scroll-to"
	case requestMakeVisible:
		return "make-visible"
	case requestDiscardExpanded:
		return "discard-expanded"
	case requestUpdatePositions:
		return "update-positions"
	default:
		return "unknown"
	}
}

// request is a queued operation. run mutates list state; done, if set, is called once the render that shows the
// mutation has settled
type request struct {
	kind requestKind
	run  func()
	done func()
}

// scheduler coalesces frame requests into one pending frame and runs queued requests one at a time, each only after
// the frame showing the previous one has settled
type scheduler struct {
	driver Driver

	// framePending is true between asking the driver for a frame and receiving it
	framePending bool

	// requests holds queued *request values not yet started
	requests *linkedlistqueue.Queue

	// active is the request that ran and is waiting for its frame to settle
	active *request

	// callbacks holds func() values fired after the next completed frame
	callbacks *linkedlistqueue.Queue
}

func newScheduler(driver Driver) *scheduler {
	return &scheduler{
		driver:    driver,
		requests:  linkedlistqueue.New(),
		callbacks: linkedlistqueue.New(),
	}
}

func (s *scheduler) requestFrame() {
	if s.framePending {
		return
	}
	s.framePending = true
	s.driver.RequestFrame()
}

// frameStarted clears the pending flag so requests made during the frame schedule the next one
func (s *scheduler) frameStarted() {
	s.framePending = false
}

func (s *scheduler) addRenderCompleteCallback(fn func()) {
	if fn == nil {
		return
	}
	s.callbacks.Enqueue(fn)
	s.requestFrame()
}

// drainCallbacks fires the callbacks queued before the frame finished. Callbacks added while draining wait for the
// next frame
func (s *scheduler) drainCallbacks() {
	n := s.callbacks.Size()
	for i := 0; i < n; i++ {
		v, ok := s.callbacks.Dequeue()
		if !ok {
			return
		}
		v.(func())()
	}
	if !s.callbacks.Empty() {
		s.requestFrame()
	}
}

func (s *scheduler) clearCallbacks() {
	s.callbacks.Clear()
}

func (s *scheduler) enqueue(r *request) {
	s.requests.Enqueue(r)
}

// settle completes the active request, if any. It reports false when the active request must wait for another frame
func (s *scheduler) settle(stillMoving bool) bool {
	if s.active == nil {
		return true
	}
	if stillMoving {
		s.requestFrame()
		return false
	}
	r := s.active
	s.active = nil
	dev.Debug(fmt.Sprintf("vlist: %s settled", r.kind))
	if r.done != nil {
		r.done()
	}
	return true
}

// startNext runs the next queued request if none is active, and asks for the frame that will show it
func (s *scheduler) startNext() {
	if s.active != nil {
		return
	}
	v, ok := s.requests.Dequeue()
	if !ok {
		return
	}
	r := v.(*request)
	s.active = r
	dev.Debug(fmt.Sprintf("vlist: running %s, %d queued", r.kind, s.requests.Size()))
	r.run()
	s.requestFrame()
}

func (s *scheduler) busy() bool {
	return s.active != nil || !s.requests.Empty()
}
