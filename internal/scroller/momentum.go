package scroller

import (
	"fmt"
	"github.com/robinovitch61/vl/internal/dev"
	"math"
)

const (
	// Easing is the fraction of the remaining distance covered by each step of an animated scroll
	Easing = 0.35

	// Friction scales fling velocity down every step
	Friction = 0.85

	// MinVelocity is the speed in rows per step below which a fling stops
	MinVelocity = 0.5
)

// Momentum animates scrolls over several steps: ScrollTo eases toward its target and Fling coasts to a stop. The
// host calls Step once per frame
type Momentum struct {
	base

	animating bool
	target    int

	velocity float64
	// carry accumulates the fractional rows of a fling
	carry float64
}

func NewMomentum(extent Extent) *Momentum {
	return &Momentum{base: base{extent: extent}}
}

// ScrollTo moves to y, immediately unless animate is set. Any fling in progress stops
func (m *Momentum) ScrollTo(y int, animate bool) {
	m.stopFling()
	y = max(0, min(y, m.MaxOffset()))
	if !animate {
		m.animating = false
		m.set(y)
		return
	}
	m.target = y
	m.animating = y != m.offset
	if m.animating {
		m.Step()
	}
}

func (m *Momentum) ScrollBy(dy int) {
	m.stopFling()
	m.animating = false
	m.set(m.offset + dy)
}

// Fling starts coasting at velocity rows per step, positive is down
func (m *Momentum) Fling(velocity float64) {
	m.animating = false
	m.velocity = velocity
	m.carry = 0
	dev.Debug(fmt.Sprintf("momentum: fling at %.2f from %d", velocity, m.offset))
	m.Step()
}

func (m *Momentum) IsScrolling() bool {
	return m.animating || math.Abs(m.velocity) >= MinVelocity
}

func (m *Momentum) Refresh() {
	if m.animating {
		m.target = max(0, min(m.target, m.MaxOffset()))
	}
	m.set(m.offset)
}

// Step advances the animation or fling by one frame, reporting whether the offset moved
func (m *Momentum) Step() bool {
	if m.animating {
		remaining := m.target - m.offset
		if abs(remaining) <= 1 {
			m.animating = false
			return m.set(m.target)
		}
		delta := int(math.Round(float64(remaining) * Easing))
		if delta == 0 {
			delta = sign(remaining)
		}
		if !m.set(m.offset + delta) {
			// the content shrank under the target
			m.animating = false
			return false
		}
		return true
	}

	if math.Abs(m.velocity) < MinVelocity {
		m.stopFling()
		return false
	}
	m.carry += m.velocity
	delta := int(m.carry)
	m.carry -= float64(delta)
	m.velocity *= Friction
	moved := m.set(m.offset + delta)
	if (delta != 0 && !moved) || math.Abs(m.velocity) < MinVelocity {
		m.stopFling()
	}
	return moved
}

func (m *Momentum) stopFling() {
	m.velocity = 0
	m.carry = 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
