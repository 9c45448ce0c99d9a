package vlist

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Ledger records where materialized items sit and how tall they are. Positions of items that were never measured
// are derived from the estimate plus the overdraft of expanded items above them, so jumping far down the list never
// requires measuring everything in between
type Ledger struct {
	// itemHeight is the estimate, including the gap between items
	itemHeight int

	// positions maps index -> top offset, for items measured since the last Clear
	positions *redblacktree.Tree

	// heights maps index -> last measured height, for the same items as positions
	heights *redblacktree.Tree

	// expanded maps index -> height, only for items whose height differs from itemHeight
	expanded *redblacktree.Tree
}

func NewLedger(itemHeight int) *Ledger {
	return &Ledger{
		itemHeight: max(1, itemHeight),
		positions:  redblacktree.NewWithIntComparator(),
		heights:    redblacktree.NewWithIntComparator(),
		expanded:   redblacktree.NewWithIntComparator(),
	}
}

func (l *Ledger) ItemHeight() int {
	return l.itemHeight
}

// PositionOf returns the top offset of index: exact when its predecessor was measured, derived otherwise
func (l *Ledger) PositionOf(index int) int {
	if index <= 0 {
		return 0
	}
	if p, ok := l.Position(index - 1); ok {
		if h, ok := l.Height(index - 1); ok {
			return p + h
		}
	}
	return index*l.itemHeight + l.Overdraft(index)
}

// Overdraft sums the extra height of every expanded item above index
func (l *Ledger) Overdraft(index int) int {
	overdraft := 0
	it := l.expanded.Iterator()
	for it.Next() {
		if it.Key().(int) >= index {
			break
		}
		overdraft += it.Value().(int) - l.itemHeight
	}
	return overdraft
}

// TotalHeight is the content height of count items
func (l *Ledger) TotalHeight(count int) int {
	if count <= 0 {
		return 0
	}
	return count*l.itemHeight + l.Overdraft(count)
}

// Record stores both the position and the measured height of index
func (l *Ledger) Record(index, position, height int) {
	l.positions.Put(index, position)
	l.RecordMeasurement(index, height)
}

// RecordMeasurement stores the height of index, marking it expanded iff it differs from the estimate
func (l *Ledger) RecordMeasurement(index, height int) {
	l.heights.Put(index, height)
	if height != l.itemHeight {
		l.expanded.Put(index, height)
	} else {
		l.expanded.Remove(index)
	}
}

func (l *Ledger) Position(index int) (int, bool) {
	v, found := l.positions.Get(index)
	if !found {
		return 0, false
	}
	return v.(int), true
}

func (l *Ledger) Height(index int) (int, bool) {
	v, found := l.heights.Get(index)
	if !found {
		return 0, false
	}
	return v.(int), true
}

func (l *Ledger) ExpandedHeight(index int) (int, bool) {
	v, found := l.expanded.Get(index)
	if !found {
		return 0, false
	}
	return v.(int), true
}

// HeightOf is the best known height of index: measured, else remembered expanded height, else the estimate
func (l *Ledger) HeightOf(index int) int {
	if h, ok := l.Height(index); ok {
		return h
	}
	if h, ok := l.ExpandedHeight(index); ok {
		return h
	}
	return l.itemHeight
}

// RecomputeRange walks r from the top, placing each measured item directly below its predecessor. move is called
// for every measured item whose position changed
func (l *Ledger) RecomputeRange(r Range, move func(index, position int)) {
	if r.Empty() {
		return
	}
	position := l.PositionOf(r.Low)
	for i := r.Low; i <= r.High; i++ {
		if prev, ok := l.Position(i); ok {
			if prev != position {
				l.positions.Put(i, position)
				if move != nil {
					move(i, position)
				}
			}
		}
		position += l.HeightOf(i)
	}
}

// DiscardExpansion collapses index back to the estimate and shifts every recorded position below it up by the
// height it gave back. Unlike the rest of the ledger this is linear in the number of recorded items
func (l *Ledger) DiscardExpansion(index int, move func(index, position int)) {
	oldHeight := l.HeightOf(index)
	l.expanded.Remove(index)
	if _, ok := l.Height(index); ok {
		l.heights.Put(index, l.itemHeight)
	}
	delta := oldHeight - l.itemHeight
	if delta == 0 {
		return
	}

	var shifted []int
	it := l.positions.Iterator()
	for it.Next() {
		if k := it.Key().(int); k > index {
			shifted = append(shifted, k)
		}
	}
	for _, k := range shifted {
		p, _ := l.Position(k)
		l.positions.Put(k, p-delta)
		if move != nil {
			move(k, p-delta)
		}
	}
}

// Purge forgets the position and height of index. With keepExpanded, a differing height is still remembered so the
// overdraft of items below stays correct while the item is not materialized
func (l *Ledger) Purge(index int, keepExpanded bool) {
	l.positions.Remove(index)
	l.heights.Remove(index)
	if !keepExpanded {
		l.expanded.Remove(index)
	}
}

func (l *Ledger) Clear() {
	l.positions.Clear()
	l.heights.Clear()
	l.expanded.Clear()
}

// Recorded returns the measured indices in ascending order
func (l *Ledger) Recorded() []int {
	keys := l.positions.Keys()
	res := make([]int, len(keys))
	for i := range keys {
		res[i] = keys[i].(int)
	}
	return res
}

// HighestRecorded is the largest measured index
func (l *Ledger) HighestRecorded() (int, bool) {
	n := l.positions.Right()
	if n == nil {
		return 0, false
	}
	return n.Key.(int), true
}

// ExpandedLen is the number of expanded items remembered
func (l *Ledger) ExpandedLen() int {
	return l.expanded.Size()
}
