package collection

import (
	"fmt"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/vlist"
)

// Collection is an ordered, in-memory set of records that notifies subscribers when it changes. Ids are unique
type Collection struct {
	records []*Record

	// indexByID maps id -> position in records
	indexByID map[string]int

	// subscribers maps subscription id -> callback, notified in subscription order
	subscribers *treemap.Map
	nextSubID   int
}

// New returns a collection of the records. Ids must be unique
func New(records ...*Record) (*Collection, error) {
	c := &Collection{subscribers: treemap.NewWithIntComparator()}
	if err := c.replace(records); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection) Len() int {
	return len(c.records)
}

// At returns the record at index i, or nil when i is out of range
func (c *Collection) At(i int) vlist.Model {
	if i < 0 || i >= len(c.records) {
		return nil
	}
	return c.records[i]
}

// Record is At without the interface conversion
func (c *Collection) Record(i int) *Record {
	if i < 0 || i >= len(c.records) {
		return nil
	}
	return c.records[i]
}

func (c *Collection) IndexOf(id string) int {
	if i, ok := c.indexByID[id]; ok {
		return i
	}
	return vlist.ItemNotFound
}

// Records returns a copy of the records in order
func (c *Collection) Records() []*Record {
	return append([]*Record(nil), c.records...)
}

func (c *Collection) Subscribe(fn func(vlist.Event)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subscribers.Put(id, fn)
	return func() { c.subscribers.Remove(id) }
}

// Reset replaces every record
func (c *Collection) Reset(records []*Record) error {
	if err := c.replace(records); err != nil {
		return err
	}
	c.notify(vlist.EventReset)
	return nil
}

// Append adds records at the end
func (c *Collection) Append(records ...*Record) error {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if _, exists := c.indexByID[r.ID()]; exists || seen[r.ID()] {
			return fmt.Errorf("duplicate record id %q", r.ID())
		}
		seen[r.ID()] = true
	}
	for _, r := range records {
		c.indexByID[r.ID()] = len(c.records)
		c.records = append(c.records, r)
	}
	c.notify(vlist.EventUpdate)
	return nil
}

// Remove deletes the record with the id, reporting whether it existed
func (c *Collection) Remove(id string) bool {
	i, ok := c.indexByID[id]
	if !ok {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.reindex()
	c.notify(vlist.EventUpdate)
	return true
}

// Set changes a field of the record with the id and notifies subscribers. A nil value clears the field
func (c *Collection) Set(id, field string, value any) bool {
	if !c.SetQuiet(id, field, value) {
		return false
	}
	c.notify(vlist.EventUpdate)
	return true
}

// SetQuiet changes a field without notifying subscribers, for state the list picks up on its own, e.g. through a
// refresh
func (c *Collection) SetQuiet(id, field string, value any) bool {
	i, ok := c.indexByID[id]
	if !ok {
		return false
	}
	c.records[i].set(field, value)
	return true
}

func (c *Collection) replace(records []*Record) error {
	indexByID := make(map[string]int, len(records))
	for i, r := range records {
		if _, exists := indexByID[r.ID()]; exists {
			return fmt.Errorf("duplicate record id %q", r.ID())
		}
		indexByID[r.ID()] = i
	}
	c.records = append([]*Record(nil), records...)
	c.indexByID = indexByID
	return nil
}

func (c *Collection) reindex() {
	c.indexByID = make(map[string]int, len(c.records))
	for i, r := range c.records {
		c.indexByID[r.ID()] = i
	}
}

func (c *Collection) notify(kind vlist.EventKind) {
	dev.Debug(fmt.Sprintf("collection: %s to %d records, %d subscribers", kind, len(c.records), c.subscribers.Size()))
	// callbacks may unsubscribe
	for _, v := range c.subscribers.Values() {
		v.(func(vlist.Event))(vlist.Event{Kind: kind})
	}
}
