package collection

import (
	"fmt"
	"sort"
	"strings"
)

// Fields read by the item views
const (
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldExpanded = "expanded"
	FieldSelected = "selected"
)

// Record is a single list item: a stable id plus named fields
type Record struct {
	id     string
	fields map[string]any
}

func NewRecord(id string, fields map[string]any) *Record {
	f := make(map[string]any, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	return &Record{id: id, fields: f}
}

func (r *Record) ID() string {
	return r.id
}

// Get returns the field value, or nil if the field is not set
func (r *Record) Get(field string) any {
	return r.fields[field]
}

func (r *Record) String(field string) string {
	if s, ok := r.fields[field].(string); ok {
		return s
	}
	return ""
}

func (r *Record) Bool(field string) bool {
	b, _ := r.fields[field].(bool)
	return b
}

func (r *Record) set(field string, value any) {
	if value == nil {
		delete(r.fields, field)
		return
	}
	r.fields[field] = value
}

// Line is a single-line representation used when copying or saving records
func (r *Record) Line() string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		if k == FieldSelected || k == FieldExpanded {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{r.id}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.fields[k]))
	}
	return strings.Join(parts, " ")
}
