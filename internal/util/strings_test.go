package util

import (
	"github.com/robinovitch61/vl/internal/fixtures"
	"testing"
)

func TestJoinWithEqualSpacing(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		items    []string
		expected string
	}{
		{name: "no items", width: 10, items: nil, expected: ""},
		{name: "zero width", width: 0, items: []string{"a"}, expected: ""},
		{name: "single item", width: 10, items: []string{"abc"}, expected: "abc"},
		{name: "two items", width: 10, items: []string{"ab", "cd"}, expected: "ab      cd"},
		{name: "uneven spacing", width: 10, items: []string{"a", "b", "c"}, expected: "a    b   c"},
		{name: "exact fit", width: 4, items: []string{"ab", "cd"}, expected: "abcd"},
		{name: "truncated", width: 5, items: []string{"abc", "def"}, expected: "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures.Cmp(t, tt.expected, JoinWithEqualSpacing(tt.width, tt.items...))
		})
	}
}

func TestPlural(t *testing.T) {
	fixtures.Cmp(t, "record", Plural(1, "record"))
	fixtures.Cmp(t, "records", Plural(0, "record"))
	fixtures.Cmp(t, "records", Plural(2, "record"))
}
