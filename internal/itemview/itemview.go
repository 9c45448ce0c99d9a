package itemview

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vl/internal/collection"
	"strings"
)

const (
	selectedMarker = "> "
	plainMarker    = "  "
	bodyIndent     = 4
)

type Styles struct {
	Selected lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Tag      lipgloss.Style
	Empty    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Selected: lipgloss.NewStyle(),
		Title:    lipgloss.NewStyle(),
		Body:     lipgloss.NewStyle(),
		Tag:      lipgloss.NewStyle(),
		Empty:    lipgloss.NewStyle(),
	}
}

// Item renders a record as a title line, followed by its wrapped body when the record is expanded
type Item struct {
	record *collection.Record
	width  func() int
	styles Styles

	element string
	// settled is set once scrolling stopped while the item was materialized, and shows the record id
	settled bool
	torn    bool
}

func NewItem(record *collection.Record, width func() int, styles Styles) *Item {
	return &Item{record: record, width: width, styles: styles}
}

func (i *Item) Render() {
	width := max(1, i.width())
	marker := plainMarker
	if i.record.Bool(collection.FieldSelected) {
		marker = selectedMarker
	}

	var tag string
	if i.settled {
		tag = fmt.Sprintf(" [%s]", i.record.ID())
	}
	titleWidth := max(0, width-runewidth.StringWidth(marker)-runewidth.StringWidth(tag))
	title := runewidth.Truncate(i.record.String(collection.FieldTitle), titleWidth, "…")
	line := i.styles.Title.Render(title)
	if tag != "" {
		line += i.styles.Tag.Render(tag)
	}
	if marker == selectedMarker {
		line = i.styles.Selected.Render(marker + title + tag)
	} else {
		line = marker + line
	}

	lines := []string{line}
	if i.record.Bool(collection.FieldExpanded) {
		if body := i.record.String(collection.FieldBody); body != "" {
			lines = append(lines, i.styles.Body.Render(wrapBody(body, width)))
		}
	}
	i.element = strings.Join(lines, "\n")
}

func (i *Item) Element() string {
	return i.element
}

func (i *Item) OnScrollEnd() {
	i.settled = true
}

func (i *Item) Teardown() {
	i.torn = true
	i.element = ""
}

func (i *Item) Record() *collection.Record {
	return i.record
}

// wrapBody word-wraps body to width, hard-wrapping words longer than a line, and indents it under the title
func wrapBody(body string, width int) string {
	bodyWidth := max(1, width-bodyIndent)
	wrapped := wrap.String(wordwrap.String(body, bodyWidth), bodyWidth)
	return indent.String(wrapped, bodyIndent)
}

// Empty is shown while the collection has no records
type Empty struct {
	text   string
	style  lipgloss.Style
	render string
}

func NewEmpty(text string, style lipgloss.Style) *Empty {
	return &Empty{text: text, style: style}
}

func (e *Empty) Render() {
	e.render = e.style.Render(e.text)
}

func (e *Empty) Element() string {
	return e.render
}

func (e *Empty) Teardown() {
	e.render = ""
}
