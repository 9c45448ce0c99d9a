package surface

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/muesli/reflow/truncate"
	"github.com/robinovitch61/vl/internal/vlist"
	"strings"
)

type node struct {
	view  vlist.View
	top   int
	lines []string
}

// Surface is a block of terminal rows that item views are placed on at absolute row offsets. View composes the
// rows that fall inside the viewport
type Surface struct {
	width, height int
	contentHeight int

	// nodes maps index -> *node for every attached view
	nodes *redblacktree.Tree
	empty []string
}

func New(width, height int) *Surface {
	return &Surface{
		width:  max(0, width),
		height: max(0, height),
		nodes:  redblacktree.NewWithIntComparator(),
	}
}

func (s *Surface) SetSize(width, height int) {
	s.width, s.height = max(0, width), max(0, height)
}

func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) ViewportHeight() int {
	return s.height
}

func (s *Surface) SetContentHeight(h int) {
	s.contentHeight = max(0, h)
}

func (s *Surface) ContentHeight() int {
	return s.contentHeight
}

func (s *Surface) Measure(v vlist.View) int {
	return lipgloss.Height(v.Element())
}

func (s *Surface) Attach(index int, v vlist.View, top int) {
	s.nodes.Put(index, &node{view: v, top: top, lines: strings.Split(v.Element(), "\n")})
}

func (s *Surface) Move(index int, top int) {
	if n, ok := s.node(index); ok {
		n.top = top
	}
}

func (s *Surface) Redraw(index int, v vlist.View) {
	if n, ok := s.node(index); ok {
		n.view = v
		n.lines = strings.Split(v.Element(), "\n")
	}
}

func (s *Surface) Detach(index int) {
	s.nodes.Remove(index)
}

func (s *Surface) ShowEmpty(v vlist.View) {
	s.empty = strings.Split(v.Element(), "\n")
}

func (s *Surface) HideEmpty() {
	s.empty = nil
}

// Top returns the row an attached index starts at
func (s *Surface) Top(index int) (int, bool) {
	n, ok := s.node(index)
	if !ok {
		return 0, false
	}
	return n.top, true
}

// Attached returns the attached indices in ascending order
func (s *Surface) Attached() []int {
	keys := s.nodes.Keys()
	res := make([]int, len(keys))
	for i, k := range keys {
		res[i] = k.(int)
	}
	return res
}

// View renders the viewport scrolled to offset: exactly ViewportHeight rows, each cropped to Width
func (s *Surface) View(offset int) string {
	if s.height == 0 {
		return ""
	}
	rows := make([]string, s.height)
	if s.empty != nil {
		for i := 0; i < len(s.empty) && i < s.height; i++ {
			rows[i] = s.empty[i]
		}
		return s.render(rows)
	}

	it := s.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*node)
		if n.top+len(n.lines) <= offset || n.top >= offset+s.height {
			continue
		}
		for j, line := range n.lines {
			row := n.top + j - offset
			if 0 <= row && row < s.height {
				rows[row] = line
			}
		}
	}
	return s.render(rows)
}

func (s *Surface) render(rows []string) string {
	for i := range rows {
		if lipgloss.Width(rows[i]) > s.width {
			rows[i] = truncate.String(rows[i], uint(s.width))
		}
	}
	return strings.Join(rows, "\n")
}

func (s *Surface) node(index int) (*node, bool) {
	v, found := s.nodes.Get(index)
	if !found {
		return nil, false
	}
	return v.(*node), true
}
