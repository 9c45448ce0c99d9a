package internal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/vl/internal/collection"
	"github.com/robinovitch61/vl/internal/fixtures"
	"github.com/robinovitch61/vl/internal/message"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Count:               100,
		EstimatedItemHeight: 1,
		ContainerName:       "main",
		Seed:                1,
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	res, cmd := m.Update(msg)
	return res.(Model), cmd
}

// settle delivers frames until the list stops requesting them
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.driver.pending(); i++ {
		if i > 1000 {
			t.Fatalf("list never settled")
		}
		m, _ = update(t, m, message.FrameMsg{ListID: m.list.ID()})
	}
	return m
}

func started(t *testing.T, c Config) Model {
	t.Helper()
	m, _ := update(t, InitialModel(c), tea.WindowSizeMsg{Width: 80, Height: 21})
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	return settle(t, m)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	return settle(t, m)
}

func TestApp_NothingBeforeWindowSize(t *testing.T) {
	m := InitialModel(testConfig())
	fixtures.Cmp(t, "", m.View())
	m, cmd := update(t, m, runeKey('j'))
	if cmd != nil {
		t.Errorf("expected no command before initialization")
	}
	fixtures.Cmp(t, false, m.initialized)
}

func TestApp_InitialView(t *testing.T) {
	m := started(t, testConfig())
	fixtures.Cmp(t, 1, m.topBarHeight)
	fixtures.Cmp(t, 20, m.surface.ViewportHeight())
	fixtures.Cmp(t, 0, m.selectedIndex())

	lines := strings.Split(m.View(), "\n")
	fixtures.Cmp(t, 21, len(lines))
	if !strings.HasPrefix(lines[1], "> 00000 ") {
		t.Errorf("expected first item selected, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  00001 ") {
		t.Errorf("expected second item, got %q", lines[2])
	}
	if !strings.Contains(lines[0], "100 records") {
		t.Errorf("expected record count in top bar, got %q", lines[0])
	}
}

func TestApp_MoveSelection(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, runeKey('j'))
	m = press(t, m, runeKey('j'))
	fixtures.Cmp(t, 2, m.selectedIndex())
	m = press(t, m, runeKey('k'))
	fixtures.Cmp(t, 1, m.selectedIndex())

	lines := strings.Split(m.View(), "\n")
	if !strings.HasPrefix(lines[2], "> 00001 ") {
		t.Errorf("expected second item selected, got %q", lines[2])
	}
	fixtures.Cmp(t, false, m.records.Record(0).Bool(collection.FieldSelected))
}

func TestApp_BufferedKeysMoveOnce(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("jjj")})
	fixtures.Cmp(t, 1, m.selectedIndex())
}

func TestApp_SelectionKeepsItemVisible(t *testing.T) {
	m := started(t, testConfig())
	for i := 0; i < 25; i++ {
		m = press(t, m, runeKey('j'))
	}
	fixtures.Cmp(t, 25, m.selectedIndex())
	// item 25 occupies row 25, so the bottom of the viewport lines up with it
	fixtures.Cmp(t, 6, m.scroller.Offset())
}

func TestApp_BottomAndTop(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, runeKey('G'))
	fixtures.Cmp(t, 80, m.scroller.Offset())
	fixtures.Cmp(t, 99, m.selectedIndex())

	m = press(t, m, runeKey('g'))
	fixtures.Cmp(t, 0, m.scroller.Offset())
	fixtures.Cmp(t, 0, m.selectedIndex())
}

func TestApp_ExpandAndCollapse(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if h := m.list.HeightOf(0); h < 2 {
		t.Fatalf("expected expanded height, got %d", h)
	}
	expandedHeight := m.list.HeightOf(0)
	fixtures.Cmp(t, expandedHeight, m.list.PositionOf(1))
	fixtures.Cmp(t, 99+expandedHeight, m.list.ContentHeight())

	m = press(t, m, runeKey('x'))
	fixtures.Cmp(t, 1, m.list.HeightOf(0))
	fixtures.Cmp(t, 1, m.list.PositionOf(1))
	fixtures.Cmp(t, 100, m.list.ContentHeight())
}

func TestApp_EmptyThenReset(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, runeKey('E'))
	fixtures.Cmp(t, true, m.list.Empty())
	fixtures.Cmp(t, 0, m.records.Len())
	if !strings.Contains(m.View(), emptyText) {
		t.Errorf("expected empty text in view")
	}

	m = press(t, m, runeKey('R'))
	fixtures.Cmp(t, false, m.list.Empty())
	if m.records.Len() < 1 {
		t.Errorf("expected records after reset")
	}
	fixtures.Cmp(t, 0, m.selectedIndex())
}

func TestApp_AppendAndRemove(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, runeKey('a'))
	fixtures.Cmp(t, 200, m.records.Len())
	fixtures.Cmp(t, 100, m.records.IndexOf("item-100"))

	m = press(t, m, runeKey('D'))
	fixtures.Cmp(t, 199, m.records.Len())
	fixtures.Cmp(t, -1, m.records.IndexOf("item-0"))
	fixtures.Cmp(t, "item-1", m.records.Record(m.selectedIndex()).ID())
}

func TestApp_HelpIsDismissedByAnyKey(t *testing.T) {
	m := started(t, testConfig())
	m = press(t, m, runeKey('?'))
	if m.helpText == "" {
		t.Fatalf("expected help text")
	}
	m = press(t, m, runeKey('j'))
	fixtures.Cmp(t, "", m.helpText)
	fixtures.Cmp(t, 0, m.selectedIndex())
}

func TestApp_Quit(t *testing.T) {
	m := started(t, testConfig())
	_, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg")
	}
}

func TestApp_IgnoresOtherListFrames(t *testing.T) {
	m := started(t, testConfig())
	_, cmd := update(t, m, message.FrameMsg{ListID: "other"})
	if cmd != nil {
		t.Errorf("expected no command for another list's frame")
	}
}

func TestApp_ToastOnSave(t *testing.T) {
	m := started(t, testConfig())
	m, cmd := update(t, m, message.SaveCompleteMsg{SuccessMessage: "Saved 3 lines to x.txt"})
	if cmd == nil {
		t.Errorf("expected toast timeout command")
	}
	lines := strings.Split(m.View(), "\n")
	fixtures.Cmp(t, 21, len(lines))
	if !strings.Contains(lines[len(lines)-1], "Saved 3 lines to x.txt") {
		t.Errorf("expected toast on last line, got %q", lines[len(lines)-1])
	}
}

func TestApp_MomentumPageDown(t *testing.T) {
	c := testConfig()
	c.ExternalScroller = true
	m := started(t, c)
	m = press(t, m, runeKey('f'))
	if m.scroller.Offset() <= 0 {
		t.Errorf("expected fling to scroll down, got %d", m.scroller.Offset())
	}
	fixtures.Cmp(t, false, m.scroller.IsScrolling())
	fixtures.Cmp(t, false, m.list.Stats().Busy)
}
