package internal

// NOTE: Searching for `// #` will walk you through the main flow of the application

import (
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vl/internal/collection"
	"github.com/robinovitch61/vl/internal/command"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/fileio"
	"github.com/robinovitch61/vl/internal/help"
	"github.com/robinovitch61/vl/internal/keymap"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/scroller"
	"github.com/robinovitch61/vl/internal/style"
	"github.com/robinovitch61/vl/internal/surface"
	"github.com/robinovitch61/vl/internal/toast"
	"github.com/robinovitch61/vl/internal/util"
	"github.com/robinovitch61/vl/internal/vlist"
	"math/rand"
	"strings"
)

// pageScroller is a vlist.Scroller that can also be paged by the keyboard
type pageScroller interface {
	vlist.Scroller
	ScrollBy(dy int)
}

// appState is shared by every copy of the Model, including copies captured by list callbacks
type appState struct {
	selectedID string
	// nextNum numbers the next generated record
	nextNum int
}

type Model struct {
	config        Config
	keyMap        keymap.KeyMap
	width, height int
	initialized   bool
	err           error
	toast         toast.Model
	helpText      string
	topBarHeight  int // assumed constant

	rng      *rand.Rand
	state    *appState
	records  *collection.Collection
	surface  *surface.Surface
	scroller pageScroller
	momentum *scroller.Momentum // nil unless the external scroller is used
	driver   *teaDriver
	list     *vlist.List
}

func InitialModel(c Config) Model {
	return Model{
		config: c,
		keyMap: keymap.DefaultKeyMap(),
		rng:    rand.New(rand.NewSource(c.Seed)),
		state:  &appState{},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugUpdateMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	// #3: The user presses a key. Most keys queue list operations, which request frames through the driver
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case message.ErrMsg:
		m.err = msg.Err

	// #1: WindowSizeMsg arrives once on startup, then again every time the window is resized
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.initialized {
			m, cmd = m.initialize()
			cmds = append(cmds, cmd)
			return m, tea.Batch(cmds...)
		}
		m, cmd = m.handleWindowSizeMsg(msg.Width, msg.Height)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	// #2: A frame requested by the list arrives. The list steps a momentum scroller, materializes what is now in
	// range, settles its active request, and possibly requests the next frame
	case message.FrameMsg:
		if m.list == nil || msg.ListID != m.list.ID() {
			return m, nil
		}
		m.driver.delivered()
		m.list.Frame()
		return m, m.driver.flush()

	// #4: Scrolling was idle long enough. Materialized items are told and redrawn
	case message.ScrollEndMsg:
		if m.list == nil || msg.ListID != m.list.ID() {
			return m, nil
		}
		m.list.ScrollEnded(msg.Seq)
		return m, m.driver.flush()

	case message.SaveCompleteMsg:
		toastMsg := msg.SuccessMessage
		if toastMsg == "" {
			toastMsg = msg.ErrMessage
		}
		return m.withToast(toastMsg)

	case message.ContentCopiedToClipboardMsg:
		toastMsg := "Copied to clipboard"
		if msg.Err != nil {
			toastMsg = fmt.Sprintf("Error copying to clipboard: %s", msg.Err.Error())
		}
		return m.withToast(toastMsg)

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		errString := wrap.String(m.err.Error(), m.width)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"Error",
			"",
			"q to quit",
			"",
			errString,
		)
	}
	if !m.initialized {
		return ""
	}
	topBar := m.topBar()
	if m.helpText != "" {
		centeredHelp := lipgloss.Place(m.width, m.height-m.topBarHeight, lipgloss.Center, lipgloss.Center, m.helpText)
		return lipgloss.JoinVertical(lipgloss.Left, topBar, centeredHelp)
	}
	viewLines := strings.Split(topBar, "\n")
	viewLines = append(viewLines, strings.Split(m.surface.View(m.scroller.Offset()), "\n")...)
	if toastHeight := m.toast.ViewHeight(); m.toast.Visible && toastHeight > 0 && toastHeight < len(viewLines) {
		viewLines = viewLines[:len(viewLines)-toastHeight]
		viewLines = append(viewLines, strings.Split(m.toast.View(), "\n")...)
	}
	return strings.Join(viewLines, "\n")
}

func (m Model) topBar() string {
	padding := "   "
	left := fmt.Sprintf("vl %s", m.config.Version)
	if m.list != nil {
		stats := m.list.Stats()
		selected := "-"
		if i := m.selectedIndex(); i >= 0 {
			selected = fmt.Sprintf("%d", i)
		}
		left += fmt.Sprintf(
			"%s%d %s%sselected %s%srange %s%scache %d/%d%sheight %d",
			padding,
			m.records.Len(),
			util.Plural(m.records.Len(), "record"),
			padding,
			selected,
			padding,
			stats.Range,
			padding,
			stats.CacheLen,
			stats.CacheCapacity,
			padding,
			stats.ContentHeight,
		)
	}
	right := fmt.Sprintf("%s to quit / %s for help", m.keyMap.Quit.Help().Key, m.keyMap.Help.Help().Key)
	toJoin := []string{left}
	if len(left)+len(padding)+len(right) < m.width {
		toJoin = append(toJoin, right)
	}
	return style.TopBarStyle.Render(util.JoinWithEqualSpacing(m.width, toJoin...))
}

func (m Model) handleWindowSizeMsg(width, height int) (Model, tea.Cmd) {
	m.surface.SetSize(width, height-m.topBarHeight)
	m.scroller.Refresh()
	// wrapped bodies change height with the width
	m.list.Refresh()
	return m, m.driver.flush()
}

func (m Model) withToast(msg string) (Model, tea.Cmd) {
	m.toast = toast.New(msg, style.ToastStyle)
	return m, m.toast.TimeoutCmd(constants.ToastDuration)
}

// tea.KeyMsg handling
// ---

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	dev.Debug(fmt.Sprintf("App keyMsg: %v", msg))
	defer dev.Debug("App keyMsg complete")

	if key.Matches(msg, m.keyMap.Quit) {
		if m.list != nil {
			m.list.Close()
		}
		return m, tea.Quit
	}

	// ignore key messages other than exit if an error is present
	if m.err != nil || !m.initialized {
		return m, nil
	}

	// if help text visible, pressing any key will dismiss it
	if m.helpText != "" {
		m.helpText = ""
		return m, nil
	}

	// adjust for buffered input from held keys, e.g "kk" or "jjj"
	msg.Runes = normalizeRunes(msg)

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keyMap.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keyMap.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keyMap.PageDown):
		m.scrollBy(m.surface.ViewportHeight())
	case key.Matches(msg, m.keyMap.PageUp):
		m.scrollBy(-m.surface.ViewportHeight())
	case key.Matches(msg, m.keyMap.HalfDown):
		m.scrollBy(m.surface.ViewportHeight() / 2)
	case key.Matches(msg, m.keyMap.HalfUp):
		m.scrollBy(-m.surface.ViewportHeight() / 2)
	case key.Matches(msg, m.keyMap.Top):
		m.scrollToIndex(0)
	case key.Matches(msg, m.keyMap.Bottom):
		m.scrollToIndex(m.records.Len() - 1)
	case key.Matches(msg, m.keyMap.Expand):
		m.toggleExpanded()
	case key.Matches(msg, m.keyMap.Collapse):
		m.discardExpanded()
	case key.Matches(msg, m.keyMap.Refresh):
		m.list.Refresh()
	case key.Matches(msg, m.keyMap.Reset):
		m, cmd = m.resetRecords(1 + m.rng.Intn(max(1, 2*m.config.Count)))
	case key.Matches(msg, m.keyMap.Empty):
		m, cmd = m.resetRecords(0)
	case key.Matches(msg, m.keyMap.Append):
		m, cmd = m.appendRecords(constants.AppendCount)
	case key.Matches(msg, m.keyMap.Remove):
		m.removeSelected()
	case key.Matches(msg, m.keyMap.Copy):
		if r := m.records.Record(m.selectedIndex()); r != nil {
			cmd = command.CopyContentToClipboardCmd(r.Line())
		}
	case key.Matches(msg, m.keyMap.Save):
		cmd = fileio.GetSaveCommand("", m.renderedLines())
	case key.Matches(msg, m.keyMap.Help):
		m.helpText = help.MakeHelp(m.keyMap, style.KeyHelpStyle)
	}
	return m, tea.Batch(cmd, m.driver.flush())
}

// normalizeRunes adjusts for buffered key presses
// while frames are being processed, bubble tea will buffer key presses, so KeyMsg's arrive as e.g. "jjj" or
// "kk" if the user is holding those keys down. This doesn't seem to happen for up/down keys
func normalizeRunes(msg tea.KeyMsg) []rune {
	if len(msg.Runes) > 1 {
		if strings.Trim(msg.String(), "j") == "" {
			return []rune{'j'}
		}
		if strings.Trim(msg.String(), "k") == "" {
			return []rune{'k'}
		}
	}
	return msg.Runes
}

// list actions
// ---

func (m Model) selectedIndex() int {
	if m.records == nil || m.state.selectedID == "" {
		return vlist.ItemNotFound
	}
	return m.records.IndexOf(m.state.selectedID)
}

// selectIndex moves the selection marker to index, clamped to the records
func (m Model) selectIndex(index int) {
	if m.state.selectedID != "" {
		m.records.SetQuiet(m.state.selectedID, collection.FieldSelected, nil)
		m.state.selectedID = ""
	}
	if m.records.Len() == 0 {
		return
	}
	r := m.records.Record(max(0, min(index, m.records.Len()-1)))
	m.records.SetQuiet(r.ID(), collection.FieldSelected, true)
	m.state.selectedID = r.ID()
}

func (m Model) moveSelection(delta int) {
	if m.records.Len() == 0 {
		return
	}
	index := m.selectedIndex()
	if index < 0 {
		index = 0
	} else {
		index = max(0, min(index+delta, m.records.Len()-1))
	}
	m.selectIndex(index)
	m.list.Refresh()
	m.list.MakeItemFullyVisibleByIndex(index)
}

func (m Model) scrollBy(dy int) {
	if m.momentum != nil {
		m.momentum.Fling(float64(dy) * constants.PageFlingFraction)
		return
	}
	m.scroller.ScrollBy(dy)
}

// scrollToIndex scrolls index to the top and selects it once the scroll settled
func (m Model) scrollToIndex(index int) {
	if index < 0 {
		return
	}
	m.list.ScrollToElementByIndex(index, func() {
		m.selectIndex(index)
		m.list.Refresh()
	})
}

func (m Model) toggleExpanded() {
	index := m.selectedIndex()
	r := m.records.Record(index)
	if r == nil {
		return
	}
	m.records.SetQuiet(r.ID(), collection.FieldExpanded, !r.Bool(collection.FieldExpanded))
	m.list.Refresh()
	// the new height is only known once the item re-rendered
	m.list.AddRenderCompleteCallback(func() {
		m.list.MakeItemFullyVisibleByID(r.ID())
	})
}

func (m Model) discardExpanded() {
	r := m.records.Record(m.selectedIndex())
	if r == nil {
		return
	}
	m.records.SetQuiet(r.ID(), collection.FieldExpanded, nil)
	m.list.DiscardExpandedStateByID(r.ID())
}

func (m Model) resetRecords(n int) (Model, tea.Cmd) {
	m.state.selectedID = ""
	m.state.nextNum = n
	if err := m.records.Reset(collection.Generate(n, m.rng.Int63())); err != nil {
		return m.withToast(fmt.Sprintf("Error resetting: %s", err.Error()))
	}
	m.scroller.ScrollTo(0, false)
	m.selectIndex(0)
	return m, nil
}

func (m Model) appendRecords(n int) (Model, tea.Cmd) {
	records := collection.GenerateFrom(m.state.nextNum, n, m.rng.Int63())
	if err := m.records.Append(records...); err != nil {
		return m.withToast(fmt.Sprintf("Error appending: %s", err.Error()))
	}
	m.state.nextNum += n
	if m.state.selectedID == "" {
		m.selectIndex(0)
	}
	return m, nil
}

func (m Model) removeSelected() {
	index := m.selectedIndex()
	if index < 0 {
		return
	}
	m.records.Remove(m.state.selectedID)
	m.state.selectedID = ""
	m.selectIndex(index)
}

// renderedLines are the records that currently have a materialized view
func (m Model) renderedLines() []string {
	var lines []string
	for _, i := range m.list.Materialized() {
		if r := m.records.Record(i); r != nil {
			lines = append(lines, r.Line())
		}
	}
	return lines
}
