package internal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/message"
	"time"
)

// teaDriver turns a list's frame and timer requests into bubbletea commands. Requests accumulate until the app
// collects them with flush at the end of an Update
type teaDriver struct {
	listID string
	// frames counts requested frames that have not been delivered yet
	frames int
	cmds   []tea.Cmd
}

func (d *teaDriver) RequestFrame() {
	d.frames++
	id := d.listID
	d.cmds = append(d.cmds, tea.Tick(constants.FrameInterval, func(time.Time) tea.Msg {
		return message.FrameMsg{ListID: id}
	}))
}

func (d *teaDriver) RequestScrollEnd(seq uint64, after time.Duration) {
	id := d.listID
	d.cmds = append(d.cmds, tea.Tick(after, func(time.Time) tea.Msg {
		return message.ScrollEndMsg{ListID: id, Seq: seq}
	}))
}

// delivered records that a requested frame arrived
func (d *teaDriver) delivered() {
	d.frames = max(0, d.frames-1)
}

func (d *teaDriver) pending() bool {
	return d.frames > 0
}

func (d *teaDriver) flush() tea.Cmd {
	if len(d.cmds) == 0 {
		return nil
	}
	cmds := d.cmds
	d.cmds = nil
	return tea.Batch(cmds...)
}
