package command

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/vl/internal/message"
)

// CopyContentToClipboardCmd writes content to the system clipboard in the background
func CopyContentToClipboardCmd(content string) tea.Cmd {
	return copyWith(clipboard.WriteAll, content)
}

func copyWith(write func(string) error, content string) tea.Cmd {
	return func() tea.Msg {
		err := write(content)
		return message.ContentCopiedToClipboardMsg{Content: content, Err: err}
	}
}
