package message

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// FrameMsg is one animation frame for the list with the given ID
type FrameMsg struct {
	ListID string
}

// ScrollEndMsg fires the scroll-end timer numbered Seq for the list with the given ID
type ScrollEndMsg struct {
	ListID string
	Seq    uint64
}

type ContentCopiedToClipboardMsg struct {
	Content string
	Err     error
}

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}
