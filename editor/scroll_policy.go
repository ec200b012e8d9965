package editor

// ScrollPolicy controls whether the viewport may scroll away from the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the viewport without
	// moving the caret.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCaretOnly ignores the wheel; the viewport moves only to keep
	// the caret visible.
	ScrollFollowCaretOnly
)
