package editor

import (
	"io"
	"log/slog"
	"math"
)

// DefaultClass tags anchors created by the scanner.
const DefaultClass = "ee-entity"

// DefaultMaxEntityLen caps the characters between the delimiters.
const DefaultMaxEntityLen = 50

// maxRepeat is the largest repetition count regexp accepts.
const maxRepeat = 1000

// GuardStrategy selects how the Boundary Guard moves the caret out of an
// anchor's trailing edge.
type GuardStrategy uint8

const (
	// GuardCollapse places the caret right after the anchor.
	GuardCollapse GuardStrategy = iota
	// GuardZeroWidth inserts a zero-width space after the anchor and parks the
	// caret behind it; the character is stripped on the next mutation batch.
	GuardZeroWidth
)

// Options configures an Editor. The zero value is ready to use.
type Options struct {
	// Class is added to every anchor the scanner creates.
	Class string
	// MaxEntityLen caps the text between delimiters (default: 50).
	MaxEntityLen int

	GuardStrategy GuardStrategy

	// Logger receives debug traces of scans, dissolves and removals.
	// Default: discard.
	Logger *slog.Logger

	// OnEvent, if set, is subscribed before Attach fires EventInit.
	OnEvent func(Event)
}

func (o Options) withDefaults() Options {
	if o.Class == "" {
		o.Class = DefaultClass
	}
	if o.MaxEntityLen <= 0 {
		o.MaxEntityLen = DefaultMaxEntityLen
	}
	if o.MaxEntityLen > maxRepeat {
		o.MaxEntityLen = maxRepeat
	}
	if o.Logger == nil {
		// Equivalent of slog.DiscardHandler (Go 1.24+): drops every record.
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return o
}

// Config configures the terminal Model.
type Config struct {
	// Markup is the initial surface content (HTML: text, <a>, <br>).
	Markup string

	Options Options
	Style   Style
	KeyMap  KeyMap

	ScrollPolicy ScrollPolicy

	// Clipboard backs the Copy, Cut and Paste bindings. Nil disables them.
	Clipboard Clipboard

	// ReadOnly disables all mutations from key handling.
	ReadOnly bool
}
