package editor

import (
	"strings"

	"github.com/iw2rmb/tagline/dom"
)

// Clipboard provides Model-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// selectedText returns the flattened text under the selection.
func selectedText(doc *dom.Document) string {
	r, ok := doc.Selection()
	if !ok || r.IsCollapsed() {
		return ""
	}
	a, b := doc.TextOffset(r.Anchor), doc.TextOffset(r.Focus)
	if a > b {
		a, b = b, a
	}
	text := []rune(doc.Text())
	if b > len(text) {
		b = len(text)
	}
	return string(text[a:b])
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
