package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/dom"
)

const zeroWidthSpace = "\u200b"

// KeyPress runs the Boundary Guard for a key about to be committed. When the
// caret sits on an anchor's leading or trailing edge and the key prints a
// character, the caret moves just outside the anchor so the character lands
// in plain text. It reports whether the caret moved.
//
// Interior positions are left alone; edits there go through Validate.
func (e *Editor) KeyPress(msg tea.KeyMsg) bool {
	if !isPrintable(msg) {
		return false
	}
	caret, ok := e.doc.Caret()
	if !ok {
		return false
	}
	anchor := dom.EnclosingAnchor(caret.Node)
	if anchor == nil || anchor.Parent() == nil {
		return false
	}

	start := e.doc.TextOffset(dom.Point{Node: anchor, Offset: 0})
	off := e.doc.TextOffset(caret) - start
	n := e.doc.TextOffset(dom.Point{Node: anchor, Offset: anchor.Len()}) - start

	switch {
	case off == n:
		e.exitAfter(anchor)
	case off == 0:
		e.doc.CollapseBefore(anchor)
	default:
		return false
	}
	e.normalizeOnKeyUp = true
	return true
}

func (e *Editor) exitAfter(anchor *dom.Node) {
	if e.opt.GuardStrategy != GuardZeroWidth {
		e.doc.CollapseAfter(anchor)
		return
	}

	zw := dom.NewText(zeroWidthSpace)
	if err := e.doc.InsertAfter(zw, anchor); err != nil {
		e.log.Debug("guard zero-width", "err", err)
		e.doc.CollapseAfter(anchor)
		return
	}
	e.doc.SetCaret(dom.Point{Node: zw, Offset: 1})
	e.zeroWidth = zw
}

// stripZeroWidth removes the pending guard character; the live selection
// keeps the caret right after whatever was typed behind it.
func (e *Editor) stripZeroWidth() {
	zw := e.zeroWidth
	e.zeroWidth = nil
	if !e.doc.Root().Contains(zw) {
		return
	}
	for i, r := range []rune(zw.Data()) {
		if string(r) == zeroWidthSpace {
			_ = e.doc.ReplaceData(zw, i, 1, "")
			return
		}
	}
}

// isPrintable reports whether msg commits a character. Paste is not a
// keystroke and is not guarded.
func isPrintable(msg tea.KeyMsg) bool {
	if msg.Paste || msg.Alt {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		return len(msg.Runes) > 0
	case tea.KeySpace:
		return true
	default:
		return false
	}
}

// keyText is the text a printable key commits.
func keyText(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return string(msg.Runes)
}
