package editor

import "github.com/iw2rmb/tagline/dom"

// cursorToken is returned by saveCursor. The zero token restores nothing.
type cursorToken struct {
	mark   *dom.Node
	before bool
}

// saveCursor parks the shared placeholder at the caret so the position
// survives splits and unwraps. When the character before the caret is an
// open delimiter the placeholder goes in front of it, keeping it outside the
// entity about to form.
func (e *Editor) saveCursor() cursorToken {
	if e.markActive {
		e.log.Warn("cursor save refused: placeholder already in use")
		return cursorToken{}
	}
	caret, ok := e.doc.Caret()
	if !ok {
		return cursorToken{}
	}

	at, before := caret, false
	if p, ok := pointBeforeOpenDelim(caret); ok {
		at, before = p, true
	}
	if err := e.doc.InsertNodeAt(at, e.placeholder); err != nil {
		e.log.Debug("cursor save", "err", err)
		return cursorToken{}
	}
	e.markActive = true
	return cursorToken{mark: e.placeholder, before: before}
}

// restoreCursor puts the caret back at the placeholder and removes it. A
// placeholder saved in front of an open delimiter restores one character
// into the run that follows it.
func (e *Editor) restoreCursor(tok cursorToken) {
	if tok.mark == nil {
		return
	}
	e.markActive = false
	if tok.mark.Parent() == nil {
		return
	}

	e.doc.Normalize(e.doc.Root())
	next := tok.mark.NextSibling()
	if t := firstTextOf(next); tok.before && t != nil {
		e.doc.SetCaret(dom.Point{Node: t, Offset: 1})
	} else {
		e.doc.CollapseAfter(tok.mark)
	}
	_ = e.doc.Remove(tok.mark)
}

func firstTextOf(n *dom.Node) *dom.Node {
	if n == nil || n.TextContent() == "" {
		return nil
	}
	// Normalized, so the first text run is non-empty.
	return n.FirstText()
}

func pointBeforeOpenDelim(p dom.Point) (dom.Point, bool) {
	n, off := p.Node, p.Offset
	if !n.IsText() {
		if off <= 0 || off > n.Len() {
			return dom.Point{}, false
		}
		n = n.Children()[off-1]
		if !n.IsText() {
			return dom.Point{}, false
		}
		off = n.Len()
	}
	data := []rune(n.Data())
	if off <= 0 || off > len(data) || string(data[off-1]) != openDelim {
		return dom.Point{}, false
	}
	return dom.Point{Node: n, Offset: off - 1}, true
}
