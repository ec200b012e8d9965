package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagline/dom"
	graphemeutil "github.com/iw2rmb/tagline/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellEntity
	cellSelText
	cellSelEntity
	cellCursor
)

// cell is one grapheme cluster (or break) of the flattened surface.
type cell struct {
	text   string
	runes  int
	entity bool
	br     bool
}

func collectCells(n *dom.Node, inAnchor bool, out []cell) []cell {
	for _, c := range n.Children() {
		switch {
		case c.IsText():
			for _, g := range graphemeutil.Split(c.Data()) {
				out = append(out, cell{text: g, runes: len([]rune(g)), entity: inAnchor})
			}
		case c.IsBreak():
			out = append(out, cell{br: true, runes: 1})
		default:
			out = collectCells(c, inAnchor || c.IsAnchor(), out)
		}
	}
	return out
}

// renderState accumulates one line of same-kind runs.
type renderState struct {
	style Style
	lines []string
	line  strings.Builder
	run   strings.Builder
	kind  cellKind
}

func (s *renderState) write(kind cellKind, text string) {
	if kind != s.kind {
		s.flushRun()
		s.kind = kind
	}
	s.run.WriteString(text)
}

func (s *renderState) flushRun() {
	if s.run.Len() == 0 {
		return
	}
	s.line.WriteString(s.styleFor(s.kind).Render(s.run.String()))
	s.run.Reset()
}

func (s *renderState) endLine() {
	s.flushRun()
	s.lines = append(s.lines, s.line.String())
	s.line.Reset()
}

func (s *renderState) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellEntity:
		return s.style.Entity
	case cellSelText:
		return s.style.Selection.Inherit(s.style.Text)
	case cellSelEntity:
		return s.style.Selection.Inherit(s.style.Entity)
	case cellCursor:
		return s.style.Cursor
	default:
		return s.style.Text
	}
}

func (m *Model) renderContent() string {
	if m.doc == nil {
		return ""
	}

	cursor, selStart, selEnd := -1, 0, 0
	if r, ok := m.doc.Selection(); ok {
		a, f := m.doc.TextOffset(r.Anchor), m.doc.TextOffset(r.Focus)
		if m.focused {
			cursor = f
		}
		selStart, selEnd = min(a, f), max(a, f)
	}

	st := &renderState{style: m.cfg.Style}
	k := 0
	for _, c := range collectCells(m.doc.Root(), false, nil) {
		onCursor := cursor >= k && cursor < k+c.runes
		switch {
		case c.br:
			if onCursor {
				st.write(cellCursor, " ")
			}
			st.endLine()
		case onCursor:
			if graphemeutil.Width(c.text) == 0 {
				st.write(cellCursor, " ")
			} else {
				st.write(cellCursor, c.text)
			}
		default:
			kind := cellText
			if c.entity {
				kind = cellEntity
			}
			if k >= selStart && k < selEnd {
				kind += cellSelText
			}
			st.write(kind, c.text)
		}
		k += c.runes
	}
	if cursor == k {
		st.write(cellCursor, " ")
	}
	st.endLine()

	return strings.Join(st.lines, "\n")
}
