package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/dom"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		if m.cfg.ScrollPolicy == ScrollAllowManual {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	if !m.focused || m.doc == nil {
		return m, cmd
	}

	// Only left button interactions move the caret.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		k := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			if r, ok := m.doc.Selection(); ok {
				m.mouseAnchor = m.doc.TextOffset(r.Anchor)
			}
		} else {
			m.mouseAnchor = k
		}
		m.selectOffsets(m.mouseAnchor, k)
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.selectOffsets(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) selectOffsets(anchor, focus int) {
	m.doc.SetRange(dom.Range{
		Anchor: m.doc.PointAtOffset(anchor),
		Focus:  m.doc.PointAtOffset(focus),
	})
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
