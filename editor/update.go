package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/dom"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromDocument() {
			m.followCursor()
		}
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		// Don't force-follow the caret; wheel scrolling is manual.
		m.syncFromDocument()
		return m, cmd
	default:
		if m.syncFromDocument() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc == nil {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.edit(func() error { return m.doc.InsertText(string(msg.Runes)) })
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.doc.Move(dom.Move{Unit: dom.MoveChar, Dir: dom.DirLeft})
	case key.Matches(msg, km.Right):
		m.doc.Move(dom.Move{Unit: dom.MoveChar, Dir: dom.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.doc.Move(dom.Move{Unit: dom.MoveChar, Dir: dom.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.doc.Move(dom.Move{Unit: dom.MoveChar, Dir: dom.DirRight, Extend: true})
	case key.Matches(msg, km.Home):
		m.doc.Move(dom.Move{Unit: dom.MoveLine, Dir: dom.DirHome})
	case key.Matches(msg, km.End):
		m.doc.Move(dom.Move{Unit: dom.MoveLine, Dir: dom.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.doc.Move(dom.Move{Unit: dom.MoveDoc, Dir: dom.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.doc.Move(dom.Move{Unit: dom.MoveDoc, Dir: dom.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.edit(m.doc.DeleteBackward)
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.edit(m.doc.DeleteForward)
		}
	case key.Matches(msg, km.LineBreak):
		if !m.cfg.ReadOnly {
			m.edit(m.doc.InsertLineBreak)
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.edit(m.doc.InsertParagraph)
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly || !isPrintable(msg) {
			return m, nil
		}
		m.ed.KeyPress(msg)
		m.edit(func() error { return m.doc.InsertText(keyText(msg)) })
		m.ed.KeyUp()
	}

	return m, nil
}

// edit applies one native edit and runs the Editor's input pass.
func (m Model) edit(fn func() error) {
	if err := fn(); err != nil {
		m.ed.log.Debug("edit", "err", err)
		return
	}
	m.ed.Input()
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := selectedText(m.doc); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := selectedText(m.doc)
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.edit(m.doc.DeleteSelection)
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	s = normalizeNewlines(s)
	m.edit(func() error { return m.doc.InsertText(s) })
}
