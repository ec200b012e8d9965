package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tagline/dom"
)

// Model is a Bubble Tea component hosting an Editor on its own surface.
//
// Keystrokes are applied to the surface with the same native editing a
// browser would perform, then handed to the Editor as guard, input and
// keyup notifications.
type Model struct {
	cfg Config
	doc *dom.Document
	ed  *Editor

	focused bool

	viewport viewport.Model

	// Mouse selection state, as flattened offsets.
	mouseAnchor   int
	mouseDragging bool

	lastVersion uint64
}

// New parses cfg.Markup into a surface and attaches an Editor to it. Markup
// that cannot be parsed is loaded as plain text. The caret starts at the end.
func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	opt := cfg.Options.withDefaults()
	doc, err := dom.Parse(cfg.Markup)
	if err != nil {
		opt.Logger.Warn("markup rejected, loading as text", "err", err)
		doc = dom.NewWithText(cfg.Markup)
	}
	doc.SetCaret(doc.PointAtOffset(doc.Len()))

	m := Model{
		cfg:      cfg,
		doc:      doc,
		ed:       Attach(doc, opt),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.ed.Input()
	m.lastVersion = m.doc.Version()
	m.rebuildContent()
	return m
}

func (m Model) Editor() *Editor { return m.ed }

func (m Model) Document() *dom.Document { return m.doc }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) View() string { return m.viewport.View() }

// syncFromDocument rebuilds the view when the surface or the caret changed.
func (m *Model) syncFromDocument() bool {
	if m.doc == nil {
		return false
	}
	ver := m.doc.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.doc == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.cursorRow()

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// cursorRow counts the breaks before the caret.
func (m *Model) cursorRow() int {
	caret, ok := m.doc.Caret()
	if !ok {
		return 0
	}
	k := m.doc.TextOffset(caret)
	row := 0
	for i, r := range []rune(m.doc.Text()) {
		if i >= k {
			break
		}
		if r == '\n' {
			row++
		}
	}
	return row
}
