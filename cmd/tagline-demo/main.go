package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tagline"
	"github.com/iw2rmb/tagline/editor"
)

const panelWidth = 28

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type eventState struct {
	count int
	last  editor.EventKind
	log   *eventLog
}

func (s *eventState) handle(ev editor.Event) {
	s.count++
	s.last = ev.Kind
	s.log.handle(ev)
}

type model struct {
	editor editor.Model
	events *eventState
	width  int
}

func newModel(markup string, opt editor.Options, events *eventState) model {
	opt.OnEvent = events.handle
	cfg := editor.Config{
		Markup:  markup,
		Options: opt,
		Style:   editor.DefaultStyle(),
	}
	if !clipboard.Unsupported {
		cfg.Clipboard = systemClipboard{}
	}
	return model{editor: editor.New(cfg), events: events}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(editorWidth(msg.Width), editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	panel := lipgloss.NewStyle().
		Width(panelWidth).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		PaddingLeft(1).
		Render(m.entityPanel())

	status := fmt.Sprintf("%s | events: %d | last: %s | ctrl+q quits",
		tagline.Banner(), m.events.count, m.events.last)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), panel),
		"",
		status,
		m.editor.Editor().Value(),
	)
}

func (m model) entityPanel() string {
	ents := m.editor.Snapshot().Entities
	lines := make([]string, 0, len(ents)+1)
	lines = append(lines, fmt.Sprintf("Entities (%d)", len(ents)))
	for i, ent := range ents {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, ent.Text))
	}
	return strings.Join(lines, "\n")
}

func editorWidth(total int) int {
	return max(total-panelWidth-2, 0)
}

func editorHeight(total int) int {
	return max(total-4, 0)
}

func main() {
	markup := flag.String("markup", "Type [Alice] or [Bob] to link them.", "initial surface markup")
	zeroWidth := flag.Bool("zero-width", false, "leave anchors through a zero-width space")
	eventsPath := flag.String("events", "", "append widget events as JSON lines to this file")
	debugPath := flag.String("debug", "", "write debug logs to this file")
	flag.Parse()

	opt := editor.Options{}
	if *zeroWidth {
		opt.GuardStrategy = editor.GuardZeroWidth
	}

	events := &eventState{}
	if *eventsPath != "" {
		f, err := os.OpenFile(*eventsPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		events.log = &eventLog{w: f}
	}
	if *debugPath != "" {
		f, err := os.Create(*debugPath)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		opt.Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	p := tea.NewProgram(newModel(*markup, opt, events), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
