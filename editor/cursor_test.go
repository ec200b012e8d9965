package editor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/iw2rmb/tagline/dom"
)

func TestCursor_SaveRestoreRoundTrip(t *testing.T) {
	doc, e, _ := attachText(t, "ab", Options{})
	doc.SetCaret(dom.Point{Node: doc.Root().FirstChild(), Offset: 1})

	tok := e.saveCursor()
	if tok.mark == nil {
		t.Fatalf("save returned the zero token")
	}
	if got, want := len(doc.Root().Children()), 3; got != want {
		t.Fatalf("children with placeholder=%d, want %d", got, want)
	}
	e.restoreCursor(tok)

	if e.placeholder.Parent() != nil {
		t.Fatalf("placeholder left on the surface")
	}
	if got, want := caretOffset(t, doc), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if got, want := doc.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestCursor_NestedSaveRefused(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	doc, e, _ := attachText(t, "ab", Options{Logger: logger})

	outer := e.saveCursor()
	inner := e.saveCursor()
	if inner.mark != nil {
		t.Fatalf("nested save returned a live token")
	}
	if !strings.Contains(buf.String(), "cursor save refused") {
		t.Fatalf("log=%q, want a refusal warning", buf.String())
	}

	e.restoreCursor(inner)
	if e.placeholder.Parent() == nil {
		t.Fatalf("restoring the zero token removed the outer placeholder")
	}
	e.restoreCursor(outer)
	if got, want := caretOffset(t, doc), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}

	if again := e.saveCursor(); again.mark == nil {
		t.Fatalf("save after restore refused")
	}
}

func TestCursor_NoSelection(t *testing.T) {
	doc, e, _ := attachText(t, "ab", Options{})
	doc.ClearSelection()

	tok := e.saveCursor()
	if tok.mark != nil {
		t.Fatalf("save without a caret returned a live token")
	}
	e.restoreCursor(tok)
	if _, ok := doc.Caret(); ok {
		t.Fatalf("restore created a caret")
	}
}

func TestCursor_OpenDelimiterRestoresAfterIt(t *testing.T) {
	doc, e, _ := attachText(t, "x[", Options{})

	tok := e.saveCursor()
	if !tok.before {
		t.Fatalf("token not saved in front of the open delimiter")
	}
	if got, want := e.placeholder.Index(), 1; got != want {
		t.Fatalf("placeholder index=%d, want %d", got, want)
	}
	e.restoreCursor(tok)

	if got, want := caretOffset(t, doc), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}
