package editor

import (
	"testing"

	"github.com/iw2rmb/tagline/dom"
)

type recorder struct {
	events []Event
}

func (r *recorder) handle(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) reset() { r.events = nil }

func (r *recorder) count(k EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func (r *recorder) texts(k EventKind) []string {
	var out []string
	for _, ev := range r.events {
		if ev.Kind == k {
			out = append(out, ev.Text)
		}
	}
	return out
}

// attachText builds a single-run surface with the caret at its end.
func attachText(t *testing.T, text string, opt Options) (*dom.Document, *Editor, *recorder) {
	t.Helper()
	doc := dom.NewWithText(text)
	doc.SetCaret(doc.PointAtOffset(doc.Len()))
	return attachDoc(t, doc, opt)
}

func attachMarkup(t *testing.T, markup string, opt Options) (*dom.Document, *Editor, *recorder) {
	t.Helper()
	doc, err := dom.Parse(markup)
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	doc.SetCaret(doc.PointAtOffset(doc.Len()))
	return attachDoc(t, doc, opt)
}

func attachDoc(t *testing.T, doc *dom.Document, opt Options) (*dom.Document, *Editor, *recorder) {
	t.Helper()
	rec := &recorder{}
	opt.OnEvent = rec.handle
	return doc, Attach(doc, opt), rec
}

func anchors(doc *dom.Document) []*dom.Node {
	var out []*dom.Node
	for _, n := range doc.Root().Children() {
		if n.IsAnchor() {
			out = append(out, n)
		}
	}
	return out
}

func caretOffset(t *testing.T, doc *dom.Document) int {
	t.Helper()
	p, ok := doc.Caret()
	if !ok {
		t.Fatalf("caret: no selection")
	}
	return doc.TextOffset(p)
}

// assertSettled checks the invariants that hold after every input pass.
func assertSettled(t *testing.T, doc *dom.Document) {
	t.Helper()
	var prevText bool
	for _, n := range doc.Root().Children() {
		if n.IsText() && prevText {
			t.Fatalf("adjacent text runs in %q", doc.Markup())
		}
		prevText = n.IsText()
		if !n.IsAnchor() {
			continue
		}
		text := n.TextContent()
		if text == "" {
			t.Fatalf("empty anchor in %q", doc.Markup())
		}
		if !hasDelimiters(text) {
			t.Fatalf("anchor %q lost its delimiters", text)
		}
		if n.ContainsBreak() {
			t.Fatalf("anchor %q holds a break", text)
		}
	}
}

func TestAttach_FiresInitAndAdoptsClassedAnchors(t *testing.T) {
	_, e, rec := attachMarkup(t,
		`<a class="ee-entity" href="#">[Ann]</a> and <a href="#">[Not]</a> <a class="ee-entity" href="#">bad</a>`,
		Options{})

	if got, want := len(rec.events), 1; got != want {
		t.Fatalf("events=%d, want %d", got, want)
	}
	if rec.events[0].Kind != EventInit {
		t.Fatalf("first event=%v, want %v", rec.events[0].Kind, EventInit)
	}
	ents := e.Entities()
	if len(ents) != 1 || ents[0].Text != "Ann" {
		t.Fatalf("entities=%v, want one Ann", ents)
	}
}

func TestAdoptedEntity_UnlinksWhenBroken(t *testing.T) {
	doc, e, rec := attachMarkup(t, `<a class="ee-entity" href="#">[Ann]</a>`, Options{})
	rec.reset()

	// Caret sits at the end of the anchor text; remove the close delimiter.
	if err := doc.DeleteBackward(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	e.Input()

	if got := rec.texts(EventEntityUnlinked); len(got) != 1 || got[0] != "Ann" {
		t.Fatalf("unlinked=%v, want [Ann]", got)
	}
	if got, want := e.Value(), "[Ann"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestValue_TrimsMarkup(t *testing.T) {
	_, e, _ := attachText(t, "  hi [x]  ", Options{})
	e.Input()
	if got, want := e.Value(), `hi <a class="ee-entity" href="#">[x]</a>`; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	_, e, _ := attachText(t, "", Options{})

	var got []EventKind
	unsubscribe := e.Subscribe(func(ev Event) { got = append(got, ev.Kind) })
	e.Input()
	unsubscribe()
	e.Input()

	if len(got) != 1 || got[0] != EventContentChanged {
		t.Fatalf("events=%v, want [content-changed]", got)
	}

	// Unsubscribing twice and subscribing nil are harmless.
	unsubscribe()
	e.Subscribe(nil)()
}

func TestSubscribe_UnsubscribeDuringEmit(t *testing.T) {
	_, e, _ := attachText(t, "", Options{})

	calls := 0
	var unsubscribe func()
	unsubscribe = e.Subscribe(func(Event) {
		calls++
		unsubscribe()
	})
	second := 0
	e.Subscribe(func(Event) { second++ })

	e.Input()
	e.Input()
	if calls != 1 || second != 2 {
		t.Fatalf("calls=%d second=%d, want 1 2", calls, second)
	}
}

func TestDetach_StopsReacting(t *testing.T) {
	doc, e, rec := attachText(t, "[Bob]", Options{})
	e.Input()
	rec.reset()

	e.Detach()
	a := anchors(doc)[0]
	if err := doc.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := doc.Flush(); got != 0 {
		t.Fatalf("batches after detach=%d, want 0", got)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events after detach=%v, want none", rec.events)
	}
}

func TestDetach_InputAndScanLeaveSurfaceAlone(t *testing.T) {
	doc, e, rec := attachText(t, "x [Bob]", Options{})
	e.Detach()
	rec.reset()
	before := doc.Version()

	e.Input()
	if got := e.Scan(); got != 0 {
		t.Fatalf("Scan()=%d after detach, want 0", got)
	}

	if got := doc.Version(); got != before {
		t.Fatalf("version=%d after detach, want %d", got, before)
	}
	if got, want := doc.Markup(), "x [Bob]"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
	if got, want := caretOffset(t, doc), 7; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events after detach=%v, want none", rec.events)
	}
}

func TestEventKind_String(t *testing.T) {
	cases := map[EventKind]string{
		EventInit:           "init",
		EventContentChanged: "content-changed",
		EventEntityLinked:   "entity-linked",
		EventEntityEdited:   "entity-edited",
		EventEntityUnlinked: "entity-unlinked",
		EventKind(99):       "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String()=%q, want %q", k, got, want)
		}
	}
}
