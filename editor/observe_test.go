package editor

import (
	"testing"

	"github.com/iw2rmb/tagline/dom"
)

// linked returns a settled surface holding one entity for text, with the
// caret at the end.
func linked(t *testing.T, text string, opt Options) (*dom.Document, *Editor, *recorder, *dom.Node) {
	t.Helper()
	doc, e, rec := attachText(t, text, opt)
	e.Input()
	as := anchors(doc)
	if len(as) != 1 {
		t.Fatalf("anchors=%d, want 1 in %q", len(as), doc.Markup())
	}
	rec.reset()
	return doc, e, rec, as[0]
}

func TestEdit_InteriorEditKeepsEntity(t *testing.T) {
	doc, e, rec, a := linked(t, "[Bob]", Options{})
	doc.SetCaret(dom.Point{Node: a.FirstChild(), Offset: 2})

	if err := doc.InsertText("x"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	e.Input()

	if got := rec.count(EventEntityEdited); got != 1 {
		t.Fatalf("edited=%d, want 1", got)
	}
	if got := rec.events[0].Anchor; got != a {
		t.Fatalf("edited anchor=%p, want %p", got, a)
	}
	if ents := e.Entities(); len(ents) != 1 || ents[0].Text != "Bxob" {
		t.Fatalf("entities=%v, want one Bxob", ents)
	}
	if got := rec.count(EventEntityUnlinked); got != 0 {
		t.Fatalf("unlinked=%d, want 0", got)
	}
	if got, want := caretOffset(t, doc), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestEdit_LosingDelimiterDissolves(t *testing.T) {
	cases := []struct {
		name   string
		caret  int // offset inside "[Bob]" before the backspace
		want   string
		caretK int
	}{
		{name: "close", caret: 5, want: "[Bob", caretK: 4},
		{name: "open", caret: 1, want: "Bob]", caretK: 0},
	}
	for _, tc := range cases {
		doc, e, rec, a := linked(t, "[Bob]", Options{})
		doc.SetCaret(dom.Point{Node: a.FirstChild(), Offset: tc.caret})

		if err := doc.DeleteBackward(); err != nil {
			t.Fatalf("%s: delete: %v", tc.name, err)
		}
		e.Input()

		if got := doc.Markup(); got != tc.want {
			t.Fatalf("%s: markup=%q, want %q", tc.name, got, tc.want)
		}
		if got := rec.texts(EventEntityUnlinked); len(got) != 1 || got[0] != "Bob" {
			t.Fatalf("%s: unlinked=%v, want [Bob]", tc.name, got)
		}
		if got := rec.count(EventEntityEdited); got != 0 {
			t.Fatalf("%s: edited=%d, want 0", tc.name, got)
		}
		if len(e.Entities()) != 0 {
			t.Fatalf("%s: entities=%v, want none", tc.name, e.Entities())
		}
		if got := caretOffset(t, doc); got != tc.caretK {
			t.Fatalf("%s: caret=%d, want %d", tc.name, got, tc.caretK)
		}
		assertSettled(t, doc)
	}
}

func TestEdit_BreakInsideAnchorDissolves(t *testing.T) {
	doc, e, rec, a := linked(t, "[ab]", Options{})
	doc.SetCaret(dom.Point{Node: a.FirstChild(), Offset: 2})

	if err := doc.InsertLineBreak(); err != nil {
		t.Fatalf("line break: %v", err)
	}
	e.Input()

	if got, want := doc.Markup(), "[a<br/>b]"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
	if got := rec.count(EventEntityUnlinked); got != 1 {
		t.Fatalf("unlinked=%d, want 1", got)
	}
	assertSettled(t, doc)
}

func TestSplit_DissolvesBothHalves(t *testing.T) {
	doc, e, rec, a := linked(t, "[Alice]", Options{})
	doc.SetCaret(dom.Point{Node: a.FirstChild(), Offset: 3})

	if err := doc.InsertParagraph(); err != nil {
		t.Fatalf("paragraph: %v", err)
	}
	e.Input()

	if got, want := doc.Markup(), "[Al<br/>ice]"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
	if got := rec.texts(EventEntityUnlinked); len(got) != 1 || got[0] != "Alice" {
		t.Fatalf("unlinked=%v, want [Alice]", got)
	}
	if got := rec.count(EventEntityLinked) + rec.count(EventEntityEdited); got != 0 {
		t.Fatalf("linked+edited=%d, want 0", got)
	}
	if len(e.Entities()) != 0 {
		t.Fatalf("entities=%v, want none", e.Entities())
	}
	if got, want := caretOffset(t, doc), 4; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	assertSettled(t, doc)
}

// Replacing one anchor with two in a single batch has the same shape as a
// split, so the pasted anchors are dissolved too. The scanner then links
// their text again as new entities.
func TestSplit_PasteOfTwoAnchorsLooksLikeSplit(t *testing.T) {
	doc, e, rec, old := linked(t, "[X]", Options{})

	var pasted []*dom.Node
	for _, text := range []string{"[A]", "[B]"} {
		a := dom.NewElement(dom.TagAnchor)
		a.AddClass(DefaultClass)
		if err := doc.AppendChild(a, dom.NewText(text)); err != nil {
			t.Fatalf("build: %v", err)
		}
		if err := doc.InsertBefore(doc.Root(), a, old); err != nil {
			t.Fatalf("insert: %v", err)
		}
		pasted = append(pasted, a)
	}
	if err := doc.Remove(old); err != nil {
		t.Fatalf("remove: %v", err)
	}
	e.Input()

	if got := rec.texts(EventEntityUnlinked); len(got) != 1 || got[0] != "X" {
		t.Fatalf("unlinked=%v, want [X]", got)
	}
	for _, a := range pasted {
		if a.Parent() != nil {
			t.Fatalf("pasted anchor %q survived", a.TextContent())
		}
	}
	if got := rec.count(EventEntityLinked); got != 2 {
		t.Fatalf("relinked=%d, want 2", got)
	}
	if got := len(anchors(doc)); got != 2 {
		t.Fatalf("anchors=%d, want 2", got)
	}
	assertSettled(t, doc)
}

func TestRemoval_ExternalRemoveUnlinksOnce(t *testing.T) {
	doc, e, rec, a := linked(t, "hi [Bob]", Options{})

	if err := doc.Remove(a); err != nil {
		t.Fatalf("remove: %v", err)
	}
	e.Input()
	e.Input()

	if got := rec.texts(EventEntityUnlinked); len(got) != 1 || got[0] != "Bob" {
		t.Fatalf("unlinked=%v, want [Bob]", got)
	}
	if got := rec.events[0].Anchor; got != a {
		t.Fatalf("unlinked anchor=%p, want %p", got, a)
	}
	if len(e.Entities()) != 0 {
		t.Fatalf("entities=%v, want none", e.Entities())
	}
}

func TestRemoval_MovedAnchorIsNotUnlinked(t *testing.T) {
	doc, e, rec, a := linked(t, "x [Bob] y", Options{})

	if err := doc.AppendChild(doc.Root(), a); err != nil {
		t.Fatalf("move: %v", err)
	}
	e.Input()

	if got := rec.count(EventEntityUnlinked); got != 0 {
		t.Fatalf("unlinked=%d, want 0", got)
	}
	if len(e.Entities()) != 1 {
		t.Fatalf("entities=%v, want one", e.Entities())
	}
}

func TestPrune_EmptiedAnchorIsRemoved(t *testing.T) {
	doc, e, rec, a := linked(t, "x[Bob]", Options{})
	text := a.FirstChild()
	doc.SetRange(dom.Range{
		Anchor: dom.Point{Node: text, Offset: 0},
		Focus:  dom.Point{Node: text, Offset: 5},
	})

	if err := doc.DeleteSelection(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	e.Input()

	if got, want := doc.Markup(), "x"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}
	if got := rec.count(EventEntityUnlinked); got != 1 {
		t.Fatalf("unlinked=%d, want 1", got)
	}
	assertSettled(t, doc)
}

func TestPrune_UntrackedEmptyAnchorAndLoneBreak(t *testing.T) {
	doc, e, _ := attachMarkup(t, `<a href="#"></a>x`, Options{})
	e.Input()
	if got, want := doc.Markup(), "x"; got != want {
		t.Fatalf("markup=%q, want %q", got, want)
	}

	_, e, _ = attachMarkup(t, `<br>`, Options{})
	e.Input()
	if got := e.Value(); got != "" {
		t.Fatalf("value=%q, want empty", got)
	}
}

func TestValidate_DetachedAnchor(t *testing.T) {
	_, e, _ := attachText(t, "", Options{})
	if got := e.Validate(nil); got != Detached {
		t.Fatalf("Validate(nil)=%v, want %v", got, Detached)
	}
	if got := e.Validate(dom.NewElement(dom.TagAnchor)); got != Detached {
		t.Fatalf("Validate(detached)=%v, want %v", got, Detached)
	}
}

func TestValidate_Direct(t *testing.T) {
	doc, e, rec, a := linked(t, "[Bob]", Options{})

	if got := e.Validate(a); got != Valid {
		t.Fatalf("Validate=%v, want %v", got, Valid)
	}
	if got := rec.count(EventEntityEdited); got != 0 {
		t.Fatalf("edited with unchanged text=%d, want 0", got)
	}

	if err := doc.SetData(a.FirstChild(), "[Bobby]"); err != nil {
		t.Fatalf("set data: %v", err)
	}
	if got := e.Validate(a); got != Valid {
		t.Fatalf("Validate=%v, want %v", got, Valid)
	}
	if got := rec.texts(EventEntityEdited); len(got) != 1 || got[0] != "Bobby" {
		t.Fatalf("edited=%v, want [Bobby]", got)
	}

	if err := doc.SetData(a.FirstChild(), "Bob"); err != nil {
		t.Fatalf("set data: %v", err)
	}
	if got := e.Validate(a); got != Dissolved {
		t.Fatalf("Validate=%v, want %v", got, Dissolved)
	}
	if a.Parent() != nil {
		t.Fatalf("dissolved anchor still attached")
	}
	if got := Dissolved.String(); got != "dissolved" {
		t.Fatalf("String()=%q, want dissolved", got)
	}
}

// A scan parks the cursor placeholder inside the entity under the caret.
// The records it leaves behind must not read as an edit.
func TestScan_CaretInsideEntityIsNotAnEdit(t *testing.T) {
	doc, e, rec := attachMarkup(t, `<a class="ee-entity" href="#">[Bob]</a> and [Al]`, Options{})
	bob := anchors(doc)[0]
	doc.SetCaret(dom.Point{Node: bob.FirstChild(), Offset: 2})
	rec.reset()

	e.Input()

	if got := rec.count(EventEntityEdited); got != 0 {
		t.Fatalf("edited=%d, want 0", got)
	}
	if got := rec.texts(EventEntityLinked); len(got) != 1 || got[0] != "Al" {
		t.Fatalf("linked=%v, want [Al]", got)
	}
	if got := rec.events[len(rec.events)-1].Kind; got != EventContentChanged {
		t.Fatalf("last event=%v, want %v", got, EventContentChanged)
	}
	if got, want := caretOffset(t, doc), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if ents := e.Entities(); len(ents) != 2 || ents[0].Text != "Bob" {
		t.Fatalf("entities=%v, want Bob then Al", ents)
	}
	assertSettled(t, doc)
}
