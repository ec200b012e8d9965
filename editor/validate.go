package editor

import "github.com/iw2rmb/tagline/dom"

// Result is the outcome of validating an anchor.
type Result uint8

const (
	// Detached means the anchor is no longer on the surface; nothing was done.
	Detached Result = iota
	// Valid means the anchor still holds an entity.
	Valid
	// Dissolved means the anchor was unwrapped back into plain text.
	Dissolved
)

func (r Result) String() string {
	switch r {
	case Detached:
		return "detached"
	case Valid:
		return "valid"
	case Dissolved:
		return "dissolved"
	default:
		return "unknown"
	}
}

// Validate re-checks an anchor whose text changed. An anchor that lost a
// delimiter or holds a break is dissolved; otherwise its entity text is
// refreshed and EventEntityEdited fires when that text differs.
func (e *Editor) Validate(anchor *dom.Node) Result {
	if anchor == nil || !e.doc.Root().Contains(anchor) {
		return Detached
	}

	text := anchor.TextContent()
	if !hasDelimiters(text) || anchor.ContainsBreak() {
		e.dissolve(anchor)
		return Dissolved
	}

	// Records from the cursor placeholder passing through leave the text
	// as it was; only a real change is reported.
	stripped := stripDelimiters(text)
	i := e.entityIndex(anchor)
	if i < 0 || e.entities[i].Text == stripped {
		return Valid
	}
	e.entities[i].Text = stripped
	e.emit(Event{Kind: EventEntityEdited, Anchor: anchor, Text: stripped})
	return Valid
}

// dissolve replaces anchor with its children, keeping the caret in place.
// The removal is reported when the resulting batch is delivered.
func (e *Editor) dissolve(anchor *dom.Node) {
	if anchor.Parent() == nil {
		return
	}
	text := anchor.TextContent()
	tok := e.saveCursor()
	if err := e.doc.Unwrap(anchor); err != nil {
		e.log.Debug("dissolve", "err", err)
	}
	e.restoreCursor(tok)
	e.doc.Normalize(e.doc.Root())
	e.log.Debug("anchor dissolved", "text", text)
}
