package editor

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/iw2rmb/tagline/dom"
)

// Editor is the entity widget bound to one surface.
//
// All methods must be called from the goroutine that owns the document; the
// widget processes one event at a time and never re-enters itself.
type Editor struct {
	doc *dom.Document
	opt Options
	log *slog.Logger

	pattern  *regexp.Regexp
	observer *dom.Observer
	entities []Entity

	// placeholder is the single cursor marker reused by every save.
	placeholder *dom.Node
	markActive  bool

	// zeroWidth is the pending guard character stripped on the next batch.
	zeroWidth        *dom.Node
	normalizeOnKeyUp bool

	subs      []subscriber
	nextSubID int
}

// Attach binds a new Editor to doc and fires EventInit.
//
// Anchors already on the surface that carry the entity class and valid
// delimiters are adopted as entities without a link notification.
func Attach(doc *dom.Document, opt Options) *Editor {
	opt = opt.withDefaults()
	e := &Editor{
		doc:         doc,
		opt:         opt,
		log:         opt.Logger,
		pattern:     entityPattern(opt.MaxEntityLen),
		placeholder: dom.NewElement(dom.TagSpan),
	}
	if opt.OnEvent != nil {
		e.Subscribe(opt.OnEvent)
	}

	e.observer = doc.NewObserver(e.onMutations)
	e.observer.Observe(doc.Root(), dom.ObserveOptions{ChildList: true})

	for _, n := range doc.Root().Children() {
		if !n.IsAnchor() || !n.HasClass(opt.Class) {
			continue
		}
		if text := n.TextContent(); hasDelimiters(text) && !n.ContainsBreak() {
			e.track(n, stripDelimiters(text))
		}
	}

	e.emit(Event{Kind: EventInit})
	return e
}

// Detach stops observing the surface and drops all subscribers.
func (e *Editor) Detach() {
	if e.observer != nil {
		e.observer.Disconnect()
		e.observer = nil
	}
	e.subs = nil
}

func (e *Editor) Document() *dom.Document { return e.doc }

// Value returns the trimmed surface markup.
func (e *Editor) Value() string {
	return strings.TrimSpace(e.doc.Markup())
}

// Input runs one processing pass after a content change. When it returns the
// surface is settled and EventContentChanged has fired.
// After Detach it does nothing.
func (e *Editor) Input() {
	if e.observer == nil {
		return
	}
	e.doc.Flush()
	if e.pruneEmpty() {
		e.doc.Flush()
	}
	e.Scan()
	e.doc.Flush()
	e.emit(Event{Kind: EventContentChanged})
}

// KeyUp finishes a keystroke: after the Boundary Guard moved the caret the
// surface is normalized once.
func (e *Editor) KeyUp() {
	if !e.normalizeOnKeyUp {
		return
	}
	e.normalizeOnKeyUp = false
	e.doc.Normalize(e.doc.Root())
}

// pruneEmpty removes anchors without text and clears a surface that holds a
// lone break. It reports whether anything was removed.
func (e *Editor) pruneEmpty() bool {
	root := e.doc.Root()
	kids := root.Children()
	if len(kids) == 1 && kids[0].IsBreak() {
		return e.doc.Remove(kids[0]) == nil
	}

	removed := false
	for _, n := range kids {
		if !n.IsAnchor() || n.TextContent() != "" {
			continue
		}
		if err := e.doc.Remove(n); err != nil {
			e.log.Debug("prune empty anchor", "err", err)
			continue
		}
		removed = true
	}
	return removed
}
