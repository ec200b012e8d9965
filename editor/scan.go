package editor

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/iw2rmb/tagline/dom"
)

// entityPattern matches "[", 1..max characters that are neither "]" nor a
// break marker, then "]".
func entityPattern(max int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`\[([^\]<\n]{1,%d})\]`, max))
}

// match is one pattern hit in rune offsets of its text run.
type match struct {
	start, end int
	text       string
}

// Scan converts bracket matches in the surface's plain text runs into
// anchors and returns how many entities it linked. Each run is matched on
// its own; a span split across runs is not detected.
func (e *Editor) Scan() int {
	if e.observer == nil {
		return 0
	}
	root := e.doc.Root()
	e.doc.Normalize(root)

	if !e.needsScan() {
		return 0
	}

	// The placeholder splits the run under the caret, so runs are listed
	// only after it is in place.
	tok := e.saveCursor()
	linked := 0
	for _, n := range root.Children() {
		if n.IsText() {
			linked += e.scanRun(n)
		}
	}
	e.restoreCursor(tok)
	e.doc.Normalize(root)

	e.log.Debug("scan", "linked", linked, "entities", len(e.entities))
	return linked
}

func (e *Editor) needsScan() bool {
	for _, n := range e.doc.Root().Children() {
		if n.IsText() && e.pattern.MatchString(n.Data()) {
			return true
		}
	}
	return false
}

// scanRun wraps matches right to left so earlier offsets stay valid.
func (e *Editor) scanRun(n *dom.Node) int {
	ms := e.findMatches(n.Data())
	for i := len(ms) - 1; i >= 0; i-- {
		m := ms[i]
		wrap, err := e.doc.SplitText(n, m.start)
		if err != nil {
			e.log.Debug("scan split", "err", err)
			return len(ms) - 1 - i
		}
		if _, err := e.doc.SplitText(wrap, m.end-m.start); err != nil {
			e.log.Debug("scan split", "err", err)
			return len(ms) - 1 - i
		}

		anchor := dom.NewElement(dom.TagAnchor)
		anchor.AddClass(e.opt.Class)
		anchor.SetAttr("href", "#")
		if err := e.doc.Wrap(wrap, anchor); err != nil {
			e.log.Debug("scan wrap", "err", err)
			return len(ms) - 1 - i
		}

		e.track(anchor, m.text)
		e.emit(Event{Kind: EventEntityLinked, Anchor: anchor, Text: m.text})
	}
	return len(ms)
}

func (e *Editor) findMatches(s string) []match {
	idx := e.pattern.FindAllStringSubmatchIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]match, 0, len(idx))
	for _, loc := range idx {
		out = append(out, match{
			start: utf8.RuneCountInString(s[:loc[0]]),
			end:   utf8.RuneCountInString(s[:loc[1]]),
			text:  s[loc[2]:loc[3]],
		})
	}
	return out
}
