package editor

import (
	"strings"

	"github.com/iw2rmb/tagline/dom"
)

const (
	openDelim  = "["
	closeDelim = "]"
)

// Entity is the host-facing record of a live anchor. Two entities are the
// same when they share an anchor, whatever their text.
type Entity struct {
	Anchor *dom.Node
	// Text is the anchor text without delimiters.
	Text string
}

// Entities returns the live entities in creation order.
func (e *Editor) Entities() []Entity {
	return append([]Entity(nil), e.entities...)
}

func (e *Editor) track(anchor *dom.Node, text string) {
	if e.observer != nil {
		e.observer.Observe(anchor, dom.ObserveOptions{ChildList: true, CharacterData: true, Subtree: true})
	}
	e.entities = append(e.entities, Entity{Anchor: anchor, Text: text})
}

func (e *Editor) retire(anchor *dom.Node) (Entity, bool) {
	i := e.entityIndex(anchor)
	if i < 0 {
		return Entity{}, false
	}
	ent := e.entities[i]
	e.entities = append(e.entities[:i], e.entities[i+1:]...)
	if e.observer != nil {
		e.observer.Unobserve(anchor)
	}
	return ent, true
}

func (e *Editor) entityIndex(anchor *dom.Node) int {
	for i, ent := range e.entities {
		if ent.Anchor == anchor {
			return i
		}
	}
	return -1
}

func hasDelimiters(text string) bool {
	return strings.HasPrefix(text, openDelim) && strings.HasSuffix(text, closeDelim)
}

func stripDelimiters(text string) string {
	r := []rune(text)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}
