package editor

import "github.com/iw2rmb/tagline/dom"

// EventKind identifies an Event variant.
type EventKind uint8

const (
	// EventInit fires once the editor is attached and observing.
	EventInit EventKind = iota
	// EventContentChanged fires when the surface settles after an input pass.
	EventContentChanged
	// EventEntityLinked fires when the scanner creates an entity.
	EventEntityLinked
	// EventEntityEdited fires when an entity's text changed but stays valid.
	EventEntityEdited
	// EventEntityUnlinked fires when an entity was removed or dissolved.
	EventEntityUnlinked
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventContentChanged:
		return "content-changed"
	case EventEntityLinked:
		return "entity-linked"
	case EventEntityEdited:
		return "entity-edited"
	case EventEntityUnlinked:
		return "entity-unlinked"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification.
//
// Anchor is set for the entity events. Text is the delimiter-stripped entity
// text for EventEntityLinked and EventEntityEdited, and the last known text
// for EventEntityUnlinked.
type Event struct {
	Kind   EventKind
	Anchor *dom.Node
	Text   string
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for all events and returns a func that removes it.
func (e *Editor) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	e.nextSubID++
	id := e.nextSubID
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Editor) emit(ev Event) {
	for _, s := range append([]subscriber(nil), e.subs...) {
		s.fn(ev)
	}
}
