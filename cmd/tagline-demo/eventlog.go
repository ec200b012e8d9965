package main

import (
	"io"

	"github.com/tidwall/sjson"

	"github.com/iw2rmb/tagline/editor"
)

// eventLog writes one JSON object per widget event.
type eventLog struct {
	w   io.Writer
	seq int
}

func (l *eventLog) handle(ev editor.Event) {
	if l == nil || l.w == nil {
		return
	}
	l.seq++
	line, err := encodeEvent(l.seq, ev)
	if err != nil {
		return
	}
	_, _ = l.w.Write(append(line, '\n'))
}

func encodeEvent(seq int, ev editor.Event) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "seq", seq)
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "kind", ev.Kind.String()); err != nil {
		return nil, err
	}
	if ev.Anchor == nil {
		return out, nil
	}
	return sjson.SetBytes(out, "entity", ev.Text)
}
