package editor

import (
	"encoding/binary"
	"hash/fnv"
)

// SnapshotToken identifies a Model state; equal tokens mean nothing a host
// could observe has changed.
type SnapshotToken uint64

// Snapshot is a read-only view of the Model for hosts that render their own
// chrome around it.
type Snapshot struct {
	Token   SnapshotToken
	Version uint64

	// Value is the trimmed surface markup.
	Value string
	// Text is the flattened surface text with breaks as '\n'.
	Text string

	// Caret is a flattened offset.
	Caret int

	// SelectionStart == SelectionEnd when nothing is selected.
	SelectionStart, SelectionEnd int

	Entities []Entity
	Focused  bool
	YOffset  int
}

func (m Model) Snapshot() Snapshot {
	s := Snapshot{
		Version:  m.doc.Version(),
		Value:    m.ed.Value(),
		Text:     m.doc.Text(),
		Entities: m.ed.Entities(),
		Focused:  m.focused,
		YOffset:  m.viewport.YOffset,
	}
	if r, ok := m.doc.Selection(); ok {
		a, f := m.doc.TextOffset(r.Anchor), m.doc.TextOffset(r.Focus)
		s.Caret = f
		s.SelectionStart, s.SelectionEnd = min(a, f), max(a, f)
	}
	s.Token = snapshotToken(s)
	return s
}

func snapshotToken(s Snapshot) SnapshotToken {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	put(s.Version)
	put(uint64(s.Caret))
	put(uint64(s.SelectionStart))
	put(uint64(s.SelectionEnd))
	put(uint64(s.YOffset))
	if s.Focused {
		put(1)
	} else {
		put(0)
	}
	// Entity text can change without the anchor set changing.
	for _, ent := range s.Entities {
		_, _ = h.Write([]byte(ent.Text))
		_, _ = h.Write([]byte{0})
	}
	return SnapshotToken(h.Sum64())
}
