package dom

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the selection anchor; if false collapses
}

// Move moves the caret by flattened characters. Breaks count as one
// character and delimit lines.
func (d *Document) Move(m Move) {
	r, ok := d.Selection()
	if !ok {
		return
	}

	k := d.TextOffset(r.Focus)
	next := d.moveOffset(k, m)
	focus := r.Focus
	if next != k {
		focus = d.PointAtOffset(next)
	}

	if m.Extend {
		d.SetRange(Range{Anchor: r.Anchor, Focus: focus})
		return
	}
	d.SetCaret(focus)
}

func (d *Document) moveOffset(k int, m Move) int {
	text := []rune(d.Text())
	switch m.Unit {
	case MoveChar:
		switch m.Dir {
		case DirLeft:
			return clampInt(k-1, 0, len(text))
		case DirRight:
			return clampInt(k+1, 0, len(text))
		}
	case MoveLine:
		switch m.Dir {
		case DirHome:
			for k > 0 && text[k-1] != '\n' {
				k--
			}
			return k
		case DirEnd:
			for k < len(text) && text[k] != '\n' {
				k++
			}
			return k
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome:
			return 0
		case DirEnd:
			return len(text)
		}
	}
	return k
}
