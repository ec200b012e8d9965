package dom

// Point addresses a position in the tree: a rune offset inside a text node or
// a child index inside an element.
type Point struct {
	Node   *Node
	Offset int
}

// Range spans from Anchor (where the selection started) to Focus (where the
// caret is). The two may be in either document order.
type Range struct {
	Anchor Point
	Focus  Point
}

func (r Range) IsCollapsed() bool {
	return r.Anchor == r.Focus
}

type selectionState struct {
	active bool
	anchor Point
	focus  Point
}

// Selection returns the live selection, if any.
func (d *Document) Selection() (Range, bool) {
	if !d.sel.active {
		return Range{}, false
	}
	return Range{Anchor: d.sel.anchor, Focus: d.sel.focus}, true
}

// Caret returns the selection focus.
func (d *Document) Caret() (Point, bool) {
	if !d.sel.active {
		return Point{}, false
	}
	return d.sel.focus, true
}

// SetCaret collapses the selection to p. Points outside the tree clear it.
func (d *Document) SetCaret(p Point) {
	d.SetRange(Range{Anchor: p, Focus: p})
}

// SetRange replaces the selection, clamping offsets into node bounds.
func (d *Document) SetRange(r Range) {
	a, okA := d.clampPoint(r.Anchor)
	f, okF := d.clampPoint(r.Focus)
	if !okA || !okF {
		d.ClearSelection()
		return
	}
	next := selectionState{active: true, anchor: a, focus: f}
	if next == d.sel {
		return
	}
	d.sel = next
	d.version++
}

func (d *Document) ClearSelection() {
	if !d.sel.active {
		return
	}
	d.sel = selectionState{}
	d.version++
}

// CollapseBefore places the caret immediately before n in its parent.
func (d *Document) CollapseBefore(n *Node) {
	if n.parent == nil {
		return
	}
	d.SetCaret(Point{Node: n.parent, Offset: n.Index()})
}

// CollapseAfter places the caret immediately after n in its parent.
func (d *Document) CollapseAfter(n *Node) {
	if n.parent == nil {
		return
	}
	d.SetCaret(Point{Node: n.parent, Offset: n.Index() + 1})
}

// InsertNodeAt inserts n at p with Range.insertNode semantics: a text point is
// split first, even at its edges, and n goes between the halves.
func (d *Document) InsertNodeAt(p Point, n *Node) error {
	if p.Node == nil || !d.root.Contains(p.Node) {
		return ErrDetached
	}
	if p.Node.typ == TextNode {
		if p.Node.parent == nil {
			return ErrHierarchy
		}
		tail, err := d.SplitText(p.Node, p.Offset)
		if err != nil {
			return err
		}
		return d.InsertBefore(tail.parent, n, tail)
	}
	if p.Offset < 0 || p.Offset > len(p.Node.children) {
		return ErrOffset
	}
	var ref *Node
	if p.Offset < len(p.Node.children) {
		ref = p.Node.children[p.Offset]
	}
	return d.InsertBefore(p.Node, n, ref)
}

func (d *Document) clampPoint(p Point) (Point, bool) {
	if p.Node == nil || !d.root.Contains(p.Node) {
		return Point{}, false
	}
	p.Offset = clampInt(p.Offset, 0, p.Node.Len())
	return p, true
}

// The adjust* helpers keep the selection live across tree mutations, using
// the same rules browsers apply to live ranges.

func (d *Document) adjustPoints(fn func(p Point) Point) {
	if !d.sel.active {
		return
	}
	d.sel.anchor = fn(d.sel.anchor)
	d.sel.focus = fn(d.sel.focus)
}

func (d *Document) adjustForInsert(parent *Node, index int) {
	d.adjustPoints(func(p Point) Point {
		if p.Node == parent && p.Offset > index {
			p.Offset++
		}
		return p
	})
}

func (d *Document) adjustForRemove(parent, child *Node, index int) {
	d.adjustPoints(func(p Point) Point {
		if child.Contains(p.Node) {
			return Point{Node: parent, Offset: index}
		}
		if p.Node == parent && p.Offset > index {
			p.Offset--
		}
		return p
	})
}

func (d *Document) adjustForReplaceData(n *Node, offset, count, inserted int) {
	d.adjustPoints(func(p Point) Point {
		if p.Node != n {
			return p
		}
		switch {
		case p.Offset > offset+count:
			p.Offset += inserted - count
		case p.Offset > offset:
			p.Offset = offset
		}
		return p
	})
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
