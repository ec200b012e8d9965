package dom

import "strings"

// The operations below stand in for the browser's native editing: they act
// at the caret and produce the same mutation records a user edit would.

// InsertText types s at the caret, replacing a non-collapsed selection.
// Newlines become breaks.
func (d *Document) InsertText(s string) error {
	r, ok := d.Selection()
	if !ok {
		return ErrNoSelection
	}
	if !r.IsCollapsed() {
		if err := d.DeleteSelection(); err != nil {
			return err
		}
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			if err := d.InsertLineBreak(); err != nil {
				return err
			}
		}
		if part == "" {
			continue
		}
		t, off, err := d.textAtCaret()
		if err != nil {
			return err
		}
		if err := d.ReplaceData(t, off, 0, part); err != nil {
			return err
		}
		d.SetCaret(Point{Node: t, Offset: off + len([]rune(part))})
	}
	return nil
}

// InsertRune types a single rune at the caret.
func (d *Document) InsertRune(r rune) error {
	return d.InsertText(string(r))
}

// DeleteBackward applies backspace semantics.
func (d *Document) DeleteBackward() error {
	r, ok := d.Selection()
	if !ok {
		return ErrNoSelection
	}
	if !r.IsCollapsed() {
		return d.DeleteSelection()
	}

	k := d.TextOffset(r.Focus)
	if k == 0 {
		return nil
	}
	ref, ok := d.charAt(k - 1)
	if !ok {
		return nil
	}
	if err := d.deleteChar(ref); err != nil {
		return err
	}
	if ref.offset >= 0 {
		d.SetCaret(Point{Node: ref.node, Offset: ref.offset})
	}
	return nil
}

// DeleteForward applies delete-key semantics.
func (d *Document) DeleteForward() error {
	r, ok := d.Selection()
	if !ok {
		return ErrNoSelection
	}
	if !r.IsCollapsed() {
		return d.DeleteSelection()
	}

	ref, ok := d.charAt(d.TextOffset(r.Focus))
	if !ok {
		return nil
	}
	return d.deleteChar(ref)
}

// DeleteSelection deletes the selected characters, if any, and collapses the
// caret to where they started.
func (d *Document) DeleteSelection() error {
	r, ok := d.Selection()
	if !ok {
		return ErrNoSelection
	}
	k0 := d.TextOffset(r.Anchor)
	k1 := d.TextOffset(r.Focus)
	if k0 > k1 {
		k0, k1 = k1, k0
	}
	for k := k1 - 1; k >= k0; k-- {
		ref, ok := d.charAt(k)
		if !ok {
			continue
		}
		if err := d.deleteChar(ref); err != nil {
			return err
		}
	}
	d.SetCaret(d.PointAtOffset(k0))
	return nil
}

// InsertLineBreak inserts a break at the caret. Inside an anchor the break
// lands inside the anchor.
func (d *Document) InsertLineBreak() error {
	r, ok := d.Selection()
	if !ok {
		return ErrNoSelection
	}
	if !r.IsCollapsed() {
		if err := d.DeleteSelection(); err != nil {
			return err
		}
	}
	p, _ := d.Caret()

	br := NewElement(TagBreak)
	var err error
	switch {
	case p.Node.typ == TextNode:
		parent := p.Node.parent
		switch {
		case p.Offset == 0:
			err = d.InsertBefore(parent, br, p.Node)
		case p.Offset >= len(p.Node.data):
			err = d.InsertBefore(parent, br, p.Node.NextSibling())
		default:
			var tail *Node
			if tail, err = d.SplitText(p.Node, p.Offset); err == nil {
				err = d.InsertBefore(parent, br, tail)
			}
		}
	case p.Node.IsBreak():
		err = d.InsertBefore(p.Node.parent, br, p.Node)
	default:
		err = d.InsertNodeAt(p, br)
	}
	if err != nil {
		return err
	}
	d.CollapseAfter(br)
	return nil
}

// InsertParagraph splits the block at the caret. With the caret inside an
// anchor, the anchor is replaced by two copies holding the text before and
// after the caret, separated by a break.
func (d *Document) InsertParagraph() error {
	p, ok := d.Caret()
	if !ok {
		return ErrNoSelection
	}
	a := EnclosingAnchor(p.Node)
	if a == nil || a.parent == nil {
		return d.InsertLineBreak()
	}

	text := []rune(a.TextContent())
	k := d.TextOffset(p) - d.TextOffset(Point{Node: a, Offset: 0})
	k = clampInt(k, 0, len(text))

	left := a.CloneShallow()
	d.insert(left, NewText(string(text[:k])), 0)
	right := a.CloneShallow()
	rightText := NewText(string(text[k:]))
	d.insert(right, rightText, 0)

	parent := a.parent
	for _, n := range []*Node{left, NewElement(TagBreak), right} {
		if err := d.InsertBefore(parent, n, a); err != nil {
			return err
		}
	}
	if err := d.Remove(a); err != nil {
		return err
	}
	d.SetCaret(Point{Node: rightText, Offset: 0})
	return nil
}

// EnclosingAnchor returns the anchor n is, or sits directly inside.
func EnclosingAnchor(n *Node) *Node {
	switch {
	case n == nil:
		return nil
	case n.IsAnchor():
		return n
	case n.parent != nil && n.parent.IsAnchor():
		return n.parent
	default:
		return nil
	}
}

func (d *Document) deleteChar(ref charRef) error {
	if ref.offset < 0 {
		return d.Remove(ref.node)
	}
	return d.ReplaceData(ref.node, ref.offset, 1, "")
}

// textAtCaret resolves the caret to a text node and offset, creating an
// empty text node when the caret sits between elements. A preceding anchor
// is never extended by text typed after it.
func (d *Document) textAtCaret() (*Node, int, error) {
	p, ok := d.Caret()
	if !ok {
		return nil, 0, ErrNoSelection
	}
	if p.Node.typ == TextNode {
		return p.Node, p.Offset, nil
	}

	parent, i := p.Node, p.Offset
	if parent.IsBreak() {
		parent, i = p.Node.parent, p.Node.Index()
	}
	if i > 0 && parent.children[i-1].typ == TextNode {
		prev := parent.children[i-1]
		return prev, len(prev.data), nil
	}
	if i < len(parent.children) && parent.children[i].typ == TextNode {
		return parent.children[i], 0, nil
	}

	t := NewText("")
	d.insert(parent, t, i)
	return t, 0, nil
}
