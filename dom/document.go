package dom

import "fmt"

// Document is the editable surface: a root element, the live selection, and
// the observers watching it.
//
// Every effective mutation bumps Version and is reported to interested
// observers as a MutationRecord.
type Document struct {
	root    *Node
	version uint64

	sel selectionState

	observers []*Observer
}

func New() *Document {
	return &Document{root: NewElement(TagRoot)}
}

// NewWithText returns a surface holding a single text run.
func NewWithText(text string) *Document {
	d := New()
	if text != "" {
		d.insert(d.root, NewText(text), 0)
	}
	return d
}

func (d *Document) Root() *Node { return d.root }

func (d *Document) Version() uint64 { return d.version }

// AppendChild appends n as the last child of parent.
func (d *Document) AppendChild(parent, n *Node) error {
	return d.InsertBefore(parent, n, nil)
}

// InsertBefore inserts n into parent before ref, or at the end when ref is
// nil. A node that already has a parent is moved.
func (d *Document) InsertBefore(parent, n, ref *Node) error {
	if parent == nil || n == nil {
		return ErrHierarchy
	}
	if parent.typ != ElementNode {
		return fmt.Errorf("insert into %q: %w", parent.Data(), ErrNotElement)
	}
	if n == d.root || n.Contains(parent) {
		return ErrHierarchy
	}
	if ref != nil && ref.parent != parent {
		return ErrNotChild
	}
	if ref == n {
		ref = n.NextSibling()
	}
	if n.parent != nil {
		d.removeChild(n)
	}

	index := len(parent.children)
	if ref != nil {
		index = parent.childIndex(ref)
	}
	d.insert(parent, n, index)
	return nil
}

// InsertAfter inserts n immediately after ref.
func (d *Document) InsertAfter(n, ref *Node) error {
	if ref == nil || ref.parent == nil {
		return ErrDetached
	}
	return d.InsertBefore(ref.parent, n, ref.NextSibling())
}

// Remove detaches n from its parent.
func (d *Document) Remove(n *Node) error {
	if n == nil || n.parent == nil {
		return ErrDetached
	}
	d.removeChild(n)
	return nil
}

// ReplaceData replaces count runes at offset in text node n with s.
func (d *Document) ReplaceData(n *Node, offset, count int, s string) error {
	if n == nil || n.typ != TextNode {
		return ErrNotText
	}
	if offset < 0 || offset > len(n.data) {
		return fmt.Errorf("replace at %d of %d: %w", offset, len(n.data), ErrOffset)
	}
	count = clampInt(count, 0, len(n.data)-offset)
	ins := []rune(s)
	if count == 0 && len(ins) == 0 {
		return nil
	}

	old := string(n.data)
	next := make([]rune, 0, len(n.data)-count+len(ins))
	next = append(next, n.data[:offset]...)
	next = append(next, ins...)
	next = append(next, n.data[offset+count:]...)
	n.data = next

	d.adjustForReplaceData(n, offset, count, len(ins))
	d.version++
	d.record(MutationRecord{Type: CharacterData, Target: n, OldValue: old})
	return nil
}

// SetData replaces the whole text of n.
func (d *Document) SetData(n *Node, s string) error {
	if n == nil || n.typ != TextNode {
		return ErrNotText
	}
	return d.ReplaceData(n, 0, len(n.data), s)
}

// SplitText splits n at offset and returns the new node holding the tail.
// The tail is inserted right after n when n has a parent.
func (d *Document) SplitText(n *Node, offset int) (*Node, error) {
	if n == nil || n.typ != TextNode {
		return nil, ErrNotText
	}
	if offset < 0 || offset > len(n.data) {
		return nil, fmt.Errorf("split at %d of %d: %w", offset, len(n.data), ErrOffset)
	}

	tail := NewText(string(n.data[offset:]))
	if parent := n.parent; parent != nil {
		index := n.Index()
		d.insert(parent, tail, index+1)
		d.adjustPoints(func(p Point) Point {
			if p.Node == parent && p.Offset == index+1 {
				p.Offset++
			}
			return p
		})
	}
	d.adjustPoints(func(p Point) Point {
		if p.Node == n && p.Offset > offset {
			return Point{Node: tail, Offset: p.Offset - offset}
		}
		return p
	})
	if err := d.ReplaceData(n, offset, len(n.data)-offset, ""); err != nil {
		return nil, err
	}
	return tail, nil
}

// Normalize removes empty text nodes below n and merges adjacent ones.
func (d *Document) Normalize(n *Node) {
	var texts []*Node
	for _, c := range n.children {
		c.walk(func(x *Node) bool {
			if x.typ == TextNode {
				texts = append(texts, x)
			}
			return true
		})
	}

	for _, t := range texts {
		if t.parent == nil {
			continue
		}
		if len(t.data) == 0 {
			d.removeChild(t)
			continue
		}

		parent := t.parent
		var run []*Node
		for cur := t.NextSibling(); cur != nil && cur.typ == TextNode; cur = cur.NextSibling() {
			run = append(run, cur)
		}
		if len(run) == 0 {
			continue
		}

		var tail []rune
		for _, cur := range run {
			tail = append(tail, cur.data...)
		}
		length := len(t.data)
		if len(tail) > 0 {
			_ = d.ReplaceData(t, length, 0, string(tail))
		}
		for _, cur := range run {
			idx := cur.Index()
			base := length
			d.adjustPoints(func(p Point) Point {
				if p.Node == cur {
					return Point{Node: t, Offset: base + p.Offset}
				}
				if p.Node == parent && p.Offset == idx {
					return Point{Node: t, Offset: base}
				}
				return p
			})
			length += len(cur.data)
		}
		for _, cur := range run {
			d.removeChild(cur)
		}
	}
}

// Wrap replaces n with wrapper and moves n inside it.
func (d *Document) Wrap(n, wrapper *Node) error {
	if n == nil || n.parent == nil {
		return ErrDetached
	}
	if err := d.InsertBefore(n.parent, wrapper, n); err != nil {
		return err
	}
	return d.AppendChild(wrapper, n)
}

// Unwrap replaces n with its children.
func (d *Document) Unwrap(n *Node) error {
	if n == nil || n.parent == nil {
		return ErrDetached
	}
	parent := n.parent
	for len(n.children) > 0 {
		if err := d.InsertBefore(parent, n.children[0], n); err != nil {
			return err
		}
	}
	return d.Remove(n)
}

func (d *Document) insert(parent, n *Node, index int) {
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = n
	n.parent = parent

	d.adjustForInsert(parent, index)
	d.version++

	rec := MutationRecord{Type: ChildList, Target: parent, Added: []*Node{n}}
	if index > 0 {
		rec.PrevSibling = parent.children[index-1]
	}
	if index+1 < len(parent.children) {
		rec.NextSibling = parent.children[index+1]
	}
	d.record(rec)
}

func (d *Document) removeChild(n *Node) {
	parent := n.parent
	index := parent.childIndex(n)

	rec := MutationRecord{Type: ChildList, Target: parent, Removed: []*Node{n}}
	if index > 0 {
		rec.PrevSibling = parent.children[index-1]
	}
	if index+1 < len(parent.children) {
		rec.NextSibling = parent.children[index+1]
	}

	d.adjustForRemove(parent, n, index)
	parent.children = append(parent.children[:index], parent.children[index+1:]...)
	n.parent = nil
	d.version++
	d.record(rec)
}
