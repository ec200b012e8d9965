package dom

import "strings"

// Flattened offsets count every text rune and every break as one character.
// Other elements are zero-width.

// charRef locates one character of the flattened text. Offset is -1 for
// breaks.
type charRef struct {
	node   *Node
	offset int
}

// Text returns the flattened text with breaks rendered as '\n'.
func (d *Document) Text() string {
	var sb strings.Builder
	d.root.walk(func(n *Node) bool {
		switch {
		case n.typ == TextNode:
			sb.WriteString(string(n.data))
		case n.IsBreak():
			sb.WriteByte('\n')
		}
		return true
	})
	return sb.String()
}

// Len returns the flattened character count.
func (d *Document) Len() int {
	count := 0
	d.root.walk(func(n *Node) bool {
		count += charWidth(n)
		return true
	})
	return count
}

// TextOffset converts p into a flattened character offset.
func (d *Document) TextOffset(p Point) int {
	if p.Node == nil {
		return 0
	}
	count := 0
	done := false
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == p.Node {
			if n.typ == TextNode {
				count += clampInt(p.Offset, 0, len(n.data))
			} else {
				for i := 0; i < p.Offset && i < len(n.children); i++ {
					visit(n.children[i])
				}
			}
			done = true
			return
		}
		count += charWidth(n)
		for _, c := range n.children {
			visit(c)
			if done {
				return
			}
		}
	}
	visit(d.root)
	return count
}

// PointAtOffset converts a flattened offset into a Point. Text points win
// over element points; among text nodes the earliest in tree order wins, so
// an offset on the boundary of two runs resolves to the end of the first.
func (d *Document) PointAtOffset(off int) Point {
	off = clampInt(off, 0, d.Len())

	count := 0
	var found *Point
	d.root.walk(func(n *Node) bool {
		if n.typ == TextNode {
			if off >= count && off <= count+len(n.data) {
				found = &Point{Node: n, Offset: off - count}
				return false
			}
		}
		count += charWidth(n)
		return true
	})
	if found != nil {
		return *found
	}

	count = 0
	var fallback *Point
	d.root.walk(func(n *Node) bool {
		if n.IsBreak() && n.parent != nil {
			switch off {
			case count:
				fallback = &Point{Node: n.parent, Offset: n.Index()}
				return false
			case count + 1:
				fallback = &Point{Node: n.parent, Offset: n.Index() + 1}
				return false
			}
		}
		count += charWidth(n)
		return true
	})
	if fallback != nil {
		return *fallback
	}
	if off == 0 {
		return Point{Node: d.root, Offset: 0}
	}
	return Point{Node: d.root, Offset: len(d.root.children)}
}

func (d *Document) charAt(k int) (charRef, bool) {
	if k < 0 {
		return charRef{}, false
	}
	count := 0
	var ref charRef
	ok := false
	d.root.walk(func(n *Node) bool {
		switch {
		case n.typ == TextNode:
			if k < count+len(n.data) {
				ref, ok = charRef{node: n, offset: k - count}, true
				return false
			}
		case n.IsBreak():
			if k == count {
				ref, ok = charRef{node: n, offset: -1}, true
				return false
			}
		}
		count += charWidth(n)
		return true
	})
	return ref, ok
}

func charWidth(n *Node) int {
	switch {
	case n.typ == TextNode:
		return len(n.data)
	case n.IsBreak():
		return 1
	default:
		return 0
	}
}
