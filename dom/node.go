package dom

import "strings"

// NodeType distinguishes text runs from elements.
type NodeType uint8

const (
	TextNode NodeType = iota
	ElementNode
)

// Tag identifies the element kinds a surface may contain.
type Tag uint8

const (
	TagNone Tag = iota
	TagRoot
	TagAnchor
	TagBreak
	TagSpan
)

func (t Tag) String() string {
	switch t {
	case TagRoot:
		return "div"
	case TagAnchor:
		return "a"
	case TagBreak:
		return "br"
	case TagSpan:
		return "span"
	default:
		return ""
	}
}

// Node is a text run or an element in a Document tree.
type Node struct {
	typ  NodeType
	tag  Tag
	data []rune

	classes []string
	attrs   map[string]string

	parent   *Node
	children []*Node
}

// NewText returns a detached text node.
func NewText(s string) *Node {
	return &Node{typ: TextNode, data: []rune(s)}
}

// NewElement returns a detached element node.
func NewElement(tag Tag) *Node {
	return &Node{typ: ElementNode, tag: tag}
}

func (n *Node) Type() NodeType { return n.typ }

func (n *Node) Tag() Tag { return n.tag }

func (n *Node) IsText() bool { return n != nil && n.typ == TextNode }

func (n *Node) IsAnchor() bool { return n != nil && n.typ == ElementNode && n.tag == TagAnchor }

func (n *Node) IsBreak() bool { return n != nil && n.typ == ElementNode && n.tag == TagBreak }

// Data returns the text of a text node, or "" for elements.
func (n *Node) Data() string {
	if n.typ != TextNode {
		return ""
	}
	return string(n.data)
}

// Len is the rune length for text nodes and the child count for elements.
func (n *Node) Len() int {
	if n.typ == TextNode {
		return len(n.data)
	}
	return len(n.children)
}

// TextContent concatenates the data of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return string(n.data)
	}
	var sb strings.Builder
	n.walk(func(c *Node) bool {
		if c.typ == TextNode {
			sb.WriteString(string(c.data))
		}
		return true
	})
	return sb.String()
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Index returns the position of n among its siblings, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *Node) PrevSibling() *Node {
	i := n.Index()
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

func (n *Node) NextSibling() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for c := other; c != nil; c = c.parent {
		if c == n {
			return true
		}
	}
	return false
}

// FirstText returns the first text node in n's subtree, including n itself.
func (n *Node) FirstText() *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if c.typ == TextNode {
			found = c
			return false
		}
		return true
	})
	return found
}

// ContainsBreak reports whether a break element sits anywhere below n.
func (n *Node) ContainsBreak() bool {
	found := false
	for _, c := range n.children {
		c.walk(func(d *Node) bool {
			if d.IsBreak() {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// Classes returns the class list in insertion order.
func (n *Node) Classes() []string {
	return append([]string(nil), n.classes...)
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// CloneShallow copies an element's tag, classes and attributes without
// children. Text nodes are copied with their data.
func (n *Node) CloneShallow() *Node {
	out := &Node{typ: n.typ, tag: n.tag}
	if n.typ == TextNode {
		out.data = append([]rune(nil), n.data...)
	}
	out.classes = append([]string(nil), n.classes...)
	if len(n.attrs) > 0 {
		out.attrs = make(map[string]string, len(n.attrs))
		for k, v := range n.attrs {
			out.attrs[k] = v
		}
	}
	return out
}

// walk visits n and its descendants in tree order until fn returns false.
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
