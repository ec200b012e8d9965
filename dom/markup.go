package dom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a surface from HTML markup. Text, <a>, and <br> map onto the
// tree; block elements become breaks between their contents; any other
// element is flattened into its children. Nested anchors are flattened.
func Parse(markup string) (*Document, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	d := New()
	for _, hn := range nodes {
		d.importHTML(d.root, hn)
	}
	d.Normalize(d.root)
	d.version = 0
	return d, nil
}

func (d *Document) importHTML(parent *Node, hn *html.Node) {
	switch hn.Type {
	case html.TextNode:
		d.insert(parent, NewText(hn.Data), len(parent.children))
		return
	case html.ElementNode:
	default:
		return
	}

	switch hn.DataAtom {
	case atom.Br:
		d.insert(parent, NewElement(TagBreak), len(parent.children))
		return
	case atom.A:
		if parent.IsAnchor() {
			break
		}
		a := NewElement(TagAnchor)
		for _, attr := range hn.Attr {
			if attr.Key == "class" {
				for _, c := range strings.Fields(attr.Val) {
					a.AddClass(c)
				}
				continue
			}
			a.SetAttr(attr.Key, attr.Val)
		}
		d.insert(parent, a, len(parent.children))
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			d.importHTML(a, c)
		}
		return
	case atom.Div, atom.P:
		if last := parent.LastChild(); last != nil && !last.IsBreak() {
			d.insert(parent, NewElement(TagBreak), len(parent.children))
		}
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		d.importHTML(parent, c)
	}
}

// Markup renders the root's children as HTML.
func (d *Document) Markup() string {
	var sb strings.Builder
	for _, c := range d.root.children {
		// strings.Builder writes never fail.
		_ = html.Render(&sb, toHTML(c))
	}
	return sb.String()
}

func toHTML(n *Node) *html.Node {
	if n.typ == TextNode {
		return &html.Node{Type: html.TextNode, Data: string(n.data)}
	}
	name := n.tag.String()
	hn := &html.Node{Type: html.ElementNode, Data: name, DataAtom: atom.Lookup([]byte(name))}
	if len(n.classes) > 0 {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: strings.Join(n.classes, " ")})
	}
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: n.attrs[k]})
	}
	for _, c := range n.children {
		hn.AppendChild(toHTML(c))
	}
	return hn
}
