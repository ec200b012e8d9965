package editor

import "github.com/iw2rmb/tagline/dom"

// mutationBatch is one delivered record batch sorted into anchor events.
type mutationBatch struct {
	removals  []*dom.Node
	additions []*dom.Node
	edits     []*dom.Node
}

// isSplit reports the batch shape left behind when a paragraph break cuts an
// anchor in two: one anchor removed, two anchors added.
//
// Pasting two anchors over one produces the same shape and is treated the
// same way.
func (b mutationBatch) isSplit() bool {
	return len(b.removals) == 1 && len(b.additions) == 2
}

func classify(records []dom.MutationRecord) mutationBatch {
	var b mutationBatch
	for _, r := range records {
		if r.Type != dom.ChildList {
			continue
		}
		if len(r.Removed) > 0 && r.Removed[0].IsAnchor() {
			b.removals = appendNode(b.removals, r.Removed[0])
		}
		if len(r.Added) > 0 && r.Added[0].IsAnchor() {
			b.additions = appendNode(b.additions, r.Added[0])
		}
	}

	for _, r := range records {
		var anchor *dom.Node
		switch r.Type {
		case dom.CharacterData:
			if p := r.Target.Parent(); p != nil && p.IsAnchor() {
				anchor = p
			}
		case dom.ChildList:
			// Structure changing inside an anchor (a break typed into it)
			// counts as an edit of that anchor.
			if r.Target.IsAnchor() {
				anchor = r.Target
			}
		}
		if anchor == nil || hasNode(b.removals, anchor) {
			continue
		}
		b.edits = appendNode(b.edits, anchor)
	}
	return b
}

// onMutations is the observer callback. Edits are handled before removals so
// an anchor dissolved by an edit is reported once, by the batch carrying its
// removal.
func (e *Editor) onMutations(records []dom.MutationRecord) {
	if e.zeroWidth != nil {
		e.stripZeroWidth()
	}

	b := classify(records)
	if b.isSplit() {
		e.log.Debug("anchor split", "additions", len(b.additions))
		e.handleRemoved(b.removals[0])
		for _, a := range b.additions {
			e.dissolve(a)
		}
		return
	}

	for _, a := range b.edits {
		e.Validate(a)
	}
	for _, a := range b.removals {
		e.handleRemoved(a)
	}
}

// handleRemoved retires the entity of an anchor that left the surface.
func (e *Editor) handleRemoved(anchor *dom.Node) {
	if e.doc.Root().Contains(anchor) {
		// Moved, not removed.
		return
	}
	ent, ok := e.retire(anchor)
	if !ok {
		return
	}
	e.log.Debug("entity unlinked", "text", ent.Text)
	e.emit(Event{Kind: EventEntityUnlinked, Anchor: anchor, Text: ent.Text})
}

func appendNode(list []*dom.Node, n *dom.Node) []*dom.Node {
	if hasNode(list, n) {
		return list
	}
	return append(list, n)
}

func hasNode(list []*dom.Node, n *dom.Node) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}
	return false
}
