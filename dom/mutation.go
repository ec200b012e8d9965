package dom

// MutationType classifies a MutationRecord.
type MutationType uint8

const (
	ChildList MutationType = iota
	CharacterData
)

func (t MutationType) String() string {
	switch t {
	case ChildList:
		return "childList"
	case CharacterData:
		return "characterData"
	default:
		return "unknown"
	}
}

// MutationRecord describes one effective change to the tree.
//
// ChildList records carry exactly one added or one removed node.
// CharacterData records target the text node and carry its previous data.
type MutationRecord struct {
	Type   MutationType
	Target *Node

	Added   []*Node
	Removed []*Node

	PrevSibling *Node
	NextSibling *Node

	OldValue string
}

// ObserveOptions selects which records an Observer receives for a target.
type ObserveOptions struct {
	ChildList     bool
	CharacterData bool
	// Subtree extends the registration to all descendants of the target.
	Subtree bool
}

type registration struct {
	node *Node
	opt  ObserveOptions
}

// Observer queues records for the nodes it observes. Queued records are
// handed to the callback as one batch when the document is flushed.
type Observer struct {
	doc      *Document
	callback func([]MutationRecord)

	regs  []registration
	queue []MutationRecord
}

// NewObserver registers an observer on d. Callbacks run from Flush.
func (d *Document) NewObserver(callback func([]MutationRecord)) *Observer {
	o := &Observer{doc: d, callback: callback}
	d.observers = append(d.observers, o)
	return o
}

// Observe starts (or replaces) the registration for n.
func (o *Observer) Observe(n *Node, opt ObserveOptions) {
	if n == nil {
		return
	}
	for i := range o.regs {
		if o.regs[i].node == n {
			o.regs[i].opt = opt
			return
		}
	}
	o.regs = append(o.regs, registration{node: n, opt: opt})
}

// Unobserve drops the registration for n. Records already queued stay queued.
func (o *Observer) Unobserve(n *Node) {
	for i := range o.regs {
		if o.regs[i].node == n {
			o.regs = append(o.regs[:i], o.regs[i+1:]...)
			return
		}
	}
}

// Observing reports whether n has a registration of its own.
func (o *Observer) Observing(n *Node) bool {
	for _, r := range o.regs {
		if r.node == n {
			return true
		}
	}
	return false
}

// Disconnect drops all registrations and pending records and detaches o from
// its document.
func (o *Observer) Disconnect() {
	o.regs = nil
	o.queue = nil
	if o.doc == nil {
		return
	}
	obs := o.doc.observers
	for i, x := range obs {
		if x == o {
			o.doc.observers = append(obs[:i], obs[i+1:]...)
			break
		}
	}
	o.doc = nil
}

// TakeRecords returns and clears the pending queue.
func (o *Observer) TakeRecords() []MutationRecord {
	out := o.queue
	o.queue = nil
	return out
}

// Pending returns the number of queued records.
func (o *Observer) Pending() int { return len(o.queue) }

func (o *Observer) wants(rec MutationRecord) bool {
	for _, r := range o.regs {
		if rec.Target != r.node && !(r.opt.Subtree && r.node.Contains(rec.Target)) {
			continue
		}
		switch rec.Type {
		case ChildList:
			if r.opt.ChildList {
				return true
			}
		case CharacterData:
			if r.opt.CharacterData {
				return true
			}
		}
	}
	return false
}

func (d *Document) record(rec MutationRecord) {
	for _, o := range d.observers {
		if o.wants(rec) {
			o.queue = append(o.queue, rec)
		}
	}
}

// maxFlushRounds bounds reaction chains where callbacks keep mutating.
const maxFlushRounds = 64

// Flush delivers queued records, one batch per observer per round, until no
// observer has pending records. Records produced by a callback are delivered
// in a later round. It returns the number of batches delivered.
func (d *Document) Flush() int {
	batches := 0
	for round := 0; round < maxFlushRounds; round++ {
		delivered := false
		for _, o := range append([]*Observer(nil), d.observers...) {
			recs := o.TakeRecords()
			if len(recs) == 0 || o.callback == nil {
				continue
			}
			delivered = true
			batches++
			o.callback(recs)
		}
		if !delivered {
			break
		}
	}
	return batches
}

// Pending reports whether any observer has undelivered records.
func (d *Document) Pending() bool {
	for _, o := range d.observers {
		if len(o.queue) > 0 {
			return true
		}
	}
	return false
}
