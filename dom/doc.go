// Package dom implements the editable surface the entity widget runs against:
// a tree of text runs and inline elements, a live selection, batched mutation
// observation, and the native editing operations a user performs on it.
//
// Offsets are 0-based. On text nodes they count runes; on elements they count
// children, as in the browser DOM.
package dom
