// Package editor provides the bracket-entity widget and a Bubble Tea component
// that hosts it.
//
// An Editor attaches to a dom.Document and turns bracketed spans such as
// "[John Doe]" into anchor nodes. It then polices edits to those anchors:
// anchors that lose a delimiter, gain a break, or get split are dissolved back
// into text, and printable keys typed at an anchor's edge land outside it.
// Hosts learn about entities through typed Event notifications.
package editor
