package editor

import graphemeutil "github.com/iw2rmb/tagline/internal/grapheme"

// screenToOffset maps viewport-local mouse coordinates to a flattened
// surface offset.
//
// Coordinates are in terminal cells relative to the visible content region.
// A click on a cluster places the caret before it; clicks past the end of a
// line land at its end, and rows past the last line land at the end of the
// surface.
func (m *Model) screenToOffset(x, y int) int {
	if m.doc == nil {
		return 0
	}
	row := max(m.viewport.YOffset+y, 0)
	x = max(x, 0)

	k, curRow, col := 0, 0, 0
	for _, c := range collectCells(m.doc.Root(), false, nil) {
		if curRow == row {
			if c.br {
				return k
			}
			w := graphemeutil.Width(c.text)
			if x < col+w {
				return k
			}
			col += w
		}
		if c.br {
			curRow++
		}
		k += c.runes
	}
	return k
}
