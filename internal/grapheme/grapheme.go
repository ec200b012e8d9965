package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of cluster. Zero-width clusters
// (combining marks on their own, U+200B) report 0.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		// runewidth reports 0 for some emoji sequences uniseg sizes correctly.
		if u := uniseg.StringWidth(cluster); u > 0 && !isZeroWidth(cluster) {
			return u
		}
	}
	return w
}

func isZeroWidth(cluster string) bool {
	for _, r := range cluster {
		if r != '\u200b' && r != '\u200c' && r != '\u200d' && r != '\ufeff' {
			return false
		}
	}
	return true
}
