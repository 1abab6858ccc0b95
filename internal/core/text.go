package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextWidth returns the number of terminal columns text occupies.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Wrap breaks text into lines no wider than width columns, splitting on
// spaces. A single word wider than width is truncated.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "…")
			w = runewidth.StringWidth(word)
		}
		switch {
		case lineW == 0:
			line.WriteString(word)
			lineW = w
		case lineW+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineW += 1 + w
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineW = w
		}
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
