// Package render draws the game onto a fixed-size grid of glyph cells.
package render

import "unicode/utf8"

// Color is a backend-neutral palette entry.
type Color int

const (
	Default Color = iota
	Black
	White
	Navy
	Green
	Red
	Cyan
	Yellow
)

// Renderer is the drawing surface the game reports to once per frame.
type Renderer interface {
	Cls()
	ClsBg(c Color)
	Set(x, y int, fg, bg Color, glyph rune)
	PrintCentered(row int, text string)
	PrintColorCentered(row int, fg, bg Color, text string)
}

// centerColumn is the first column of text centered on a surface of the given width.
func centerColumn(width int, text string) int {
	x := (width - utf8.RuneCountInString(text)) / 2
	return max(x, 0)
}
