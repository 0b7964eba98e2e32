// Package render turns a raster buffer into sextant glyph text. It
// never mutates the buffer; the same window renders identically until
// the viewport or the automaton changes it.
package render

import (
	"strings"

	"github.com/san-kum/bitraster/internal/raster"
)

// Frame renders termH glyph rows starting colOffset bits into each bit
// row. Columns are capped at the narrower of the bitmap and the
// terminal; rows beyond the buffer render blank. Rows are joined with
// newlines and the frame carries no trailing newline.
func Frame(buf *raster.Buffer, termW, termH, colOffset int) string {
	dispW := buf.Width() / 2
	if dispW > termW {
		dispW = termW
	}

	var b strings.Builder
	// Sextant runes encode to at most 4 bytes.
	b.Grow(termH * (dispW*4 + 1))
	for cy := 0; cy < termH; cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		for cx := 0; cx < dispW; cx++ {
			b.WriteRune(raster.Glyph(raster.CellIndex(buf, colOffset+cx*2, cy*3)))
		}
	}
	return b.String()
}

// Row renders the buffer's first glyph row at full bitmap width, the
// shape stream mode emits one chunk at a time.
func Row(buf *raster.Buffer) string {
	dispW := buf.Width() / 2
	var b strings.Builder
	b.Grow(dispW * 4)
	for cx := 0; cx < dispW; cx++ {
		b.WriteRune(raster.Glyph(raster.CellIndex(buf, cx*2, 0)))
	}
	return b.String()
}
