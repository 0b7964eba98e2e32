package raster

// sextants maps a 6-bit cell pattern onto its Unicode rune. The index
// packs the cell top to bottom, left before right, with the top-left
// bit in the most significant position. Index 0 is empty, 63 is a full
// block, and the two uniform column patterns (21 and 42) fall outside
// the U+1FB00 sextant range and use the legacy half blocks instead.
var sextants = [64]rune{
	0x00020, 0x1FB1E, 0x1FB0F, 0x1FB2D, 0x1FB07, 0x1FB26, 0x1FB16, 0x1FB35,
	0x1FB03, 0x1FB22, 0x1FB13, 0x1FB31, 0x1FB0B, 0x1FB29, 0x1FB1A, 0x1FB39,
	0x1FB01, 0x1FB20, 0x1FB11, 0x1FB2F, 0x1FB09, 0x02590, 0x1FB18, 0x1FB37,
	0x1FB05, 0x1FB24, 0x1FB14, 0x1FB33, 0x1FB0D, 0x1FB2B, 0x1FB1C, 0x1FB3B,
	0x1FB00, 0x1FB1F, 0x1FB10, 0x1FB2E, 0x1FB08, 0x1FB27, 0x1FB17, 0x1FB36,
	0x1FB04, 0x1FB23, 0x0258C, 0x1FB32, 0x1FB0C, 0x1FB2A, 0x1FB1B, 0x1FB3A,
	0x1FB02, 0x1FB21, 0x1FB12, 0x1FB30, 0x1FB0A, 0x1FB28, 0x1FB19, 0x1FB38,
	0x1FB06, 0x1FB25, 0x1FB15, 0x1FB34, 0x1FB0E, 0x1FB2C, 0x1FB1D, 0x02588,
}

// NumGlyphs is the size of the sextant table.
const NumGlyphs = len(sextants)

// Glyph returns the rune for a 6-bit cell pattern.
func Glyph(index int) rune {
	return sextants[index&0x3F]
}

// CellIndex assembles the glyph index for the 2x3 cell whose top-left
// bit sits at (x, y). Bits outside the buffer read as 0.
func CellIndex(b *Buffer, x, y int) int {
	index := b.Get(x, y)
	index = index<<1 | b.Get(x+1, y)
	index = index<<1 | b.Get(x, y+1)
	index = index<<1 | b.Get(x+1, y+1)
	index = index<<1 | b.Get(x, y+2)
	index = index<<1 | b.Get(x+1, y+2)
	return index
}
