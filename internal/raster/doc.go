// Package raster provides the 1-bit pixel buffer and the sextant glyph
// table that turn raw bytes into terminal block graphics.
//
// The package defines the primitives every higher layer builds on:
//
//   - [Buffer]: a byte-backed bitmap with a fixed row width in bits
//   - [Order]: bit significance within each byte ([MSBFirst], [LSBFirst])
//   - [CellIndex]: reads a 2x3 cell of bits as a 6-bit glyph index
//   - [Glyph]: maps a glyph index onto a Unicode block sextant rune
//
// A Buffer is addressed in bit coordinates. Bit (x, y) lives at linear
// index y*width+x; the byte holding it is index/8 and the position
// inside the byte follows the buffer's [Order]. Reads outside the
// buffer return 0 and writes outside it are dropped, so callers can
// treat the bitmap as surrounded by an infinite border of dead bits.
//
// # Example
//
//	buf := raster.New(24, 64, raster.MSBFirst)
//	buf.Set(0, 0, 1)
//	r := raster.Glyph(raster.CellIndex(buf, 0, 0))
//
// # Thread Safety
//
// Buffer instances are NOT thread-safe. The viewer owns a single
// buffer and mutates it from one goroutine only.
package raster
