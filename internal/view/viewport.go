package view

import (
	"fmt"
	"io"

	"github.com/san-kum/bitraster/internal/raster"
)

// Options configure a new Viewport.
type Options struct {
	// Width is the bitmap width in bits. Zero derives it from the
	// terminal on the first Refresh; otherwise it must be a multiple
	// of 8.
	Width int

	// Offset is the initial byte offset into the source.
	Offset int64

	// Order is the bit significance used when decoding bytes.
	Order raster.Order
}

// Viewport owns the byte window the renderer draws from. It keeps at
// most one terminal's worth of source bytes in memory and refetches
// only when the window actually moves.
type Viewport struct {
	src    Source
	width  int
	order  raster.Order
	offset int64
	col    int

	buf          *raster.Buffer
	lastW, lastH int
	lastOffset   int64
	stale        bool
	fetches      int
}

// New validates opts and builds a Viewport over src. Nothing is read
// until the first Refresh.
func New(src Source, opts Options) (*Viewport, error) {
	if opts.Width < 0 || opts.Width%8 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, opts.Width)
	}
	if opts.Offset < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOffset, opts.Offset)
	}
	return &Viewport{
		src:    src,
		width:  opts.Width,
		order:  opts.Order,
		offset: opts.Offset,
		stale:  true,
	}, nil
}

// Refresh brings the window in line with the terminal geometry and the
// pending scroll state. It derives the bitmap width on first use,
// resizes the window to termH*3 bit rows capped at the source size,
// clamps the byte and column offsets, and refetches source bytes only
// when the geometry or offset changed since the last fetch.
func (v *Viewport) Refresh(termW, termH int) error {
	if termW <= 0 || termH <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadTermSize, termW, termH)
	}
	if v.width == 0 {
		w := termW * 2
		w -= w % 8
		if w < 8 {
			w = 8
		}
		v.width = w
	}

	if termW != v.lastW || termH != v.lastH || v.offset != v.lastOffset || v.stale {
		size := v.src.Size()
		window := (int64(termH)*3*int64(v.width) + 7) / 8
		if window > size {
			window = size
		}
		if v.buf == nil || v.buf.Len() != int(window) {
			v.buf = raster.New(int(window), v.width, v.order)
		}

		if v.offset > size-window {
			v.offset = size - window
		}
		if v.offset < 0 {
			v.offset = 0
		}

		n, err := v.src.ReadAt(v.buf.Bytes(), v.offset)
		if err != nil && err != io.EOF {
			return fmt.Errorf("view: read window at %#x: %w", v.offset, err)
		}
		// A source that shrank since open leaves a stale tail.
		clear(v.buf.Bytes()[n:])

		v.fetches++
		v.lastW, v.lastH = termW, termH
		v.lastOffset = v.offset
		v.stale = false
	}

	if v.col+termW*2 > v.width {
		v.col = v.width - termW*2
	}
	if v.col < 0 {
		v.col = 0
	}
	return nil
}

// Buffer returns the current window, or nil before the first Refresh.
func (v *Viewport) Buffer() *raster.Buffer { return v.buf }

func (v *Viewport) Offset() int64       { return v.offset }
func (v *Viewport) ColOffset() int      { return v.col }
func (v *Viewport) Width() int          { return v.width }
func (v *Viewport) Order() raster.Order { return v.order }

// Size reports the source extent in bytes.
func (v *Viewport) Size() int64 { return v.src.Size() }

// Window reports the current window length in bytes.
func (v *Viewport) Window() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Len()
}

// Fetches counts source reads, exposed so tests can assert the
// refetch memoization.
func (v *Viewport) Fetches() int { return v.fetches }

// ScrollRows moves the byte offset by n bit rows. The move lands on
// the next Refresh, which clamps it to the source.
func (v *Viewport) ScrollRows(n int) {
	if v.width == 0 {
		return
	}
	v.offset += int64(n) * int64(v.width/8)
}

// ScrollCols moves the column offset by n bits.
func (v *Viewport) ScrollCols(n int) {
	v.col += n
}

// PageUp moves the offset back by one window.
func (v *Viewport) PageUp() {
	v.offset -= int64(v.Window())
}

// PageDown moves the offset forward by one window.
func (v *Viewport) PageDown() {
	v.offset += int64(v.Window())
}

// JumpStart moves to the top of the source.
func (v *Viewport) JumpStart() {
	v.offset = 0
}

// JumpEnd moves past the end of the source; the Refresh clamp pulls
// the offset onto the last window.
func (v *Viewport) JumpEnd() {
	v.offset = v.src.Size()
}

// Invalidate marks the cached window dirty so the next Refresh
// refetches even at an unchanged offset. The viewer calls this when
// leaving the automaton mode, whose steps overwrite the window.
func (v *Viewport) Invalidate() {
	v.stale = true
}
