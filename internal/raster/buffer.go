package raster

// Order selects which end of a byte holds bit x=0 of that byte's run.
type Order int

const (
	// MSBFirst maps the lowest x to the most significant bit. This is
	// how most ROM dumps and 1bpp image formats lay out pixels.
	MSBFirst Order = iota

	// LSBFirst maps the lowest x to the least significant bit.
	LSBFirst
)

func (o Order) String() string {
	if o == LSBFirst {
		return "lsb-first"
	}
	return "msb-first"
}

// Buffer is a bitmap over a flat byte slice. Rows are width bits long
// and packed back to back with no padding, so a byte can span two
// rows when width is not a multiple of 8. The viewer always uses
// byte-aligned widths; Buffer itself does not require it.
type Buffer struct {
	bits  []byte
	width int
	order Order
}

// New returns a zeroed Buffer of size bytes.
func New(size, width int, order Order) *Buffer {
	return &Buffer{bits: make([]byte, size), width: width, order: order}
}

// Wrap builds a Buffer over an existing slice without copying.
func Wrap(data []byte, width int, order Order) *Buffer {
	return &Buffer{bits: data, width: width, order: order}
}

func (b *Buffer) Width() int   { return b.width }
func (b *Buffer) Order() Order { return b.order }
func (b *Buffer) Len() int     { return len(b.bits) }

// Bytes exposes the backing slice. The viewport refills it in place
// when the window moves.
func (b *Buffer) Bytes() []byte { return b.bits }

// Height reports how many complete bit rows the buffer holds. Bits in
// a trailing partial row are still readable through Get.
func (b *Buffer) Height() int {
	if b.width <= 0 {
		return 0
	}
	return len(b.bits) * 8 / b.width
}

// Zero clears every bit.
func (b *Buffer) Zero() {
	clear(b.bits)
}

// Get returns the bit at (x, y), or 0 when the coordinate falls
// outside the buffer.
func (b *Buffer) Get(x, y int) int {
	if x < 0 || y < 0 || x >= b.width {
		return 0
	}
	idx := y*b.width + x
	byteIdx := idx / 8
	if byteIdx >= len(b.bits) {
		return 0
	}
	shift := uint(idx % 8)
	if b.order == MSBFirst {
		shift = 7 - shift
	}
	return int(b.bits[byteIdx]>>shift) & 1
}

// Set writes the bit at (x, y); nonzero v sets it, zero clears it.
// Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= b.width {
		return
	}
	idx := y*b.width + x
	byteIdx := idx / 8
	if byteIdx >= len(b.bits) {
		return
	}
	shift := uint(idx % 8)
	if b.order == MSBFirst {
		shift = 7 - shift
	}
	if v != 0 {
		b.bits[byteIdx] |= 1 << shift
	} else {
		b.bits[byteIdx] &^= 1 << shift
	}
}
