// Package life steps Conway's Game of Life directly on a raster
// buffer. The window is the whole world: bits outside it are a
// permanent dead border, so patterns starve at the edges instead of
// wrapping.
package life

import (
	"github.com/san-kum/bitraster/internal/raster"
)

// Engine advances generations in place. The zero value is ready to
// use; the scratch buffer is sized lazily and reused between steps.
type Engine struct {
	scratch    *raster.Buffer
	generation int
	population int
}

// New returns an Engine with no history.
func New() *Engine {
	return &Engine{}
}

// Step computes one generation of buf and writes it back, returning
// the live population. Cells survive with 2 or 3 live neighbors and
// are born with exactly 3. Only the buffer's complete bit rows are
// simulated; bits in a trailing partial row die with the copy-back.
func (e *Engine) Step(buf *raster.Buffer) int {
	w := buf.Width()
	if w == 0 {
		return 0
	}
	h := buf.Len() * 8 / w

	if e.scratch == nil || e.scratch.Len() != buf.Len() || e.scratch.Width() != w || e.scratch.Order() != buf.Order() {
		e.scratch = raster.New(buf.Len(), w, buf.Order())
	} else {
		e.scratch.Zero()
	}

	population := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := buf.Get(x-1, y-1) + buf.Get(x, y-1) + buf.Get(x+1, y-1) +
				buf.Get(x-1, y) + buf.Get(x+1, y) +
				buf.Get(x-1, y+1) + buf.Get(x, y+1) + buf.Get(x+1, y+1)
			if buf.Get(x, y) == 1 {
				if n == 2 || n == 3 {
					e.scratch.Set(x, y, 1)
					population++
				}
			} else if n == 3 {
				e.scratch.Set(x, y, 1)
				population++
			}
		}
	}

	copy(buf.Bytes(), e.scratch.Bytes())
	e.generation++
	e.population = population
	return population
}

// Generation counts the steps taken since the last Reset.
func (e *Engine) Generation() int { return e.generation }

// Population is the live-cell count after the most recent step.
func (e *Engine) Population() int { return e.population }

// Reset zeroes the counters for a fresh run. The scratch buffer is
// kept.
func (e *Engine) Reset() {
	e.generation = 0
	e.population = 0
}
