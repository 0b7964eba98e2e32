// Package scan profiles the bit density and byte entropy of a source.
//
// A [Result] divides the source into equally sized windows and records
// one density and one entropy value per window. The profiles give a
// quick structural overview of an unknown file: padding shows up as
// zero-density stretches, compressed or encrypted regions as entropy
// near 8 bits per byte.
package scan

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"runtime"
	"sync"

	"github.com/san-kum/bitraster/internal/view"
)

// Result holds per-window profiles of a source.
type Result struct {
	Density []float64 `json:"density"` // fraction of set bits per window, 0..1
	Entropy []float64 `json:"entropy"` // Shannon entropy per window, bits per byte, 0..8
	Size    int64     `json:"size"`    // total bytes profiled
	Window  int64     `json:"window"`  // bytes per window; the last window may be shorter
}

// Profile reads src window by window and computes its density and
// entropy profiles. The source is split into at most windows equal
// parts, never finer than one byte per window. An empty source yields
// an empty result.
//
// Large profiles are computed on several goroutines; src.ReadAt must
// tolerate concurrent calls, which files and byte readers do.
func Profile(src view.Source, windows int) (*Result, error) {
	size := src.Size()
	if windows < 1 {
		windows = 1
	}
	if size == 0 {
		return &Result{}, nil
	}
	if int64(windows) > size {
		windows = int(size)
	}

	window := (size + int64(windows) - 1) / int64(windows)
	count := int((size + window - 1) / window)
	res := &Result{
		Density: make([]float64, count),
		Entropy: make([]float64, count),
		Size:    size,
		Window:  window,
	}

	if count < 16 {
		if err := profileRange(src, res, 0, count); err != nil {
			return nil, err
		}
		return res, nil
	}

	workers := runtime.NumCPU()
	if workers > count {
		workers = count
	}
	chunk := (count + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunk
			end := start + chunk
			if end > count {
				end = count
			}
			errs[worker] = profileRange(src, res, start, end)
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// profileRange fills the result slots [start, end). Ranges do not
// overlap across workers, so the slots need no locking.
func profileRange(src view.Source, res *Result, start, end int) error {
	buf := make([]byte, res.Window)
	for i := start; i < end; i++ {
		off := int64(i) * res.Window
		chunk := buf
		if rem := res.Size - off; rem < res.Window {
			chunk = buf[:rem]
		}
		n, err := src.ReadAt(chunk, off)
		if err != nil && err != io.EOF {
			return fmt.Errorf("scan: read window at %#x: %w", off, err)
		}
		chunk = chunk[:n]
		res.Density[i] = Density(chunk)
		res.Entropy[i] = Entropy(chunk)
	}
	return nil
}

// Density returns the fraction of set bits in p.
func Density(p []byte) float64 {
	if len(p) == 0 {
		return 0
	}
	ones := 0
	for _, b := range p {
		ones += bits.OnesCount8(b)
	}
	return float64(ones) / float64(len(p)*8)
}

// Entropy returns the Shannon entropy of the byte distribution of p,
// in bits per byte. A constant block has entropy 0, a uniform block 8.
func Entropy(p []byte) float64 {
	if len(p) == 0 {
		return 0
	}
	var hist [256]int
	for _, b := range p {
		hist[b]++
	}
	h := 0.0
	n := float64(len(p))
	for _, c := range hist {
		if c == 0 {
			continue
		}
		f := float64(c) / n
		h -= f * math.Log2(f)
	}
	return h
}
