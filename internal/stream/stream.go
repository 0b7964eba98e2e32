// Package stream renders a live byte stream as rows of sextant glyphs.
//
// Unlike the interactive viewer, streaming is one way: each chunk of
// input becomes one printed glyph row and scrollback is left to the
// terminal. The stream ends cleanly when the input runs dry.
package stream

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/san-kum/bitraster/internal/raster"
	"github.com/san-kum/bitraster/internal/render"
)

// Streamer reads fixed-size chunks from In and writes one glyph row
// per chunk to Out, pausing Delay between rows.
type Streamer struct {
	In    io.Reader
	Out   io.Writer
	Width int          // bits per row; 0 derives from the terminal width
	Order raster.Order // bit order within each byte
	Delay time.Duration

	// Size reports the terminal dimensions. Left nil, the size of the
	// terminal attached to stdout is used. It is only consulted while
	// Width is zero.
	Size func() (w, h int, err error)

	// Sleep pauses between rows. Left nil, a context-aware wait on the
	// wall clock is used.
	Sleep func(d time.Duration)
}

// Run renders rows until the input is exhausted or ctx is cancelled,
// both of which return nil. A chunk spans three bit rows, so each read
// fills exactly one glyph row.
//
// Width is fixed on the first iteration and does not track terminal
// resizes afterwards.
func (s *Streamer) Run(ctx context.Context) error {
	in := s.In
	if in == nil {
		in = os.Stdin
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	var buf *raster.Buffer
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if s.Width == 0 {
			termW, _, err := s.size()
			if err != nil {
				return fmt.Errorf("stream: terminal size: %w", err)
			}
			w := termW * 2
			w -= w % 8
			if w < 8 {
				w = 8
			}
			s.Width = w
		}

		chunk := s.Width / 8 * 3
		if buf == nil || buf.Len() != chunk {
			buf = raster.New(chunk, s.Width, s.Order)
		}

		if _, err := io.ReadFull(in, buf.Bytes()); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return fmt.Errorf("stream: read chunk: %w", err)
		}

		if _, err := io.WriteString(out, render.Row(buf)+"\n"); err != nil {
			return fmt.Errorf("stream: write row: %w", err)
		}

		s.sleep(ctx, s.Delay)
	}
}

func (s *Streamer) size() (int, int, error) {
	if s.Size != nil {
		return s.Size()
	}
	return term.GetSize(int(os.Stdout.Fd()))
}

func (s *Streamer) sleep(ctx context.Context, d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
