// Package diagram renders positions as SVG board diagrams.
package diagram

import (
	"errors"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-rules/chessmg"
	"chess-rules/notation"
)

// Options controls the rendering.
type Options struct {
	SquareSize int  // pixels per square, default 48
	Flip       bool // draw from Black's side
	// Highlight marks squares, typically the last move's source and target.
	Highlight chessmg.Bitboard
	// Coordinates draws file letters and rank digits in a margin.
	Coordinates bool
}

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a;fill-opacity:0.8"
	labelStyle    = "font-family:sans-serif;fill:#333;text-anchor:middle"
)

// ErrWrite wraps failures of the underlying writer.
var ErrWrite = errors.New("diagram: write failed")

// errWriter remembers the first write error so Write can report it.
type errWriter struct {
	w   io.Writer
	err error
}

func (cw *errWriter) Write(b []byte) (int, error) {
	if cw.err != nil {
		return len(b), nil
	}
	n, err := cw.w.Write(b)
	if err != nil {
		cw.err = err
	}
	return n, err
}

// Write renders p as a standalone SVG document.
func Write(w io.Writer, p chessmg.Position, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = 48
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	board := 8 * size
	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(board+2*margin, board+2*margin)
	canvas.Title(notation.FormatFEN(p))

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := chessmg.SquareAt(file, rank)
			x, y := origin(file, rank, size, margin, opts.Flip)
			fill := darkFill
			if (file+rank)&1 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, size, size, fill)
			if opts.Highlight.Has(sq) {
				canvas.Rect(x, y, size, size, highlightFill)
			}
			if piece, ok := p.PieceAt(sq); ok {
				canvas.Text(x+size/2, y+size*3/4, notation.Glyph(piece),
					fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*3/4))
			}
		}
	}

	if opts.Coordinates {
		fontSize := fmt.Sprintf("font-size:%dpx;%s", size/3, labelStyle)
		for i := 0; i < 8; i++ {
			x, _ := origin(i, 0, size, margin, opts.Flip)
			canvas.Text(x+size/2, board+margin+margin*2/3, string(rune('a'+i)), fontSize)
			_, y := origin(0, i, size, margin, opts.Flip)
			canvas.Text(margin/2, y+size*2/3, string(rune('1'+i)), fontSize)
		}
	}
	canvas.End()
	if cw.err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, cw.err)
	}
	return nil
}

// origin returns the top-left pixel of a square.
func origin(file, rank, size, margin int, flip bool) (x, y int) {
	if flip {
		file, rank = 7-file, 7-rank
	}
	return margin + file*size, margin + (7-rank)*size
}

// MoveHighlight returns the squares of a move, for Options.Highlight.
func MoveHighlight(m chessmg.Move) chessmg.Bitboard {
	return m.From.Bitboard() | m.To.Bitboard()
}
