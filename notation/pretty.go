package notation

import (
	"strings"

	"chess-rules/chessmg"
)

// Unicode glyphs indexed by color then piece type.
var glyphs = [2][6]string{
	{"♙", "♖", "♘", "♗", "♕", "♔"},
	{"♟", "♜", "♞", "♝", "♛", "♚"},
}

// Glyph returns the Unicode chess symbol for a piece.
func Glyph(p chessmg.Piece) string { return glyphs[p.Color][p.Type] }

// Pretty draws the board with box-drawing characters, rank 8 at the top:
//
//	  ┌───┬───┬─ ... ┐
//	8 │ ♜ │ ♞ │ ...  │
//	  ├───┼───┼─ ... ┤
//	...
//	  └───┴───┴─ ... ┘
//	    a   b   c ...
func Pretty(p chessmg.Position) string {
	var sb strings.Builder
	sb.WriteString("  ┌───┬───┬───┬───┬───┬───┬───┬───┐\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString(" │")
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			if piece, ok := p.PieceAt(chessmg.SquareAt(file, rank)); ok {
				sb.WriteString(Glyph(piece))
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString(" │")
		}
		sb.WriteByte('\n')
		if rank > 0 {
			sb.WriteString("  ├───┼───┼───┼───┼───┼───┼───┼───┤\n")
		}
	}
	sb.WriteString("  └───┴───┴───┴───┴───┴───┴───┴───┘\n")
	sb.WriteString("    a   b   c   d   e   f   g   h  \n")
	return sb.String()
}
