package notation

import (
	"fmt"
	"strings"

	"chess-rules/chessmg"
)

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(s string) (chessmg.Square, error) {
	if len(s) != 2 {
		return chessmg.NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chessmg.NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return chessmg.SquareAt(int(file-'a'), int(rank-'1')), nil
}

// SquareName returns the algebraic name of sq, or "-" for NoSquare.
func SquareName(sq chessmg.Square) string { return sq.String() }

// FormatMove renders m in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
// Castling is written as the king's two-square move.
func FormatMove(m chessmg.Move) string { return m.String() }

// FormatMoves renders a move list separated by single spaces.
func FormatMoves(moves []chessmg.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseMove resolves UCI move text against the legal moves of p. The text
// alone does not say whether a move captures or castles, so the match is
// made on source, destination and promotion piece.
func ParseMove(p chessmg.Position, text string) (chessmg.Move, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if len(text) < 4 || len(text) > 5 {
		return chessmg.Move{}, fmt.Errorf("%w: %q: want 4 or 5 characters", ErrInvalidMove, text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return chessmg.Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return chessmg.Move{}, fmt.Errorf("%w: %q: %v", ErrInvalidMove, text, err)
	}
	promo := chessmg.NoPieceType
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = chessmg.Queen
		case 'r':
			promo = chessmg.Rook
		case 'b':
			promo = chessmg.Bishop
		case 'n':
			promo = chessmg.Knight
		default:
			return chessmg.Move{}, fmt.Errorf("%w: %q: invalid promotion piece", ErrInvalidMove, text)
		}
	}
	for _, m := range p.LegalMoves() {
		if m.From == from && m.To == to && m.Promotion() == promo {
			return m, nil
		}
	}
	return chessmg.Move{}, fmt.Errorf("%w: %q is not legal in %s", ErrInvalidMove, text, FormatFEN(p))
}
