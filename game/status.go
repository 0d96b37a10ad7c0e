package game

import "chess-rules/chessmg"

// Status is the derived state of a game.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

var statusNames = [...]string{"ongoing", "checkmate", "stalemate", "fifty-move rule", "threefold repetition", "insufficient material"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsDraw reports whether the status ends the game in a draw.
func (s Status) IsDraw() bool { return s != Ongoing && s != Checkmate }

// Status reports how the game stands. Checkmate and stalemate take precedence
// over the draw rules.
func (g *Game) Status() Status {
	if !g.pos.HasLegalMoves() {
		if g.pos.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.pos.HalfmoveClock() >= fiftyMoveLimit {
		return FiftyMoveRule
	}
	if g.repetitions() >= 2 {
		return ThreefoldRepetition
	}
	if !HasSufficientMaterial(g.pos) {
		return InsufficientMaterial
	}
	return Ongoing
}

// Winner returns the side that delivered checkmate. ok is false unless the
// game is over by checkmate.
func (g *Game) Winner() (c chessmg.Color, ok bool) {
	if g.Status() != Checkmate {
		return 0, false
	}
	return g.pos.SideToMove().Other(), true
}

// HasSufficientMaterial checks if there is enough material on the board for a
// checkmate to be possible. K v K, K+minor v K and K+B v K+B with bishops on
// the same square color are insufficient.
func HasSufficientMaterial(p chessmg.Position) bool {
	w, b := chessmg.White, chessmg.Black
	// Any pawn, rook, or queen guarantees sufficient material.
	if p.Pieces(w, chessmg.Pawn)|p.Pieces(w, chessmg.Rook)|p.Pieces(w, chessmg.Queen)|
		p.Pieces(b, chessmg.Pawn)|p.Pieces(b, chessmg.Rook)|p.Pieces(b, chessmg.Queen) != 0 {
		return true
	}

	whiteKnights := p.Pieces(w, chessmg.Knight).Count()
	whiteBishops := p.Pieces(w, chessmg.Bishop).Count()
	blackKnights := p.Pieces(b, chessmg.Knight).Count()
	blackBishops := p.Pieces(b, chessmg.Bishop).Count()
	whiteMinors := whiteKnights + whiteBishops
	blackMinors := blackKnights + blackBishops

	if whiteMinors+blackMinors <= 1 {
		return false
	}
	if whiteKnights == 0 && blackKnights == 0 && whiteBishops == 1 && blackBishops == 1 {
		if squareColor(p.Pieces(w, chessmg.Bishop).Square()) == squareColor(p.Pieces(b, chessmg.Bishop).Square()) {
			return false
		}
	}
	return true
}

// squareColor is 0 for dark squares and 1 for light ones.
func squareColor(sq chessmg.Square) int { return (sq.File() + sq.Rank()) & 1 }
