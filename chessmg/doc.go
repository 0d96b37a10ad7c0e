// Package chessmg is a bitboard chess rules engine. It holds a Position,
// enumerates pseudolegal and legal moves, and makes and unmakes moves with
// full rule fidelity: castling, en passant, promotion and the halfmove and
// fullmove clocks.
//
// A Position is a plain value. Searches that branch copy it instead of
// sharing one board, so no locking is involved:
//
//	for _, m := range pos.LegalMoves() {
//		child := pos.Apply(m)
//		_ = child
//	}
//
// The package does no text parsing or I/O; see the notation package for FEN
// and move text.
package chessmg
