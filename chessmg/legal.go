package chessmg

// castleRule describes one of the four castling moves.
type castleRule struct {
	right       CastlingRights
	kind        MoveKind
	kingFrom    Square
	kingTo      Square
	rookFrom    Square
	rookTo      Square
	between     Bitboard // squares between king and rook, must be empty
	kingTransit Bitboard // king start, passed and end squares, must be unattacked
}

var castleRules = [2][2]castleRule{
	White: {
		{
			right: CastlingWhiteK, kind: CastleKingside,
			kingFrom: E1, kingTo: G1, rookFrom: H1, rookTo: F1,
			between:     F1.Bitboard() | G1.Bitboard(),
			kingTransit: E1.Bitboard() | F1.Bitboard() | G1.Bitboard(),
		},
		{
			right: CastlingWhiteQ, kind: CastleQueenside,
			kingFrom: E1, kingTo: C1, rookFrom: A1, rookTo: D1,
			between:     B1.Bitboard() | C1.Bitboard() | D1.Bitboard(),
			kingTransit: E1.Bitboard() | D1.Bitboard() | C1.Bitboard(),
		},
	},
	Black: {
		{
			right: CastlingBlackK, kind: CastleKingside,
			kingFrom: E8, kingTo: G8, rookFrom: H8, rookTo: F8,
			between:     F8.Bitboard() | G8.Bitboard(),
			kingTransit: E8.Bitboard() | F8.Bitboard() | G8.Bitboard(),
		},
		{
			right: CastlingBlackQ, kind: CastleQueenside,
			kingFrom: E8, kingTo: C8, rookFrom: A8, rookTo: D8,
			between:     B8.Bitboard() | C8.Bitboard() | D8.Bitboard(),
			kingTransit: E8.Bitboard() | D8.Bitboard() | C8.Bitboard(),
		},
	},
}

// castleRuleFor returns the rule matching a castling move kind.
func castleRuleFor(c Color, k MoveKind) *castleRule {
	if k == CastleKingside {
		return &castleRules[c][0]
	}
	return &castleRules[c][1]
}

// canCastle evaluates one castling rule against the given opponent attack set.
func (p *Position) canCastle(c Color, r *castleRule, attacked Bitboard) bool {
	if !p.castlingRights.Has(r.right) {
		return false
	}
	if !p.boards[c][King].Has(r.kingFrom) || !p.boards[c][Rook].Has(r.rookFrom) {
		return false
	}
	if p.AllOccupied()&r.between != 0 {
		return false
	}
	return attacked&r.kingTransit == 0
}

// CanCastle reports whether color c may castle on the given side right now:
// the right is still held, the squares between king and rook are empty, and
// neither the king's square nor any square it crosses or lands on is
// attacked. kind must be CastleKingside or CastleQueenside.
func (p *Position) CanCastle(c Color, kind MoveKind) bool {
	if kind != CastleKingside && kind != CastleQueenside {
		return false
	}
	return p.canCastle(c, castleRuleFor(c, kind), p.AttackSquares(c.Other()))
}

// AppendCastlingMoves appends the legal castling moves of color c, kingside
// first. These are not passed through the speculative-apply filter.
func (p *Position) AppendCastlingMoves(dst []Move, c Color) []Move {
	if p.castlingRights&(kingside(c)|queenside(c)) == 0 {
		return dst
	}
	attacked := p.AttackSquares(c.Other())
	for i := range castleRules[c] {
		r := &castleRules[c][i]
		if p.canCastle(c, r, attacked) {
			dst = append(dst, Move{From: r.kingFrom, To: r.kingTo, Kind: r.kind, Piece: King})
		}
	}
	return dst
}

// IsPseudolegalMoveLegal plays m on a scratch copy and reports whether the
// mover's king is safe afterwards. Pins, discovered attacks and king walks
// into attacked squares all fall out of this one test.
func (p *Position) IsPseudolegalMoveLegal(m Move) bool {
	scratch := *p
	scratch.apply(m)
	return !scratch.IsKingAttacked(p.sideToMove)
}

// LegalMovesInto fills dst's storage with every legal move of the side to
// move and returns the result: filtered pseudolegal moves followed by
// castling moves. Any previous contents of dst are discarded.
func (p *Position) LegalMovesInto(dst []Move) []Move {
	side := p.sideToMove
	moves := p.AppendPseudolegalMoves(dst[:0], side)
	n := 0
	for _, m := range moves {
		if p.IsPseudolegalMoveLegal(m) {
			moves[n] = m
			n++
		}
	}
	return p.AppendCastlingMoves(moves[:n], side)
}

// LegalMoves generates all legal moves for the side to move.
func (p *Position) LegalMoves() []Move { return p.LegalMovesInto(make([]Move, 0, 128)) }

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(p.LegalMovesInto(buf)) > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.InCheck() && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool { return !p.InCheck() && !p.HasLegalMoves() }
