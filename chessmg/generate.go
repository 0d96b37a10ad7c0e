package chessmg

// Pseudolegal generation. Every routine appends moves for color c to dst and
// returns the extended slice. The moves obey piece geometry, blocking and
// capture rules but ignore whether c's king is left attacked.

// promotionRank is the rank c's pawns promote on.
func promotionRank(c Color) Bitboard {
	if c == White {
		return rank8
	}
	return rank1
}

// doublePushRank is the rank c's pawns start on.
func doublePushRank(c Color) Bitboard {
	if c == White {
		return rank2
	}
	return rank7
}

// appendTargets emits one move per bit of targets from a single source,
// tagging enemy-occupied destinations as captures.
func appendTargets(dst []Move, from Square, pt PieceType, targets, enemies Bitboard) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		kind := Quiet
		if enemies.Has(to) {
			kind = Capture
		}
		dst = append(dst, Move{From: from, To: to, Kind: kind, Piece: pt})
	}
	return dst
}

// slidingTargets walks each direction from the single-bit mask src and stops
// at the first occupied square, which is kept only if it holds an enemy.
func slidingTargets(src Bitboard, dirs []Direction, friends, enemies Bitboard) Bitboard {
	var targets Bitboard
	for _, d := range dirs {
		for sq := src.Shift(d); sq != 0; sq = sq.Shift(d) {
			if sq&friends != 0 {
				break
			}
			targets |= sq
			if sq&enemies != 0 {
				break
			}
		}
	}
	return targets
}

func (p *Position) appendSlidingMoves(dst []Move, c Color, pt PieceType, dirs []Direction) []Move {
	friends, enemies := p.Friends(c), p.Enemies(c)
	for pieces := p.boards[c][pt]; pieces != 0; {
		from := popLSB(&pieces)
		targets := slidingTargets(from.Bitboard(), dirs, friends, enemies)
		dst = appendTargets(dst, from, pt, targets, enemies)
	}
	return dst
}

// AppendRookMoves appends pseudolegal rook moves.
func (p *Position) AppendRookMoves(dst []Move, c Color) []Move {
	return p.appendSlidingMoves(dst, c, Rook, rookDirections[:])
}

// AppendBishopMoves appends pseudolegal bishop moves.
func (p *Position) AppendBishopMoves(dst []Move, c Color) []Move {
	return p.appendSlidingMoves(dst, c, Bishop, bishopDirections[:])
}

// AppendQueenMoves appends pseudolegal queen moves (rook and bishop lines).
func (p *Position) AppendQueenMoves(dst []Move, c Color) []Move {
	return p.appendSlidingMoves(dst, c, Queen, kingDirections[:])
}

// AppendKnightMoves appends pseudolegal knight moves.
func (p *Position) AppendKnightMoves(dst []Move, c Color) []Move {
	friends, enemies := p.Friends(c), p.Enemies(c)
	for knights := p.boards[c][Knight]; knights != 0; {
		from := popLSB(&knights)
		targets := knightJumps(from.Bitboard()) &^ friends
		dst = appendTargets(dst, from, Knight, targets, enemies)
	}
	return dst
}

// AppendKingMoves appends single-step king moves. Castling is generated
// separately by AppendCastlingMoves.
func (p *Position) AppendKingMoves(dst []Move, c Color) []Move {
	friends, enemies := p.Friends(c), p.Enemies(c)
	for kings := p.boards[c][King]; kings != 0; {
		from := popLSB(&kings)
		targets := kingSteps(from.Bitboard()) &^ friends
		dst = appendTargets(dst, from, King, targets, enemies)
	}
	return dst
}

// AppendPawnPushes appends one-square advances onto empty squares short of the
// promotion rank.
func (p *Position) AppendPawnPushes(dst []Move, c Color) []Move {
	fwd := forward(c)
	back := forward(c.Other())
	empty := ^p.AllOccupied()
	targets := p.boards[c][Pawn].Shift(fwd) & empty &^ promotionRank(c)
	for targets != 0 {
		to := popLSB(&targets)
		from := to.Bitboard().Shift(back).Square()
		dst = append(dst, Move{From: from, To: to, Kind: Quiet, Piece: Pawn})
	}
	return dst
}

// AppendPawnDoublePushes appends two-square advances from the starting rank.
// Both the passed-over and the destination square must be empty.
func (p *Position) AppendPawnDoublePushes(dst []Move, c Color) []Move {
	fwd := forward(c)
	back := forward(c.Other())
	empty := ^p.AllOccupied()
	single := (p.boards[c][Pawn] & doublePushRank(c)).Shift(fwd) & empty
	targets := single.Shift(fwd) & empty
	for targets != 0 {
		to := popLSB(&targets)
		from := to.Bitboard().Shift(back).Shift(back).Square()
		dst = append(dst, Move{From: from, To: to, Kind: DoublePawnPush, Piece: Pawn})
	}
	return dst
}

// AppendPawnCaptures appends diagonal captures of enemy pieces short of the
// promotion rank.
func (p *Position) AppendPawnCaptures(dst []Move, c Color) []Move {
	enemies := p.Enemies(c)
	pawns := p.boards[c][Pawn]
	for _, d := range pawnCaptureDirections(c) {
		targets := pawns.Shift(d) & enemies &^ promotionRank(c)
		for targets != 0 {
			to := popLSB(&targets)
			from := to.Bitboard().Shift(opposite(d)).Square()
			dst = append(dst, Move{From: from, To: to, Kind: Capture, Piece: Pawn})
		}
	}
	return dst
}

// AppendEnPassantMoves appends captures onto the current en-passant target.
// The captured pawn sits beside the capturing pawn, behind the target square.
func (p *Position) AppendEnPassantMoves(dst []Move, c Color) []Move {
	ep := p.enPassantSquare.Bitboard()
	if ep == 0 {
		return dst
	}
	pawns := p.boards[c][Pawn]
	for _, d := range pawnCaptureDirections(c) {
		if pawns.Shift(d)&ep != 0 {
			from := ep.Shift(opposite(d)).Square()
			dst = append(dst, Move{From: from, To: p.enPassantSquare, Kind: EnPassant, Piece: Pawn})
		}
	}
	return dst
}

// AppendPromotions appends every pawn move that reaches the last rank, as a
// straight push or a diagonal capture, four times each: queen, rook, bishop
// and knight.
func (p *Position) AppendPromotions(dst []Move, c Color) []Move {
	pawns := p.boards[c][Pawn]
	last := promotionRank(c)
	fwd := forward(c)

	pushes := pawns.Shift(fwd) & ^p.AllOccupied() & last
	for pushes != 0 {
		to := popLSB(&pushes)
		from := to.Bitboard().Shift(opposite(fwd)).Square()
		dst = appendPromotions(dst, from, to)
	}
	enemies := p.Enemies(c)
	for _, d := range pawnCaptureDirections(c) {
		captures := pawns.Shift(d) & enemies & last
		for captures != 0 {
			to := popLSB(&captures)
			from := to.Bitboard().Shift(opposite(d)).Square()
			dst = appendPromotions(dst, from, to)
		}
	}
	return dst
}

func appendPromotions(dst []Move, from, to Square) []Move {
	for _, k := range promotionKinds {
		dst = append(dst, Move{From: from, To: to, Kind: k, Piece: Pawn})
	}
	return dst
}

// AppendPawnMoves appends all pseudolegal pawn moves.
func (p *Position) AppendPawnMoves(dst []Move, c Color) []Move {
	dst = p.AppendPawnPushes(dst, c)
	dst = p.AppendPawnDoublePushes(dst, c)
	dst = p.AppendPawnCaptures(dst, c)
	dst = p.AppendEnPassantMoves(dst, c)
	return p.AppendPromotions(dst, c)
}

// AppendPseudolegalMoves appends every pseudolegal move of color c in piece
// kind order: pawns, rooks, knights, bishops, queens, king. Castling is not
// included.
func (p *Position) AppendPseudolegalMoves(dst []Move, c Color) []Move {
	dst = p.AppendPawnMoves(dst, c)
	dst = p.AppendRookMoves(dst, c)
	dst = p.AppendKnightMoves(dst, c)
	dst = p.AppendBishopMoves(dst, c)
	dst = p.AppendQueenMoves(dst, c)
	return p.AppendKingMoves(dst, c)
}

// PseudolegalMoves returns all pseudolegal moves of color c (allocates a new slice).
func (p *Position) PseudolegalMoves(c Color) []Move {
	return p.AppendPseudolegalMoves(make([]Move, 0, 128), c)
}

// opposite returns the reverse of d.
func opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	}
	return NorthEast
}
