package chessmg

// MoveState holds what is needed to undo a move: the move and the complete
// pre-move position. Positions are small, so restoring the snapshot is the
// exact inverse of every move kind, rights and clocks included.
type MoveState struct {
	move  Move
	prior Position
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// Prior returns the position before the move was made.
func (st MoveState) Prior() Position { return st.prior }

// rightsLost maps a square to the castling rights that disappear when a move
// leaves from or lands on it: the king's and rooks' home squares.
var rightsLost [64]CastlingRights

func init() {
	rightsLost[E1] = CastlingWhiteK | CastlingWhiteQ
	rightsLost[H1] = CastlingWhiteK
	rightsLost[A1] = CastlingWhiteQ
	rightsLost[E8] = CastlingBlackK | CastlingBlackQ
	rightsLost[H8] = CastlingBlackK
	rightsLost[A8] = CastlingBlackQ
}

// MakeMove applies m in place and returns the state needed by UnmakeMove.
// m must come from LegalMoves of this position; it is not re-verified.
func (p *Position) MakeMove(m Move) MoveState {
	st := MoveState{move: m, prior: *p}
	p.apply(m)
	return st
}

// UnmakeMove undoes a previously made move, restoring the position bit for
// bit.
func (p *Position) UnmakeMove(st MoveState) {
	*p = st.prior
}

// Apply returns the position reached by playing m, leaving p unchanged.
func (p Position) Apply(m Move) Position {
	p.apply(m)
	return p
}

// apply executes every side effect of m.
func (p *Position) apply(m Move) {
	us := p.sideToMove
	them := us.Other()
	fromBB := m.From.Bitboard()
	toBB := m.To.Bitboard()

	// Clear the destination from every enemy mask; this is the capture.
	captured := false
	enemy := &p.boards[them]
	for pt := range enemy {
		if enemy[pt]&toBB != 0 {
			enemy[pt] &^= toBB
			captured = true
		}
	}

	p.boards[us][m.Piece] &^= fromBB
	if promo := m.Promotion(); promo != NoPieceType {
		p.boards[us][promo] |= toBB
	} else {
		p.boards[us][m.Piece] |= toBB
	}

	p.enPassantSquare = NoSquare
	switch m.Kind {
	case DoublePawnPush:
		p.enPassantSquare = fromBB.Shift(forward(us)).Square()
	case EnPassant:
		// The captured pawn is one rank behind the target square.
		enemy[Pawn] &^= toBB.Shift(forward(them))
		captured = true
	case CastleKingside, CastleQueenside:
		r := castleRuleFor(us, m.Kind)
		p.boards[us][Rook] = p.boards[us][Rook]&^r.rookFrom.Bitboard() | r.rookTo.Bitboard()
	}

	p.castlingRights &^= rightsLost[m.From] | rightsLost[m.To]

	if m.Piece == Pawn || captured {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = them
}
