package chessmg

// forward is the direction pawns of c advance in.
func forward(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// pawnCaptureDirections are the two diagonal-forward steps of c's pawns.
func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{NorthWest, NorthEast}
	}
	return [2]Direction{SouthWest, SouthEast}
}

// pawnAttacks returns the diagonal-forward squares attacked by pawns of
// color c standing on any bit of pawns.
func pawnAttacks(pawns Bitboard, c Color) Bitboard {
	dirs := pawnCaptureDirections(c)
	return pawns.Shift(dirs[0]) | pawns.Shift(dirs[1])
}

// PawnAttackSquares returns every square attacked by a pawn of color c.
func (p *Position) PawnAttackSquares(c Color) Bitboard {
	return pawnAttacks(p.boards[c][Pawn], c)
}

// AttackSquares returns every square some piece of color c could capture on
// if an enemy stood there. Sliders stop at the first occupied square of either
// color and include it, so squares holding c's own pieces can be attacked.
func (p *Position) AttackSquares(c Color) Bitboard {
	b := &p.boards[c]
	occ := p.AllOccupied()

	attacks := pawnAttacks(b[Pawn], c)
	attacks |= knightJumps(b[Knight])
	attacks |= kingSteps(b[King])

	orth := b[Rook] | b[Queen]
	for _, d := range rookDirections {
		attacks |= slide(orth, d, occ)
	}
	diag := b[Bishop] | b[Queen]
	for _, d := range bishopDirections {
		attacks |= slide(diag, d, occ)
	}
	return attacks
}

// attackedBy reports whether any bit of target is attacked by color c. It
// looks outward from the target instead of building c's full attack set; the
// answer is the same as target&AttackSquares(c) != 0.
func (p *Position) attackedBy(target Bitboard, c Color) bool {
	b := &p.boards[c]
	if pawnAttacks(b[Pawn], c)&target != 0 {
		return true
	}
	if knightJumps(target)&b[Knight] != 0 {
		return true
	}
	if kingSteps(target)&b[King] != 0 {
		return true
	}
	occ := p.AllOccupied()
	if orth := b[Rook] | b[Queen]; orth != 0 {
		for _, d := range rookDirections {
			if slide(target, d, occ)&orth != 0 {
				return true
			}
		}
	}
	if diag := b[Bishop] | b[Queen]; diag != 0 {
		for _, d := range bishopDirections {
			if slide(target, d, occ)&diag != 0 {
				return true
			}
		}
	}
	return false
}

// IsSquareAttacked reports whether sq is attacked by color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.attackedBy(sq.Bitboard(), by)
}

// IsKingAttacked reports whether c's king stands on a square attacked by the
// opponent. It panics if c does not have exactly one king.
func (p *Position) IsKingAttacked(c Color) bool {
	return p.attackedBy(p.KingSquare(c).Bitboard(), c.Other())
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.IsKingAttacked(p.sideToMove) }
