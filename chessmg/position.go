package chessmg

import "fmt"

// Descriptor is the plain field-by-field description of a position, as
// produced by a parser. NewPosition trusts it: the piece masks must already
// be pairwise disjoint and each side must have exactly one king.
type Descriptor struct {
	// Pieces is indexed by [Color][PieceType].
	Pieces         [2][6]Bitboard
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when unset
	HalfmoveClock  int
	FullmoveNumber int
}

// Position is the mutable game state: twelve piece masks, side to move,
// castling rights, en-passant target and clocks. It is a small value type;
// copying a Position gives a fully independent board.
//
// After construction a Position changes only through MakeMove/UnmakeMove (or
// the copying Apply), which keep the piece masks disjoint and never restore a
// cleared castling right.
type Position struct {
	// Piece bitboards indexed by color then piece type
	boards [2][numPieceTypes]Bitboard

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square (if a pawn moved two steps last move, otherwise NoSquare)
	enPassantSquare Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int
}

// NewPosition builds a position from an already validated descriptor.
func NewPosition(d Descriptor) Position {
	p := Position{
		sideToMove:      d.SideToMove,
		castlingRights:  d.Castling & AllCastling,
		enPassantSquare: d.EnPassant,
		halfmoveClock:   d.HalfmoveClock,
		fullmoveNumber:  d.FullmoveNumber,
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < numPieceTypes; pt++ {
			p.boards[c][pt] = d.Pieces[c][pt]
		}
	}
	if !p.enPassantSquare.Valid() {
		p.enPassantSquare = NoSquare
	}
	return p
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	var d Descriptor
	d.Pieces[White][Pawn] = rank2
	d.Pieces[White][Rook] = A1.Bitboard() | H1.Bitboard()
	d.Pieces[White][Knight] = B1.Bitboard() | G1.Bitboard()
	d.Pieces[White][Bishop] = C1.Bitboard() | F1.Bitboard()
	d.Pieces[White][Queen] = D1.Bitboard()
	d.Pieces[White][King] = E1.Bitboard()
	d.Pieces[Black][Pawn] = rank7
	d.Pieces[Black][Rook] = A8.Bitboard() | H8.Bitboard()
	d.Pieces[Black][Knight] = B8.Bitboard() | G8.Bitboard()
	d.Pieces[Black][Bishop] = C8.Bitboard() | F8.Bitboard()
	d.Pieces[Black][Queen] = D8.Bitboard()
	d.Pieces[Black][King] = E8.Bitboard()
	d.SideToMove = White
	d.Castling = AllCastling
	d.EnPassant = NoSquare
	d.FullmoveNumber = 1
	return NewPosition(d)
}

// Descriptor returns the position's fields in descriptor form.
func (p *Position) Descriptor() Descriptor {
	d := Descriptor{
		SideToMove:     p.sideToMove,
		Castling:       p.castlingRights,
		EnPassant:      p.enPassantSquare,
		HalfmoveClock:  p.halfmoveClock,
		FullmoveNumber: p.fullmoveNumber,
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < numPieceTypes; pt++ {
			d.Pieces[c][pt] = p.boards[c][pt]
		}
	}
	return d
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Castling returns the remaining castling rights.
func (p *Position) Castling() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfmoveClock accessor for consumers that want read-only access.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Pieces returns the mask of one piece kind of one color.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard { return p.boards[c][pt] }

// Friends returns every square occupied by c.
func (p *Position) Friends(c Color) Bitboard {
	b := &p.boards[c]
	return b[Pawn] | b[Rook] | b[Knight] | b[Bishop] | b[Queen] | b[King]
}

// Enemies returns every square occupied by the opponent of c.
func (p *Position) Enemies(c Color) Bitboard { return p.Friends(c.Other()) }

// AllOccupied returns every occupied square.
func (p *Position) AllOccupied() Bitboard { return p.Friends(White) | p.Friends(Black) }

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	bit := sq.Bitboard()
	if bit == 0 {
		return Piece{}, false
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < NoPieceType; pt++ {
			if p.boards[c][pt]&bit != 0 {
				return Piece{Color: c, Type: pt}, true
			}
		}
	}
	return Piece{}, false
}

// KingSquare returns the square of c's king. A king mask without exactly one
// bit means the position is corrupt, and KingSquare panics.
func (p *Position) KingSquare(c Color) Square {
	k := p.boards[c][King]
	if !k.IsSquare() {
		panic(fmt.Sprintf("chessmg: %s king mask %#x does not hold exactly one king", c, uint64(k)))
	}
	return k.Square()
}

// Overlap describes two piece masks that share squares.
type Overlap struct {
	A, B    Piece
	Squares Bitboard
}

// CheckDisjoint returns every pair of piece masks that overlap. A position
// built from a valid descriptor and evolved by move application has none.
func (p *Position) CheckDisjoint() []Overlap {
	var out []Overlap
	for i := 0; i < 2*numPieceTypes; i++ {
		ci, ti := i/numPieceTypes, i%numPieceTypes
		for j := i + 1; j < 2*numPieceTypes; j++ {
			cj, tj := j/numPieceTypes, j%numPieceTypes
			if common := p.boards[ci][ti] & p.boards[cj][tj]; common != 0 {
				out = append(out, Overlap{
					A:       Piece{Color: Color(ci), Type: PieceType(ti)},
					B:       Piece{Color: Color(cj), Type: PieceType(tj)},
					Squares: common,
				})
			}
		}
	}
	return out
}
