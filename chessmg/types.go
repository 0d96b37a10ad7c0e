package chessmg

// Color is the side owning a piece or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. The numbering is also the order in
// which the generator visits piece kinds.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NoPieceType
)

const numPieceTypes = int(NoPieceType)

var pieceTypeNames = [...]string{"pawn", "rook", "knight", "bishop", "queen", "king", "none"}

func (pt PieceType) String() string {
	if pt > NoPieceType {
		return "invalid"
	}
	return pieceTypeNames[pt]
}

// Piece pairs a kind with its owner.
type Piece struct {
	Color Color
	Type  PieceType
}

// Castling rights bit flags. Each flag is independent and, once cleared by
// move application, never set again.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	NoCastling  CastlingRights = 0
	AllCastling                = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// kingside and queenside return the flag for the given color.
func kingside(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteK
	}
	return CastlingBlackK
}

func queenside(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteQ
	}
	return CastlingBlackQ
}
