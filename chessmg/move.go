package chessmg

// MoveKind tags what a move does beyond relocating a piece.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePawnPush
	EnPassant
	CastleKingside
	CastleQueenside
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

var moveKindNames = [...]string{
	"quiet", "capture", "double-push", "en-passant", "castle-kingside",
	"castle-queenside", "promote-queen", "promote-rook", "promote-bishop", "promote-knight",
}

func (k MoveKind) String() string {
	if int(k) >= len(moveKindNames) {
		return "invalid"
	}
	return moveKindNames[k]
}

// promotionKinds is the order in which the four promotions of one pawn move
// are generated.
var promotionKinds = [4]MoveKind{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// Move is an immutable move record. It is only meaningful relative to the
// position it was generated from. Moves compare with ==.
type Move struct {
	From  Square
	To    Square
	Kind  MoveKind
	Piece PieceType // the moving piece, Pawn for promotions
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind >= PromoteQueen && m.Kind <= PromoteKnight }

// IsCastle reports whether the move castles either way.
func (m Move) IsCastle() bool { return m.Kind == CastleKingside || m.Kind == CastleQueenside }

// Promotion returns the piece a pawn becomes, or NoPieceType.
func (m Move) Promotion() PieceType {
	switch m.Kind {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	}
	return NoPieceType
}

// String produces the long algebraic form used by UCI, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion() {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
