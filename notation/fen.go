// Package notation converts between chess positions and text: FEN records,
// algebraic square names, UCI move strings and a human-readable board.
package notation

import (
	"strconv"
	"strings"

	"chess-rules/chessmg"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding piece.
func pieceFromChar(ch rune) (chessmg.Piece, bool) {
	color := chessmg.White
	if ch >= 'a' && ch <= 'z' {
		color = chessmg.Black
		ch -= 'a' - 'A'
	}
	var pt chessmg.PieceType
	switch ch {
	case 'P':
		pt = chessmg.Pawn
	case 'R':
		pt = chessmg.Rook
	case 'N':
		pt = chessmg.Knight
	case 'B':
		pt = chessmg.Bishop
	case 'Q':
		pt = chessmg.Queen
	case 'K':
		pt = chessmg.King
	default:
		return chessmg.Piece{}, false
	}
	return chessmg.Piece{Color: color, Type: pt}, true
}

// charFromPiece converts a piece to its FEN character.
func charFromPiece(p chessmg.Piece) byte {
	ch := "PRNBQK"[p.Type]
	if p.Color == chessmg.Black {
		ch += 'a' - 'A'
	}
	return ch
}

// ParseFEN parses a FEN record into a position descriptor. The halfmove and
// fullmove fields may be omitted and default to 0 and 1. Besides syntax,
// ParseFEN checks the invariants the move generator relies on: one king per
// side, no pawns on the back ranks, and an en-passant square on the rank
// behind a pawn that just advanced two squares.
func ParseFEN(fen string) (chessmg.Descriptor, error) {
	var d chessmg.Descriptor
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return d, fenError("record", fen, "want 4 to 6 space-separated fields")
	}
	d.EnPassant = chessmg.NoSquare
	d.FullmoveNumber = 1

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return d, fenError("placement", fields[0], "want 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := pieceFromChar(ch)
			if !ok {
				return d, fenError("placement", string(ch), "unrecognized piece character")
			}
			if file >= 8 {
				return d, fenError("placement", rankStr, "too many squares in rank")
			}
			d.Pieces[piece.Color][piece.Type] |= chessmg.SquareAt(file, rank).Bitboard()
			file++
		}
		if file != 8 {
			return d, fenError("placement", rankStr, "rank does not have 8 files")
		}
	}
	for _, c := range []chessmg.Color{chessmg.White, chessmg.Black} {
		if n := d.Pieces[c][chessmg.King].Count(); n != 1 {
			return d, fenError("placement", fields[0], c.String()+" must have exactly one king, has "+strconv.Itoa(n))
		}
	}
	backRanks := chessmg.Bitboard(0xFF00_0000_0000_00FF)
	if (d.Pieces[chessmg.White][chessmg.Pawn]|d.Pieces[chessmg.Black][chessmg.Pawn])&backRanks != 0 {
		return d, fenError("placement", fields[0], "pawn on first or eighth rank")
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		d.SideToMove = chessmg.White
	case "b":
		d.SideToMove = chessmg.Black
	default:
		return d, fenError("side", fields[1], "side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var r chessmg.CastlingRights
			switch ch {
			case 'K':
				r = chessmg.CastlingWhiteK
			case 'Q':
				r = chessmg.CastlingWhiteQ
			case 'k':
				r = chessmg.CastlingBlackK
			case 'q':
				r = chessmg.CastlingBlackQ
			default:
				return d, fenError("castling", fields[2], "invalid castling rights character")
			}
			if d.Castling.Has(r) {
				return d, fenError("castling", fields[2], "repeated castling right")
			}
			d.Castling |= r
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return d, fenError("en passant", fields[3], "not a square")
		}
		wantRank := 5
		if d.SideToMove == chessmg.Black {
			wantRank = 2
		}
		if sq.Rank() != wantRank {
			return d, fenError("en passant", fields[3], "wrong rank for side to move")
		}
		d.EnPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return d, fenError("halfmove", fields[4], "not a non-negative number")
		}
		d.HalfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return d, fenError("fullmove", fields[5], "not a positive number")
		}
		d.FullmoveNumber = fullmove
	}
	return d, nil
}

// ParsePosition parses a FEN record straight into a Position.
func ParsePosition(fen string) (chessmg.Position, error) {
	d, err := ParseFEN(fen)
	if err != nil {
		return chessmg.Position{}, err
	}
	return chessmg.NewPosition(d), nil
}

// MustParsePosition is ParsePosition for trusted input; it panics on error.
func MustParsePosition(fen string) chessmg.Position {
	p, err := ParsePosition(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FormatFEN produces the FEN record of a position.
func FormatFEN(p chessmg.Position) string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece, ok := p.PieceAt(chessmg.SquareAt(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.SideToMove() == chessmg.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	cr := p.Castling()
	if cr == chessmg.NoCastling {
		sb.WriteByte('-')
	} else {
		for i, r := range []chessmg.CastlingRights{chessmg.CastlingWhiteK, chessmg.CastlingWhiteQ, chessmg.CastlingBlackK, chessmg.CastlingBlackQ} {
			if cr.Has(r) {
				sb.WriteByte("KQkq"[i])
			}
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(p.EnPassantSquare().String())
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(p.HalfmoveClock()))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(p.FullmoveNumber()))
	return sb.String()
}
