package chessmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [2][numPieceTypes][64]uint64 // indexed by color, piece type, square
var zobristCastle [16]uint64                  // one key per castling rights state
var zobristEnPassant [8]uint64                // en passant file
var zobristSide uint64                        // Black to move

func init() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for pt := 0; pt < numPieceTypes; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the position. Two positions that agree on
// piece placement, side to move, castling rights and capturable en-passant
// file share a key; the clocks are not hashed. An en-passant target no pawn
// can take does not change the key.
func (p *Position) Hash() uint64 {
	var key uint64
	for c := 0; c < 2; c++ {
		for pt := 0; pt < numPieceTypes; pt++ {
			for b := p.boards[c][pt]; b != 0; {
				key ^= zobristPiece[c][pt][popLSB(&b)]
			}
		}
	}
	if p.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castlingRights&AllCastling]
	ep := p.enPassantSquare.Bitboard()
	if pawnAttacks(p.boards[p.sideToMove][Pawn], p.sideToMove)&ep != 0 {
		key ^= zobristEnPassant[p.enPassantSquare.File()]
	}
	return key
}
