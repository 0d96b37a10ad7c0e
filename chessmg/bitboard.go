package chessmg

import "math/bits"

// Bitboard is a 64-bit occupancy mask. Bit 0 is a1, bit 7 is h1 and bit 63
// is h8.
type Bitboard uint64

// Square is a board index in [0, 63], a1 = 0 and h8 = 63.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	EmptyBB Bitboard = 0

	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = fileA << 7
	rank1 Bitboard = 0xFF
	rank2 Bitboard = rank1 << 8
	rank7 Bitboard = rank1 << 48
	rank8 Bitboard = rank1 << 56
)

// SquareAt returns the square on the given file and rank (both 0..7), or
// NoSquare when either coordinate is off the board.
func SquareAt(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int { return int(s) >> 3 }

// Valid reports whether s names a square on the board.
func (s Square) Valid() bool { return s >= A1 && s <= H8 }

// Bitboard returns the one-hot mask for s, or EmptyBB for NoSquare.
func (s Square) Bitboard() Bitboard {
	if !s.Valid() {
		return EmptyBB
	}
	return Bitboard(1) << uint(s)
}

// String returns the algebraic name, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// IsSquare reports whether exactly one bit is set.
func (b Bitboard) IsSquare() bool { return b != 0 && b&(b-1) == 0 }

// Square returns the index of the lowest set bit, or NoSquare when b is empty.
func (b Bitboard) Square() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }

// Count returns the number of set bits.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// Split breaks b into its single-bit masks, lowest square first.
func (b Bitboard) Split() []Bitboard {
	out := make([]Bitboard, 0, b.Count())
	for b != 0 {
		lsb := b & -b
		out = append(out, lsb)
		b &^= lsb
	}
	return out
}

// Squares lists the set squares, lowest first.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, popLSB(&b))
	}
	return out
}

// popLSB removes and returns the least significant set square from the mask.
func popLSB(mask *Bitboard) Square {
	idx := bits.TrailingZeros64(uint64(*mask))
	*mask &= *mask - 1
	return Square(idx)
}

// Direction is one of the eight single-step compass directions.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var (
	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	kingDirections   = [8]Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

	// knightLegs are the compound offsets of a knight jump. Each jump is two
	// single steps, so a jump that would wrap around an edge loses its bit on
	// one of the legs.
	knightLegs = [8][2]Direction{
		{North, NorthEast}, {North, NorthWest},
		{South, SouthEast}, {South, SouthWest},
		{East, NorthEast}, {East, SouthEast},
		{West, NorthWest}, {West, SouthWest},
	}
)

var directionNames = [...]string{"north", "south", "east", "west", "northeast", "northwest", "southeast", "southwest"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Shift moves every bit of b one step in direction d. Bits that would leave
// the board are dropped, never wrapped onto the opposite edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileH) << 1
	case West:
		return (b &^ fileA) >> 1
	case NorthEast:
		return (b &^ fileH) << 9
	case NorthWest:
		return (b &^ fileA) << 7
	case SouthEast:
		return (b &^ fileH) >> 7
	case SouthWest:
		return (b &^ fileA) >> 9
	}
	return EmptyBB
}

// North and friends are single-direction shorthands for Shift.
func (b Bitboard) North() Bitboard     { return b.Shift(North) }
func (b Bitboard) South() Bitboard     { return b.Shift(South) }
func (b Bitboard) East() Bitboard      { return b.Shift(East) }
func (b Bitboard) West() Bitboard      { return b.Shift(West) }
func (b Bitboard) NorthEast() Bitboard { return b.Shift(NorthEast) }
func (b Bitboard) NorthWest() Bitboard { return b.Shift(NorthWest) }
func (b Bitboard) SouthEast() Bitboard { return b.Shift(SouthEast) }
func (b Bitboard) SouthWest() Bitboard { return b.Shift(SouthWest) }

// knightJumps returns every square a knight on any bit of b could jump to.
func knightJumps(b Bitboard) Bitboard {
	var out Bitboard
	for _, leg := range knightLegs {
		out |= b.Shift(leg[0]).Shift(leg[1])
	}
	return out
}

// kingSteps returns every square one king step from any bit of b.
func kingSteps(b Bitboard) Bitboard {
	var out Bitboard
	for _, d := range kingDirections {
		out |= b.Shift(d)
	}
	return out
}

// slide floods from every bit of b in direction d. The first occupied square
// on each ray is included and stops that ray.
func slide(b Bitboard, d Direction, occ Bitboard) Bitboard {
	var out Bitboard
	ray := b.Shift(d)
	for ray != 0 {
		out |= ray
		ray = (ray &^ occ).Shift(d)
	}
	return out
}

// String renders b as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	buf := make([]byte, 0, 72)
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			if b.Has(SquareAt(f, r)) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
