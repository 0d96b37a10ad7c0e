package notation_test

import (
	"errors"
	"testing"

	"chess-rules/chessmg"
	"chess-rules/internal/testutil"
	"chess-rules/notation"
)

func squares(sqs ...chessmg.Square) chessmg.Bitboard {
	var b chessmg.Bitboard
	for _, sq := range sqs {
		b |= sq.Bitboard()
	}
	return b
}

func TestParseFENStartPosition(t *testing.T) {
	d, err := notation.ParseFEN(notation.StartFEN)
	testutil.AssertNoError(t, err)
	p := chessmg.StartingPosition()
	testutil.AssertEqual(t, d, p.Descriptor())
}

func TestParseFENFields(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want func(d *chessmg.Descriptor)
	}{
		{
			name: "kings pawn",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: func(d *chessmg.Descriptor) {
				d.SideToMove = chessmg.Black
				d.EnPassant = chessmg.E3
				d.Pieces[chessmg.White][chessmg.Pawn] = 0xFF00&^squares(chessmg.E2) | squares(chessmg.E4)
			},
		},
		{
			name: "nf3 sicilian",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
			want: func(d *chessmg.Descriptor) {
				d.SideToMove = chessmg.Black
				d.HalfmoveClock = 1
				d.FullmoveNumber = 2
				d.Pieces[chessmg.White][chessmg.Pawn] = 0xFF00&^squares(chessmg.E2) | squares(chessmg.E4)
				d.Pieces[chessmg.White][chessmg.Knight] = squares(chessmg.B1, chessmg.F3)
				d.Pieces[chessmg.Black][chessmg.Pawn] = 0x00FF_0000_0000_0000&^squares(chessmg.C7) | squares(chessmg.C5)
			},
		},
		{
			name: "sicilian with 2.Ke2",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2",
			want: func(d *chessmg.Descriptor) {
				d.SideToMove = chessmg.Black
				d.Castling = chessmg.CastlingBlackK | chessmg.CastlingBlackQ
				d.HalfmoveClock = 1
				d.FullmoveNumber = 2
				d.Pieces[chessmg.White][chessmg.Pawn] = 0xFF00&^squares(chessmg.E2) | squares(chessmg.E4)
				d.Pieces[chessmg.White][chessmg.King] = squares(chessmg.E2)
				d.Pieces[chessmg.Black][chessmg.Pawn] = 0x00FF_0000_0000_0000&^squares(chessmg.C7) | squares(chessmg.C5)
			},
		},
	}
	for _, c := range cases {
		got, err := notation.ParseFEN(c.fen)
		testutil.AssertNoError(t, err, c.name)
		start := chessmg.StartingPosition()
		want := start.Descriptor()
		c.want(&want)
		testutil.AssertEqual(t, got, want, c.name)
	}
}

func TestParseFENEndgames(t *testing.T) {
	d, err := notation.ParseFEN("1K1k4/1P6/8/8/8/8/r7/2R5 w - - 0 60")
	testutil.AssertNoError(t, err)
	var want chessmg.Descriptor
	want.Pieces[chessmg.White][chessmg.Pawn] = squares(chessmg.B7)
	want.Pieces[chessmg.White][chessmg.Rook] = squares(chessmg.C1)
	want.Pieces[chessmg.White][chessmg.King] = squares(chessmg.B8)
	want.Pieces[chessmg.Black][chessmg.Rook] = squares(chessmg.A2)
	want.Pieces[chessmg.Black][chessmg.King] = squares(chessmg.D8)
	want.EnPassant = chessmg.NoSquare
	want.FullmoveNumber = 60
	testutil.AssertEqual(t, d, want)
}

func TestParseFENOptionalClocks(t *testing.T) {
	d, err := notation.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	testutil.AssertNoError(t, err)
	if d.HalfmoveClock != 0 || d.FullmoveNumber != 1 {
		t.Fatalf("clocks: got %d/%d want 0/1", d.HalfmoveClock, d.FullmoveNumber)
	}
}

func TestFormatFENRoundTrip(t *testing.T) {
	fens := []string{
		notation.StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 55",
		"1K1k4/1P6/8/8/8/8/r7/2R5 w - - 0 60",
		testutil.Kiwipete,
		testutil.Position5,
	}
	for _, fen := range fens {
		p := testutil.MustPosition(t, fen)
		if got := notation.FormatFEN(p); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	cases := []struct {
		fen   string
		field string
	}{
		{"", "record"},
		{"8/8/8/8/8/8/8/8 w - - 0 1 extra", "record"},
		{"4k3/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/4K4 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/4K2 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/4X3 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/3KK3 w - - 0 1", "placement"},
		{"P3k3/8/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side"},
		{"4k3/8/8/8/8/8/8/4K3 w KX - 0 1", "castling"},
		{"4k3/8/8/8/8/8/8/4K3 w KK - 0 1", "castling"},
		{"4k3/8/8/8/8/8/8/4K3 w - e9 0 1", "en passant"},
		{"4k3/8/8/8/8/8/8/4K3 w - e3 0 1", "en passant"},
		{"4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove"},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove"},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 x", "fullmove"},
	}
	for _, c := range cases {
		_, err := notation.ParseFEN(c.fen)
		if !errors.Is(err, notation.ErrInvalidFEN) {
			t.Fatalf("%q: got %v want ErrInvalidFEN", c.fen, err)
		}
		var fe *notation.FENError
		if !errors.As(err, &fe) {
			t.Fatalf("%q: error %v is not a *FENError", c.fen, err)
		}
		if fe.Field != c.field {
			t.Fatalf("%q: field got %q want %q", c.fen, fe.Field, c.field)
		}
	}
}

func TestMustParsePositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParsePosition accepted a bad record")
		}
	}()
	notation.MustParsePosition("not a fen")
}
