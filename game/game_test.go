package game_test

import (
	"errors"
	"testing"

	"chess-rules/chessmg"
	"chess-rules/game"
	"chess-rules/internal/testutil"
	"chess-rules/notation"
)

func play(t *testing.T, g *game.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.PushText(m); err != nil {
			t.Fatalf("push %s: %v", m, err)
		}
	}
}

func TestPushPop(t *testing.T) {
	g := game.New(chessmg.StartingPosition())
	play(t, g, "e2e4", "e7e5", "g1f3")
	if g.Ply() != 3 {
		t.Fatalf("ply: got %d want 3", g.Ply())
	}
	if got := notation.FormatMoves(g.Moves()); got != "e2e4 e7e5 g1f3" {
		t.Fatalf("moves: got %q", got)
	}
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := notation.FormatFEN(g.Position()); got != want {
		t.Fatalf("fen: got %q want %q", got, want)
	}

	for i := 0; i < 3; i++ {
		if _, ok := g.Pop(); !ok {
			t.Fatalf("pop %d failed", i)
		}
	}
	if _, ok := g.Pop(); ok {
		t.Fatalf("pop on an empty game succeeded")
	}
	testutil.AssertEqual(t, g.Position(), chessmg.StartingPosition(), "position after popping everything")
}

func TestPushRejectsIllegalMove(t *testing.T) {
	g := game.New(chessmg.StartingPosition())
	err := g.Push(chessmg.Move{From: chessmg.E2, To: chessmg.E5, Kind: chessmg.Quiet, Piece: chessmg.Pawn})
	if !errors.Is(err, game.ErrIllegalMove) {
		t.Fatalf("got %v want ErrIllegalMove", err)
	}
	if err := g.PushText("e1e2"); !errors.Is(err, game.ErrIllegalMove) {
		t.Fatalf("PushText: got %v want ErrIllegalMove", err)
	}
	if g.Ply() != 0 {
		t.Fatalf("rejected moves changed the game")
	}
}

func TestNewFromFENError(t *testing.T) {
	if _, err := game.NewFromFEN("8/8/8/8/8/8/8/8 w - - 0 1"); !errors.Is(err, notation.ErrInvalidFEN) {
		t.Fatalf("got %v want ErrInvalidFEN", err)
	}
}

func TestStatusCheckmate(t *testing.T) {
	g := game.New(chessmg.StartingPosition())
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if s := g.Status(); s != game.Checkmate {
		t.Fatalf("status: got %s want %s", s, game.Checkmate)
	}
	winner, ok := g.Winner()
	if !ok || winner != chessmg.Black {
		t.Fatalf("winner: got %s,%v want black", winner, ok)
	}
	if g.Status().IsDraw() {
		t.Fatalf("checkmate reported as a draw")
	}
}

func TestStatusStalemate(t *testing.T) {
	g, err := game.NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	if s := g.Status(); s != game.Stalemate || !s.IsDraw() {
		t.Fatalf("status: got %s want %s", s, game.Stalemate)
	}
	if _, ok := g.Winner(); ok {
		t.Fatalf("stalemate has no winner")
	}
}

func TestStatusFiftyMoveRule(t *testing.T) {
	g, err := game.NewFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	testutil.AssertNoError(t, err)
	if s := g.Status(); s != game.Ongoing {
		t.Fatalf("before: got %s want %s", s, game.Ongoing)
	}
	play(t, g, "a1a2")
	if s := g.Status(); s != game.FiftyMoveRule {
		t.Fatalf("after: got %s want %s", s, game.FiftyMoveRule)
	}
}

func TestStatusThreefoldRepetition(t *testing.T) {
	g := game.New(chessmg.StartingPosition())
	play(t, g, "g1f3", "g8f6", "f3g1", "f6g8")
	if s := g.Status(); s != game.Ongoing {
		t.Fatalf("second occurrence: got %s want %s", s, game.Ongoing)
	}
	play(t, g, "g1f3", "g8f6", "f3g1", "f6g8")
	if s := g.Status(); s != game.ThreefoldRepetition {
		t.Fatalf("third occurrence: got %s want %s", s, game.ThreefoldRepetition)
	}
	g.Pop()
	if s := g.Status(); s != game.Ongoing {
		t.Fatalf("after pop: got %s want %s", s, game.Ongoing)
	}
}

func TestRepetitionBrokenByPawnMove(t *testing.T) {
	g := game.New(chessmg.StartingPosition())
	play(t, g, "g1f3", "g8f6", "f3g1", "f6g8", "e2e3", "e7e6")
	play(t, g, "g1f3", "g8f6", "f3g1", "f6g8")
	if s := g.Status(); s != game.Ongoing {
		t.Fatalf("got %s want %s", s, game.Ongoing)
	}
}

func TestHasSufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/4KB2 w - - 0 1", false},
		{"4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", false}, // f8 and c1 are both dark
		{"4k1b1/8/8/8/8/8/8/2B1K3 w - - 0 1", true}, // g8 is light
		{"4kn2/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", true},
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", true},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", true},
	}
	for _, c := range cases {
		p := testutil.MustPosition(t, c.fen)
		if got := game.HasSufficientMaterial(p); got != c.want {
			t.Fatalf("%s: got %v want %v", c.fen, got, c.want)
		}
	}
	g, err := game.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	if s := g.Status(); s != game.InsufficientMaterial {
		t.Fatalf("bare kings: got %s want %s", s, game.InsufficientMaterial)
	}
}

func TestStatusString(t *testing.T) {
	if game.ThreefoldRepetition.String() != "threefold repetition" {
		t.Fatalf("got %q", game.ThreefoldRepetition.String())
	}
	if game.Status(42).String() != "unknown" {
		t.Fatalf("out of range status: got %q", game.Status(42).String())
	}
}
