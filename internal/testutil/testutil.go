// Package testutil provides shared test helpers for the chess-rules packages.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
	"chess-rules/notation"
)

// Well-known perft positions.
const (
	Kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	Position6 = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

// PositionOptions lets cmp look inside chessmg.Position.
var PositionOptions = cmp.Options{
	cmp.Transformer("Descriptor", func(p chessmg.Position) chessmg.Descriptor { return p.Descriptor() }),
}

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, PositionOptions); diff != "" {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

// AssertNoError fails the test immediately if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Fatalf("%s: unexpected error: %v", msg, err)
		}
		t.Fatalf("unexpected error: %v", err)
	}
}

// MustPosition parses fen or fails the test.
func MustPosition(t testing.TB, fen string) chessmg.Position {
	t.Helper()
	p, err := notation.ParsePosition(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return p
}

// MoveStrings returns the UCI text of moves in sorted order.
func MoveStrings(moves []chessmg.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// AssertMoves compares a move list against the expected UCI strings,
// ignoring order.
func AssertMoves(t testing.TB, got []chessmg.Move, want ...string) {
	t.Helper()
	w := slices.Clone(want)
	slices.Sort(w)
	if diff := cmp.Diff(w, MoveStrings(got)); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
