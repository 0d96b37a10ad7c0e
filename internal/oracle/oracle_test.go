package oracle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chess-rules/internal/testutil"
	"chess-rules/notation"
)

func TestCompare(t *testing.T) {
	want := map[string]uint64{"e2e4": 20, "d2d4": 20, "g1f3": 20}
	got := map[string]uint64{"e2e4": 20, "d2d4": 21, "b1c3": 20}
	diffs := Compare(want, got)
	expected := []Mismatch{
		{Move: "b1c3", Got: 20, HasGot: true},
		{Move: "d2d4", Want: 20, Got: 21, HasWant: true, HasGot: true},
		{Move: "g1f3", Want: 20, HasWant: true},
	}
	if diff := cmp.Diff(expected, diffs); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if len(Compare(want, want)) != 0 {
		t.Fatalf("identical maps reported differences")
	}
}

func TestMismatchString(t *testing.T) {
	cases := []struct {
		m    Mismatch
		want string
	}{
		{Mismatch{Move: "a2a3", Got: 5, HasGot: true}, "a2a3: unexpected move (got 5)"},
		{Mismatch{Move: "a2a3", Want: 5, HasWant: true}, "a2a3: missing move (want 5)"},
		{Mismatch{Move: "a2a3", Want: 5, Got: 6, HasWant: true, HasGot: true}, "a2a3: got 6 want 5"},
	}
	for _, c := range cases {
		if got := c.m.String(); got != c.want {
			t.Fatalf("got %q want %q", got, c.want)
		}
	}
}

func TestNativeDivide(t *testing.T) {
	div, err := Native{}.Divide(notation.StartFEN, 3)
	testutil.AssertNoError(t, err)
	if len(div) != 20 || Total(div) != 8902 {
		t.Fatalf("divide: %d moves, %d nodes; want 20, 8902", len(div), Total(div))
	}
	if div["e2e4"] != 600 {
		t.Fatalf("e2e4: got %d want 600", div["e2e4"])
	}
	par, err := Native{Workers: 4}.Divide(notation.StartFEN, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, par, div, "parallel divide")

	if _, err := (Native{}).Divide("bad", 1); !errors.Is(err, notation.ErrInvalidFEN) {
		t.Fatalf("got %v want ErrInvalidFEN", err)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]uint64{"g1f3": 1, "a2a3": 1, "e2e4": 1})
	if diff := cmp.Diff([]string{"a2a3", "e2e4", "g1f3"}, keys); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestByName(t *testing.T) {
	for name, want := range map[string]string{
		"chessmg":     "chessmg",
		"Dragontooth": "dragontoothmg",
		"goose":       "goosemg",
	} {
		c, err := ByName(name)
		testutil.AssertNoError(t, err, name)
		if c.Name() != want {
			t.Fatalf("%s: got %q want %q", name, c.Name(), want)
		}
	}
	if _, err := ByName("stockfish"); err == nil {
		t.Fatalf("unknown generator accepted")
	}
}

// Cross-checks against independent generators.
func TestAgreesWithReferenceGenerators(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cross-generator perft in short mode")
	}
	positions := []string{
		notation.StartFEN,
		testutil.Kiwipete,
		testutil.Position3,
		testutil.Position4,
		testutil.Position5,
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, ref := range []Counter{Dragontooth{}, Goose{}} {
		for _, fen := range positions {
			diffs, err := Verify(fen, 3, ref, Native{})
			testutil.AssertNoError(t, err, "%s on %s", ref.Name(), fen)
			for _, d := range diffs {
				t.Errorf("%s on %s: %s", ref.Name(), fen, d)
			}
		}
	}
}

func TestDragontoothRejectsBadFEN(t *testing.T) {
	if _, err := (Dragontooth{}).Divide("8/8/8/8/8/8/8/8 w - - 0 1", 1); !errors.Is(err, notation.ErrInvalidFEN) {
		t.Fatalf("got %v want ErrInvalidFEN", err)
	}
}
