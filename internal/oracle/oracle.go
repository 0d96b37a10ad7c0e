// Package oracle cross-checks perft divide counts between move generators.
// Besides the native chessmg generator it wraps two independent
// implementations, dragontoothmg and GooseEngineMG's goosemg, so a
// disagreement can be traced to the first root move that differs.
package oracle

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
	"chess-rules/notation"
)

// Counter produces perft divide counts keyed by UCI move text.
type Counter interface {
	Name() string
	Divide(fen string, depth int) (map[string]uint64, error)
}

// Native runs the chessmg generator.
type Native struct {
	// Workers > 1 spreads the root moves over that many goroutines.
	Workers int
}

func (Native) Name() string { return "chessmg" }

func (n Native) Divide(fen string, depth int) (map[string]uint64, error) {
	p, err := notation.ParsePosition(fen)
	if err != nil {
		return nil, err
	}
	var div map[chessmg.Move]uint64
	if n.Workers > 1 {
		div = chessmg.ParallelPerftDivide(p, depth, n.Workers)
	} else {
		div = chessmg.PerftDivide(p, depth)
	}
	out := make(map[string]uint64, len(div))
	for m, c := range div {
		out[m.String()] = c
	}
	return out, nil
}

// Mismatch is one root move on which two counters disagree. A move missing
// from one side has Has set to false for that side.
type Mismatch struct {
	Move            string
	Want, Got       uint64
	HasWant, HasGot bool
}

func (m Mismatch) String() string {
	switch {
	case !m.HasWant:
		return fmt.Sprintf("%s: unexpected move (got %d)", m.Move, m.Got)
	case !m.HasGot:
		return fmt.Sprintf("%s: missing move (want %d)", m.Move, m.Want)
	}
	return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
}

// Compare lists the moves on which got differs from want, sorted by move text.
func Compare(want, got map[string]uint64) []Mismatch {
	keys := maps.Keys(want)
	for k := range got {
		if _, ok := want[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var out []Mismatch
	for _, k := range keys {
		w, hasW := want[k]
		g, hasG := got[k]
		if hasW && hasG && w == g {
			continue
		}
		out = append(out, Mismatch{Move: k, Want: w, Got: g, HasWant: hasW, HasGot: hasG})
	}
	return out
}

// Verify runs both counters on the same position and reports their
// differences, with ref as the expected side.
func Verify(fen string, depth int, ref, subject Counter) ([]Mismatch, error) {
	want, err := ref.Divide(fen, depth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Name(), err)
	}
	got, err := subject.Divide(fen, depth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", subject.Name(), err)
	}
	return Compare(want, got), nil
}

// Total sums divide counts.
func Total(div map[string]uint64) uint64 {
	var sum uint64
	for _, n := range div {
		sum += n
	}
	return sum
}

// SortedKeys returns the move texts of a divide result in lexical order.
func SortedKeys(div map[string]uint64) []string {
	keys := maps.Keys(div)
	slices.Sort(keys)
	return keys
}

// ByName returns the counter registered under name ("chessmg",
// "dragontooth" or "goose").
func ByName(name string) (Counter, error) {
	switch strings.ToLower(name) {
	case "chessmg", "native":
		return Native{}, nil
	case "dragontooth", "dragontoothmg":
		return Dragontooth{}, nil
	case "goose", "goosemg":
		return Goose{}, nil
	}
	return nil, fmt.Errorf("oracle: unknown move generator %q", name)
}
