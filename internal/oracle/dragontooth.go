package oracle

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-rules/notation"
)

// Dragontooth counts with github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) Divide(fen string, depth int) (out map[string]uint64, err error) {
	// dragontoothmg trusts its input; reject bad records before handing them over.
	if _, err := notation.ParseFEN(fen); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("dragontoothmg: %v", r)
		}
	}()
	board := dragontoothmg.ParseFen(fen)
	out = make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range board.GenerateLegalMoves() {
		mv := m
		unapply := board.Apply(mv)
		out[strings.ToLower(mv.String())] = dragontoothPerft(&board, depth-1)
		unapply()
	}
	return out, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}
