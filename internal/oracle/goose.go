package oracle

import (
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// Goose counts with the goosemg package of github.com/Oliverans/GooseEngineMG.
type Goose struct{}

func (Goose) Name() string { return "goosemg" }

func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	out := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(board, depth) {
		out[strings.ToLower(m.String())] = n
	}
	return out, nil
}
