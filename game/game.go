// Package game tracks a sequence of moves on top of a chessmg.Position and
// derives the outcomes the rules engine leaves to its consumer: checkmate,
// stalemate, the fifty-move rule, threefold repetition and insufficient
// material.
package game

import (
	"errors"
	"fmt"

	"chess-rules/chessmg"
	"chess-rules/notation"
)

const fiftyMoveLimit = 100

// ErrIllegalMove is returned when a pushed move is not legal in the current
// position.
var ErrIllegalMove = errors.New("illegal move")

// state captures the information we need to reason about repetitions and draws.
type state struct {
	Hash   uint64
	Rule50 int
}

// Game is a position plus the moves that led to it. The zero value is not
// usable; create games with New or NewFromFEN.
type Game struct {
	pos    chessmg.Position
	stack  []chessmg.MoveState
	states []state
}

// New starts a game from the given position.
func New(p chessmg.Position) *Game {
	g := &Game{pos: p}
	g.pushState()
	return g
}

// NewFromFEN starts a game from a FEN record.
func NewFromFEN(fen string) (*Game, error) {
	p, err := notation.ParsePosition(fen)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Position returns the current position.
func (g *Game) Position() chessmg.Position { return g.pos }

// Ply returns the number of moves pushed.
func (g *Game) Ply() int { return len(g.stack) }

// Moves returns the moves played so far, oldest first.
func (g *Game) Moves() []chessmg.Move {
	out := make([]chessmg.Move, len(g.stack))
	for i, st := range g.stack {
		out[i] = st.Move()
	}
	return out
}

// Push plays m if it is legal in the current position.
func (g *Game) Push(m chessmg.Move) error {
	legal := false
	for _, lm := range g.pos.LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, notation.FormatFEN(g.pos))
	}
	g.stack = append(g.stack, g.pos.MakeMove(m))
	g.pushState()
	return nil
}

// PushText parses UCI move text against the current position and plays it.
func (g *Game) PushText(text string) error {
	m, err := notation.ParseMove(g.pos, text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return g.Push(m)
}

// Pop undoes the last move and returns it. ok is false when no move has been
// played.
func (g *Game) Pop() (m chessmg.Move, ok bool) {
	n := len(g.stack)
	if n == 0 {
		return chessmg.Move{}, false
	}
	st := g.stack[n-1]
	g.stack = g.stack[:n-1]
	g.states = g.states[:len(g.states)-1]
	g.pos.UnmakeMove(st)
	return st.Move(), true
}

func (g *Game) pushState() {
	g.states = append(g.states, state{
		Hash:   g.pos.Hash(),
		Rule50: g.pos.HalfmoveClock(),
	})
}

// repetitions counts earlier occurrences of the current position, looking
// back no further than the last capture or pawn move.
func (g *Game) repetitions() int {
	if len(g.states) <= 1 {
		return 0
	}
	curr := g.states[len(g.states)-1]
	start := len(g.states) - 1 - curr.Rule50
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i < len(g.states)-1; i++ {
		if g.states[i].Hash == curr.Hash {
			count++
		}
	}
	return count
}
