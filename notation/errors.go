package notation

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check for them.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates text that does not name a square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that is malformed or names no legal
	// move in the position.
	ErrInvalidMove = errors.New("invalid move")
)

// FENError reports which FEN field was rejected. It unwraps to ErrInvalidFEN.
type FENError struct {
	Field  string // placement, side, castling, en passant, halfmove, fullmove
	Value  string // offending text
	Reason string
}

func (e *FENError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid FEN: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid FEN: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFEN so that errors.Is(err, ErrInvalidFEN) holds.
func (e *FENError) Unwrap() error { return ErrInvalidFEN }

func fenError(field, value, reason string) error {
	return &FENError{Field: field, Value: value, Reason: reason}
}
