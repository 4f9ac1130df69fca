package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode    = errors.New("invalid game mode")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrMoveNotLegal   = errors.New("move is not legal")
	ErrGameOver       = errors.New("game is over")
	ErrFENUnsupported = errors.New("FEN needs standard 8x8 bounds")
)

// IllegalMoveError reports a rejected movement. The game is left untouched.
type IllegalMoveError struct {
	Move   Movement
	Reason error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s to %s: %v", e.Move.From, e.Move.To, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Reason
}
