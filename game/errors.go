package game

import "errors"

var (
	// ErrInvalidConfig reports a board size / win length combination that
	// cannot produce a playable game.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrIllegalMove reports a move targeting an occupied or out-of-range
	// cell. The board is left unchanged and the caller may retry.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidUndo reports an undo that is not the exact reverse of the
	// most recent apply. This is an internal defect in the caller's
	// backtracking and the search in progress must be aborted.
	ErrInvalidUndo = errors.New("undo out of order")
)
