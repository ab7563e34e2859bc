// Package player provides the pluggable move sources for a game: human
// input relayed from a presentation layer, uniform-random selection, and
// minimax search. New strategies implement Player without touching the
// engine.
package player

import (
	"errors"

	"ninarow/game"
)

// Player produces the next move for mark on the given board. The board is
// shared state owned by the engine; implementations must leave it exactly
// as they found it.
type Player interface {
	ChooseMove(b *game.Board, mark game.Mark) (game.Move, error)
}

// ErrAwaitingInput reports that a human player has no pending coordinate
// yet. The engine treats it as "come back next loop iteration", not as a
// failure.
var ErrAwaitingInput = errors.New("awaiting input")
