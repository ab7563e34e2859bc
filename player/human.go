package player

import "ninarow/game"

// Human relays coordinates from the presentation layer (a click, a typed
// coordinate) into the game. It computes nothing itself: ChooseMove
// reports ErrAwaitingInput until Provide is called.
type Human struct {
	pending bool
	row     int
	col     int
}

func NewHuman() *Human {
	return &Human{}
}

// Provide stores the next coordinate to play. A second call before the
// move is consumed replaces the first.
func (h *Human) Provide(row, col int) {
	h.row = row
	h.col = col
	h.pending = true
}

// ChooseMove consumes the pending coordinate. An occupied or out-of-range
// coordinate fails with game.ErrIllegalMove and is discarded, so the
// presentation layer must prompt again.
func (h *Human) ChooseMove(b *game.Board, mark game.Mark) (game.Move, error) {
	if !h.pending {
		return game.Move{}, ErrAwaitingInput
	}
	h.pending = false
	mv := game.NewMove(h.row, h.col, mark)
	if err := b.Check(mv); err != nil {
		return game.Move{}, err
	}
	return mv, nil
}
