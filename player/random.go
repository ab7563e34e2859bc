package player

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"ninarow/game"
	"ninarow/searcher"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom builds a random player. A zero seed draws one from the clock;
// any other seed makes the move sequence reproducible.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(b *game.Board, mark game.Mark) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("%w: board is full", searcher.ErrNoLegalMoves)
	}
	c := moves[r.rng.Intn(len(moves))]
	return game.NewMove(c.Row, c.Col, mark), nil
}
