package player

import (
	"ninarow/game"
	"ninarow/searcher"
)

// Minimax plays the move selected by an alpha-beta minimax search. All
// search behavior (depth, time limit, ordering, evaluation, metrics) is
// configured through searcher options.
type Minimax struct {
	search *searcher.Minimax
}

func NewMinimax(options ...searcher.Option) *Minimax {
	return &Minimax{search: searcher.NewMinimax(options...)}
}

func (p *Minimax) ChooseMove(b *game.Board, mark game.Mark) (game.Move, error) {
	mv, _, err := p.search.BestMove(b, mark)
	return mv, err
}
