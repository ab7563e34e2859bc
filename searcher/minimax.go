package searcher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ninarow/game"
)

// winScore is the terminal score base. A win found at ply p scores
// winScore-p (negated for a loss), so forced wins dominate any heuristic
// value and faster wins outrank slower ones.
const winScore = 1 << 30

const infinity = winScore + 1

// ErrNoLegalMoves reports a search invoked on a board with nothing to
// play: the board is full or already won. Callers must check terminal
// state before searching.
var ErrNoLegalMoves = errors.New("no legal moves")

// errDeadline aborts the recursion when the time limit expires. It never
// escapes BestMove: the result of the last completed depth is returned.
var errDeadline = errors.New("search deadline exceeded")

type Option func(m *Minimax)

// WithMaxDepth bounds the search to depth plies. Zero or negative means
// full depth, which guarantees perfect play but is only tractable on
// small boards.
func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		m.maxDepth = depth
	}
}

// WithTimeLimit makes the search iteratively deepen until the limit
// expires, returning the best move of the last fully completed depth.
func WithTimeLimit(limit time.Duration) Option {
	return func(m *Minimax) {
		if limit > 0 {
			m.timeLimit = limit
		}
	}
}

func WithGenerator(g Generator) Option {
	return func(m *Minimax) {
		if g != nil {
			m.generate = g
		}
	}
}

func WithEvaluation(evaluate Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics(c Collector) Option {
	return func(m *Minimax) {
		if c != nil {
			m.metrics = c
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Minimax) {
		m.logger = logger
	}
}

// Minimax selects moves by minimax search with alpha-beta pruning. The
// board is mutated in place through paired Apply/Undo calls during the
// search and is restored to its original state before BestMove returns,
// bounding memory to O(depth). A Minimax holds no state between calls.
type Minimax struct {
	maxDepth  int
	timeLimit time.Duration
	generate  Generator
	evaluate  Evaluate
	metrics   Collector
	logger    zerolog.Logger
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		generate: CenterFirst(),
		evaluate: WindowCount,
		metrics:  NewNoCollector(),
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove returns the move that maximizes mark's outcome against optimal
// opposition, with its score. When several moves tie, the first one in
// the generator's order wins, so repeated calls on the same position
// always return the same move. Fails with ErrNoLegalMoves on a full or
// already-won board.
func (m *Minimax) BestMove(b *game.Board, mark game.Mark) (game.Move, int, error) {
	if res := b.Result(); res.Status != game.InProgress {
		return game.Move{}, 0, fmt.Errorf("%w: game is %s", ErrNoLegalMoves, res.Status)
	}

	m.metrics.Start()
	start := time.Now()

	s := &search{
		board:    b,
		mark:     mark,
		generate: m.generate,
		evaluate: m.evaluate,
		metrics:  m.metrics,
	}
	if m.timeLimit > 0 {
		s.deadline = start.Add(m.timeLimit)
	}

	moves := m.generate.Generate(b)
	if len(moves) == 0 {
		return game.Move{}, 0, ErrNoLegalMoves
	}

	// One-ply shortcuts: take an immediate win, then block the
	// opponent's.
	if c, ok, err := s.immediateWin(mark, moves); err != nil {
		return game.Move{}, 0, err
	} else if ok {
		m.metrics.SetDepth(1)
		m.report(1, winScore-1, []game.Coord{c}, start)
		return game.NewMove(c.Row, c.Col, mark), winScore - 1, nil
	}
	if c, ok, err := s.immediateWin(mark.Other(), moves); err != nil {
		return game.Move{}, 0, err
	} else if ok {
		m.metrics.SetDepth(1)
		m.report(1, -(winScore - 2), []game.Coord{c}, start)
		return game.NewMove(c.Row, c.Col, mark), -(winScore - 2), nil
	}

	maxDepth := m.maxDepth
	if remaining := len(moves); maxDepth <= 0 || maxDepth > remaining {
		maxDepth = remaining
	}

	best := moves[0] // fallback if the deadline expires before depth 1 completes
	bestScore := -infinity
	completed := 0
	for depth := 1; depth <= maxDepth; depth++ {
		coord, score, pv, err := s.root(depth)
		if errors.Is(err, errDeadline) {
			break
		}
		if err != nil {
			return game.Move{}, 0, fmt.Errorf("search at depth %d: %w", depth, err)
		}
		best, bestScore, completed = coord, score, depth
		m.report(depth, score, pv, start)
		if score >= winScore-depth {
			break // proven win, deeper search cannot improve it
		}
	}

	m.metrics.SetDepth(completed)
	return game.NewMove(best.Row, best.Col, mark), bestScore, nil
}

// report logs one completed deepening iteration in the classic engine
// "info" shape: depth, score, nodes, elapsed, nodes/second, and the
// principal variation.
func (m *Minimax) report(depth, score int, pv []game.Coord, start time.Time) {
	snapshot := m.metrics.Complete()
	elapsed := time.Since(start)
	nps := int64(0)
	if elapsed > 0 {
		nps = int64(float64(snapshot.Nodes) / elapsed.Seconds())
	}
	m.logger.Debug().
		Int("depth", depth).
		Int("score", score).
		Int64("nodes", snapshot.Nodes).
		Dur("time", elapsed).
		Int64("nps", nps).
		Str("pv", formatPV(pv)).
		Msg("search iteration")
}

func formatPV(pv []game.Coord) string {
	parts := make([]string, len(pv))
	for i, c := range pv {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// search carries one BestMove invocation's state. Nothing outlives the
// call: ownership of every node is on the stack.
type search struct {
	board    *game.Board
	mark     game.Mark
	generate Generator
	evaluate Evaluate
	metrics  Collector
	deadline time.Time
}

// root runs one fixed-depth iteration and returns the best move, its
// score, and the principal variation.
func (s *search) root(maxDepth int) (game.Coord, int, []game.Coord, error) {
	moves := s.generate.Generate(s.board)
	best := -infinity
	bestCoord := moves[0]
	var bestPV []game.Coord
	alpha, beta := -infinity, infinity
	for _, c := range moves {
		score, pv, err := s.scoreMove(c, 1, maxDepth, true, alpha, beta)
		if err != nil {
			return game.Coord{}, 0, nil, err
		}
		if score > best {
			best = score
			bestCoord = c
			bestPV = pv
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestCoord, best, bestPV, nil
}

// scoreMove applies the move at c for the side to move at this ply,
// scores the resulting position, and undoes the move. maximizing is true
// when the mover is the searching side.
func (s *search) scoreMove(c game.Coord, ply, maxDepth int, maximizing bool, alpha, beta int) (int, []game.Coord, error) {
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return 0, nil, errDeadline
	}
	s.metrics.AddNode()

	mark := s.mark
	if !maximizing {
		mark = s.mark.Other()
	}
	mv := game.NewMove(c.Row, c.Col, mark)
	if err := s.board.Apply(mv); err != nil {
		return 0, nil, err
	}

	score, pv, err := s.scoreApplied(mv, ply, maxDepth, maximizing, alpha, beta)

	if undoErr := s.board.Undo(mv); undoErr != nil {
		return 0, nil, undoErr
	}
	if err != nil {
		return 0, nil, err
	}
	return score, append([]game.Coord{c}, pv...), nil
}

func (s *search) scoreApplied(mv game.Move, ply, maxDepth int, maximizing bool, alpha, beta int) (int, []game.Coord, error) {
	if _, won := game.CheckWin(s.board, mv); won {
		if maximizing {
			return winScore - ply, nil, nil
		}
		return -(winScore - ply), nil, nil
	}
	if s.board.IsFull() {
		return 0, nil, nil
	}
	if ply >= maxDepth {
		return s.evaluate(s.board, s.mark), nil, nil
	}
	return s.minimax(ply+1, maxDepth, !maximizing, alpha, beta)
}

// minimax evaluates the current position with the given side to move.
// Pruning only skips branches already proven no better than the current
// bounds; the returned score and the chosen move are the same as an
// unpruned search would produce.
func (s *search) minimax(ply, maxDepth int, maximizing bool, alpha, beta int) (int, []game.Coord, error) {
	moves := s.generate.Generate(s.board)
	best := infinity
	if maximizing {
		best = -infinity
	}
	var bestPV []game.Coord
	for _, c := range moves {
		score, pv, err := s.scoreMove(c, ply, maxDepth, maximizing, alpha, beta)
		if err != nil {
			return 0, nil, err
		}
		if maximizing {
			if score > best {
				best = score
				bestPV = pv
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < best {
				best = score
				bestPV = pv
			}
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best, bestPV, nil
}

// immediateWin scans for a one-move win for mark, in generator order.
func (s *search) immediateWin(mark game.Mark, moves []game.Coord) (game.Coord, bool, error) {
	for _, c := range moves {
		mv := game.NewMove(c.Row, c.Col, mark)
		if err := s.board.Apply(mv); err != nil {
			return game.Coord{}, false, err
		}
		s.metrics.AddNode()
		_, won := game.CheckWin(s.board, mv)
		if err := s.board.Undo(mv); err != nil {
			return game.Coord{}, false, err
		}
		if won {
			return c, true, nil
		}
	}
	return game.Coord{}, false, nil
}
