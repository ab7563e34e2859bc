// Package engine orchestrates turns between two players over a shared
// board. The presentation layer drives it one Step at a time; Run is a
// convenience loop for sessions without human input.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ninarow/game"
	"ninarow/player"
)

// MaxMoves caps Run against a game loop that never reaches a terminal
// state. A square board can never exceed size*size moves, so the cap only
// guards against defective player implementations.
const MaxMoves = 10000

// ErrNotHumanTurn reports input submitted while a non-human player is to
// move.
var ErrNotHumanTurn = errors.New("current player is not human")

// HistoryEntry records one applied move for the presentation layer.
type HistoryEntry struct {
	Move game.Move
	Ply  int
}

type Option func(e *Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine runs the turn state machine: InProgress until a move wins or
// fills the board, then Won or Drawn forever. Transitions happen only on
// a successfully applied move.
type Engine struct {
	board   *game.Board
	players map[game.Mark]player.Player
	turn    game.Mark
	result  game.Result
	history []HistoryEntry
	logger  zerolog.Logger
}

// New configures a session. X always moves first. Fails with
// game.ErrInvalidConfig on a bad board geometry or a missing player.
func New(cfg game.Config, playerX, playerO player.Player, options ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if playerX == nil || playerO == nil {
		return nil, fmt.Errorf("%w: both players must be set", game.ErrInvalidConfig)
	}
	e := &Engine{
		board:   game.NewBoard(cfg),
		players: map[game.Mark]player.Player{game.X: playerX, game.O: playerO},
		turn:    game.X,
		result:  game.Result{Status: game.InProgress},
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Step runs one loop iteration: ask the active player for a move, apply
// it, and update the game status. It returns the current result and the
// applied move. A nil move with a nil error means the engine is waiting
// on human input (or the game is already over). An error from a human
// player's illegal input leaves the game in progress so the presentation
// layer can prompt again.
func (e *Engine) Step() (game.Result, *game.Move, error) {
	if e.result.Status != game.InProgress {
		return e.result, nil, nil
	}

	active := e.players[e.turn]
	mv, err := active.ChooseMove(e.board, e.turn)
	if errors.Is(err, player.ErrAwaitingInput) {
		return e.result, nil, nil
	}
	if err != nil {
		return e.result, nil, fmt.Errorf("player %s: %w", e.turn, err)
	}

	if err := e.board.Apply(mv); err != nil {
		return e.result, nil, fmt.Errorf("player %s: %w", e.turn, err)
	}
	e.history = append(e.history, HistoryEntry{Move: mv, Ply: len(e.history) + 1})
	e.logger.Info().Stringer("move", mv).Int("ply", len(e.history)).Msg("move applied")

	if res, won := game.CheckWin(e.board, mv); won {
		e.result = res
		e.logger.Info().Stringer("winner", res.Winner).Msg("game over")
	} else if e.board.IsFull() {
		e.result = game.Result{Status: game.Drawn}
		e.logger.Info().Msg("game drawn")
	} else {
		e.turn = e.turn.Other()
	}
	return e.result, &mv, nil
}

// Run steps the game to completion. It refuses to spin on a human player
// waiting for input.
func (e *Engine) Run() (game.Result, error) {
	for i := 0; i < MaxMoves; i++ {
		res, mv, err := e.Step()
		if err != nil {
			return res, err
		}
		if res.Status != game.InProgress {
			return res, nil
		}
		if mv == nil {
			return res, fmt.Errorf("run stalled: %w", player.ErrAwaitingInput)
		}
	}
	return e.result, fmt.Errorf("no terminal state after %d moves", MaxMoves)
}

// Submit forwards a coordinate to the active player if it is human.
func (e *Engine) Submit(row, col int) error {
	h, ok := e.players[e.turn].(*player.Human)
	if !ok {
		return fmt.Errorf("%w: %s to move", ErrNotHumanTurn, e.turn)
	}
	h.Provide(row, col)
	return nil
}

// Board returns a copy of the current board. The engine's own board is
// never shared mutably outside a Step call.
func (e *Engine) Board() *game.Board {
	return e.board.Clone()
}

func (e *Engine) Turn() game.Mark {
	return e.turn
}

func (e *Engine) Result() game.Result {
	return e.result
}

func (e *Engine) History() []HistoryEntry {
	return append([]HistoryEntry(nil), e.history...)
}
