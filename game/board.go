package game

import (
	"fmt"
	"strings"
)

// Board is a square grid of marks. It is mutated only through Apply and
// Undo, which must be strictly paired in reverse order so that search
// code can backtrack in place. The board records its own move history to
// enforce that discipline.
type Board struct {
	size      int
	winLength int
	cells     []Mark
	history   []Move
}

func NewBoard(cfg Config) *Board {
	return &Board{
		size:      cfg.Size,
		winLength: cfg.WinLength,
		cells:     make([]Mark, cfg.Size*cfg.Size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) WinLength() int {
	return b.winLength
}

func (b *Board) MoveCount() int {
	return len(b.history)
}

// At returns the mark at (row, col). The coordinate must be in bounds.
func (b *Board) At(row, col int) Mark {
	return b.cells[b.index(row, col)]
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// Check reports whether m could be applied right now, without applying it.
func (b *Board) Check(m Move) error {
	if m.Mark == Empty {
		return fmt.Errorf("%w: move carries no mark", ErrIllegalMove)
	}
	if !b.InBounds(m.Row, m.Col) {
		return fmt.Errorf("%w: (%d,%d) out of range for size %d", ErrIllegalMove, m.Row, m.Col, b.size)
	}
	if b.At(m.Row, m.Col) != Empty {
		return fmt.Errorf("%w: (%d,%d) is occupied by %s", ErrIllegalMove, m.Row, m.Col, b.At(m.Row, m.Col))
	}
	return nil
}

// Apply places the move's mark on an empty cell.
func (b *Board) Apply(m Move) error {
	if err := b.Check(m); err != nil {
		return err
	}
	b.cells[b.index(m.Row, m.Col)] = m.Mark
	b.history = append(b.history, m)
	return nil
}

// Undo reverts the most recently applied move back to empty. Undoing any
// other move violates the stack discipline and fails with ErrInvalidUndo.
func (b *Board) Undo(m Move) error {
	if len(b.history) == 0 {
		return fmt.Errorf("%w: no moves to undo", ErrInvalidUndo)
	}
	last := b.history[len(b.history)-1]
	if !last.Equals(m) {
		return fmt.Errorf("%w: %s is not the last applied move %s", ErrInvalidUndo, m, last)
	}
	b.cells[b.index(m.Row, m.Col)] = Empty
	b.history = b.history[:len(b.history)-1]
	return nil
}

// LegalMoves enumerates the empty cells in row-major order. The order is
// part of the contract: search move ordering and tie-breaking depend on it.
func (b *Board) LegalMoves() []Coord {
	moves := make([]Coord, 0, b.size*b.size-len(b.history))
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] == Empty {
				moves = append(moves, Coord{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	return len(b.history) == b.size*b.size
}

// LastMove returns the most recently applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Result reports the terminal status of the board. Win detection is
// localized to the last applied move.
func (b *Board) Result() Result {
	if last, ok := b.LastMove(); ok {
		if res, won := CheckWin(b, last); won {
			return res
		}
	}
	if b.IsFull() {
		return Result{Status: Drawn}
	}
	return Result{Status: InProgress}
}

func (b *Board) Clone() *Board {
	clone := &Board{
		size:      b.size,
		winLength: b.winLength,
		cells:     make([]Mark, len(b.cells)),
		history:   make([]Move, len(b.history)),
	}
	copy(clone.cells, b.cells)
	copy(clone.history, b.history)
	return clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}
