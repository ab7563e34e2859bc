package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, size, winLength int) Config {
	t.Helper()
	cfg, err := NewConfig(size, winLength)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig(t *testing.T) {
	t.Run("accepts a playable geometry", func(t *testing.T) {
		cfg, err := NewConfig(5, 4)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Size)
		require.Equal(t, 4, cfg.WinLength)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := NewConfig(0, 1)
		require.ErrorIs(t, err, ErrInvalidConfig)
		_, err = NewConfig(-3, 1)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects win length below 1", func(t *testing.T) {
		_, err := NewConfig(3, 0)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects win length exceeding size", func(t *testing.T) {
		_, err := NewConfig(3, 4)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestBoardApply(t *testing.T) {
	t.Run("places a mark on an empty cell", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))

		err := b.Apply(NewMove(1, 2, X))

		require.NoError(t, err)
		require.Equal(t, X, b.At(1, 2))
		require.Equal(t, 1, b.MoveCount())
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.NoError(t, b.Apply(NewMove(0, 0, X)))

		err := b.Apply(NewMove(0, 0, O))

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, X, b.At(0, 0), "board should be unchanged")
		require.Equal(t, 1, b.MoveCount())
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		for _, mv := range []Move{
			NewMove(-1, 0, X),
			NewMove(0, -1, X),
			NewMove(3, 0, X),
			NewMove(0, 3, X),
		} {
			require.ErrorIs(t, b.Apply(mv), ErrIllegalMove, "move %s", mv)
		}
		require.Equal(t, 0, b.MoveCount())
	})

	t.Run("rejects an empty mark", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.ErrorIs(t, b.Apply(NewMove(0, 0, Empty)), ErrIllegalMove)
	})
}

func TestBoardUndo(t *testing.T) {
	t.Run("apply then undo is an identity", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 4, 3))
		require.NoError(t, b.Apply(NewMove(0, 0, X)))
		before := b.Clone()
		mv := NewMove(2, 3, O)

		require.NoError(t, b.Apply(mv))
		require.NoError(t, b.Undo(mv))

		require.Equal(t, before.MoveCount(), b.MoveCount())
		for row := 0; row < b.Size(); row++ {
			for col := 0; col < b.Size(); col++ {
				require.Equal(t, before.At(row, col), b.At(row, col))
			}
		}
	})

	t.Run("rejects undo of a move that is not the last", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		first := NewMove(0, 0, X)
		second := NewMove(1, 1, O)
		require.NoError(t, b.Apply(first))
		require.NoError(t, b.Apply(second))

		err := b.Undo(first)

		require.ErrorIs(t, err, ErrInvalidUndo)
		require.Equal(t, X, b.At(0, 0))
		require.Equal(t, O, b.At(1, 1))
	})

	t.Run("rejects undo on an empty board", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.ErrorIs(t, b.Undo(NewMove(0, 0, X)), ErrInvalidUndo)
	})

	t.Run("rejects undo with a wrong mark", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.NoError(t, b.Apply(NewMove(0, 0, X)))
		require.ErrorIs(t, b.Undo(NewMove(0, 0, O)), ErrInvalidUndo)
	})
}

func TestBoardLegalMoves(t *testing.T) {
	t.Run("returns every empty cell exactly once", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.NoError(t, b.Apply(NewMove(0, 1, X)))
		require.NoError(t, b.Apply(NewMove(2, 2, O)))

		moves := b.LegalMoves()

		require.Len(t, moves, b.Size()*b.Size()-b.MoveCount())
		for _, c := range moves {
			require.Equal(t, Empty, b.At(c.Row, c.Col))
		}
	})

	t.Run("enumerates in row-major order", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 2, 2))
		require.NoError(t, b.Apply(NewMove(0, 1, X)))

		moves := b.LegalMoves()

		require.Equal(t, []Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, moves)
	})

	t.Run("is re-enumerable", func(t *testing.T) {
		b := NewBoard(mustConfig(t, 3, 3))
		require.NoError(t, b.Apply(NewMove(1, 1, X)))
		require.Equal(t, b.LegalMoves(), b.LegalMoves())
	})
}

func TestBoardIsFull(t *testing.T) {
	b := NewBoard(mustConfig(t, 2, 2))
	mark := X
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			require.False(t, b.IsFull())
			require.NoError(t, b.Apply(NewMove(row, col, mark)))
			mark = mark.Other()
		}
	}
	require.True(t, b.IsFull())
	require.Empty(t, b.LegalMoves())
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(mustConfig(t, 3, 3))
	require.NoError(t, b.Apply(NewMove(0, 0, X)))

	clone := b.Clone()
	require.NoError(t, clone.Apply(NewMove(1, 1, O)))

	require.Equal(t, Empty, b.At(1, 1), "mutating the clone must not touch the original")
	require.Equal(t, 1, b.MoveCount())
	require.Equal(t, 2, clone.MoveCount())
}

func TestBoardLastMove(t *testing.T) {
	b := NewBoard(mustConfig(t, 3, 3))
	_, ok := b.LastMove()
	require.False(t, ok)

	mv := NewMove(2, 1, X)
	require.NoError(t, b.Apply(mv))

	last, ok := b.LastMove()
	require.True(t, ok)
	require.Equal(t, mv, last)
}
