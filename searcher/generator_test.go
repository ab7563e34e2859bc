package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ninarow/game"
)

func newBoard(t *testing.T, size, winLength int) *game.Board {
	t.Helper()
	cfg, err := game.NewConfig(size, winLength)
	require.NoError(t, err)
	return game.NewBoard(cfg)
}

func TestRowMajorGenerator(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.NoError(t, b.Apply(game.NewMove(1, 1, game.X)))

	require.Equal(t, b.LegalMoves(), RowMajor().Generate(b))
}

func TestCenterFirstGenerator(t *testing.T) {
	t.Run("center leads on an empty odd board", func(t *testing.T) {
		b := newBoard(t, 3, 3)

		moves := CenterFirst().Generate(b)

		require.Equal(t, game.Coord{Row: 1, Col: 1}, moves[0])
	})

	t.Run("is a permutation of the legal moves", func(t *testing.T) {
		b := newBoard(t, 4, 3)
		require.NoError(t, b.Apply(game.NewMove(2, 2, game.X)))

		moves := CenterFirst().Generate(b)

		require.ElementsMatch(t, b.LegalMoves(), moves)
		require.Len(t, moves, len(b.LegalMoves()))
	})

	t.Run("equal distances keep row-major order", func(t *testing.T) {
		b := newBoard(t, 3, 3)

		moves := CenterFirst().Generate(b)

		// Distance-1 ring around the center, in row-major order.
		require.Equal(t, []game.Coord{
			{Row: 0, Col: 1},
			{Row: 1, Col: 0},
			{Row: 1, Col: 2},
			{Row: 2, Col: 1},
		}, moves[1:5])
	})

	t.Run("is deterministic", func(t *testing.T) {
		b := newBoard(t, 5, 4)
		require.NoError(t, b.Apply(game.NewMove(0, 0, game.X)))
		require.Equal(t, CenterFirst().Generate(b), CenterFirst().Generate(b))
	})
}
