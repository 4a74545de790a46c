package agent

import (
	"testing"

	"github.com/beka-birhanu/gridwalk/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent(t *testing.T) {
	board, err := grid.FromInts([][]int{
		{0, 1, 0},
		{0, 0, 0},
		{1, 0, 2},
	})
	require.NoError(t, err)

	t.Run("Senses walkable neighbors in fixed order", func(t *testing.T) {
		a := New(board, grid.Position{Row: 1, Col: 1})
		assert.Equal(t, []grid.Position{{Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, a.Sense())
	})

	t.Run("Moves to adjacent walkable cell", func(t *testing.T) {
		a := New(board, grid.Position{Row: 0, Col: 0})
		require.NoError(t, a.Move(grid.Position{Row: 1, Col: 0}))
		assert.Equal(t, grid.Position{Row: 1, Col: 0}, a.Position())
	})

	t.Run("Staying in place is allowed", func(t *testing.T) {
		a := New(board, grid.Position{Row: 0, Col: 0})
		assert.NoError(t, a.Move(grid.Position{Row: 0, Col: 0}))
	})

	t.Run("Rejects blocked and distant cells", func(t *testing.T) {
		a := New(board, grid.Position{Row: 0, Col: 0})
		assert.ErrorIs(t, a.Move(grid.Position{Row: 0, Col: 1}), ErrInvalidMove)
		assert.ErrorIs(t, a.Move(grid.Position{Row: 1, Col: 1}), ErrInvalidMove)
		assert.ErrorIs(t, a.Move(grid.Position{Row: -1, Col: 0}), ErrInvalidMove)
		assert.Equal(t, grid.Position{Row: 0, Col: 0}, a.Position())
	})

	t.Run("Oracle matches grid neighbors", func(t *testing.T) {
		sense := Oracle(board)
		for r := 0; r < board.Height(); r++ {
			for c := 0; c < board.Width(); c++ {
				pos := grid.Position{Row: r, Col: c}
				assert.Equal(t, board.Neighbors(pos), sense(pos))
			}
		}
	})
}
