package grid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = [][]int{
	{0, 1, 0, 0, 0},
	{0, 1, 0, 1, 0},
	{0, 0, 0, 1, 0},
	{1, 0, 1, 0, 0},
	{0, 0, 0, 0, 2},
}

func TestNew(t *testing.T) {
	t.Run("Builds sample grid", func(t *testing.T) {
		g, err := FromInts(sample)
		require.NoError(t, err)
		assert.Equal(t, 5, g.Width())
		assert.Equal(t, 5, g.Height())
	})

	t.Run("Rejects empty grid", func(t *testing.T) {
		_, err := FromInts(nil)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = FromInts([][]int{{}})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := FromInts([][]int{{0, 0}, {0}})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("Rejects unknown cells", func(t *testing.T) {
		_, err := FromInts([][]int{{0, 3}})
		assert.ErrorIs(t, err, ErrUnknownCell)

		_, err = New([][]CellState{{Open, CellState(7)}})
		assert.ErrorIs(t, err, ErrUnknownCell)
	})

	t.Run("Copies input rows", func(t *testing.T) {
		rows := [][]CellState{{Open, Open}}
		g, err := New(rows)
		require.NoError(t, err)

		rows[0][1] = Blocked
		assert.True(t, g.IsWalkable(Position{Row: 0, Col: 1}))
	})
}

func TestWalkability(t *testing.T) {
	g, err := FromInts(sample)
	require.NoError(t, err)

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"open cell", Position{0, 0}, true},
		{"blocked cell", Position{0, 1}, false},
		{"target cell", Position{4, 4}, true},
		{"negative row", Position{-1, 0}, false},
		{"negative col", Position{0, -1}, false},
		{"row past end", Position{5, 0}, false},
		{"col past end", Position{0, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsWalkable(tt.pos))
		})
	}
}

func TestCellState(t *testing.T) {
	g, err := FromInts(sample)
	require.NoError(t, err)

	t.Run("Reads in-bounds cells", func(t *testing.T) {
		state, err := g.CellState(Position{Row: 4, Col: 4})
		require.NoError(t, err)
		assert.Equal(t, Target, state)

		state, err = g.CellState(Position{Row: 3, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, Blocked, state)
	})

	t.Run("Fails out of bounds", func(t *testing.T) {
		_, err := g.CellState(Position{Row: 5, Col: 5})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestNeighbors(t *testing.T) {
	open, err := FromInts([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	t.Run("Orders up down left right", func(t *testing.T) {
		got := open.Neighbors(Position{Row: 1, Col: 1})
		assert.Equal(t, []Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, got)
	})

	t.Run("Drops out-of-bounds cells", func(t *testing.T) {
		got := open.Neighbors(Position{Row: 0, Col: 0})
		assert.Equal(t, []Position{{1, 0}, {0, 1}}, got)
	})

	t.Run("Drops blocked cells", func(t *testing.T) {
		g, err := FromInts(sample)
		require.NoError(t, err)
		assert.Equal(t, []Position{{1, 0}}, g.Neighbors(Position{Row: 0, Col: 0}))
	})
}

func TestTarget(t *testing.T) {
	g, err := FromInts(sample)
	require.NoError(t, err)

	pos, err := g.Target()
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 4, Col: 4}, pos)

	empty, err := FromInts([][]int{{0}})
	require.NoError(t, err)
	_, err = empty.Target()
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestFingerprint(t *testing.T) {
	a, _ := FromInts([][]int{{0, 1}, {0, 0}})
	b, _ := FromInts([][]int{{0, 1}, {0, 0}})
	c, _ := FromInts([][]int{{0, 0}, {1, 0}})
	d, _ := FromInts([][]int{{0, 1, 0, 0}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestRenderPath(t *testing.T) {
	g, err := FromInts([][]int{
		{0, 1},
		{0, 2},
	})
	require.NoError(t, err)

	t.Run("Plain grid", func(t *testing.T) {
		want := strings.Join([]string{
			"+---+---+",
			"|   | # |",
			"+---+---+",
			"|   | T |",
			"+---+---+",
			"",
		}, "\n")
		assert.Equal(t, want, g.String())
	})

	t.Run("Marks path", func(t *testing.T) {
		out := g.RenderPath([]Position{{0, 0}, {1, 0}, {1, 1}})
		assert.Contains(t, out, "| S | # |")
		assert.Contains(t, out, "| * | T |")
	})
}

func TestPosition(t *testing.T) {
	p := Position{Row: 2, Col: 3}
	assert.Equal(t, "(2, 3)", p.String())
	assert.True(t, p.IsAdjacent(Position{Row: 1, Col: 3}))
	assert.True(t, p.IsAdjacent(Position{Row: 2, Col: 4}))
	assert.False(t, p.IsAdjacent(Position{Row: 3, Col: 4}))
	assert.False(t, p.IsAdjacent(p))
}

func TestParseCellState(t *testing.T) {
	for v, want := range []CellState{Open, Blocked, Target} {
		got, err := ParseCellState(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, string(rune('0'+v)), got.String())
	}

	for _, v := range []int{-1, 3, 258} {
		_, err := ParseCellState(v)
		assert.ErrorIs(t, err, ErrUnknownCell, "value %d", v)
	}
}
