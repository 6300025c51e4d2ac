package entity

import (
	"testing"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(size int) *Grid {
	values := make([]int, size*size)
	for i := range values {
		values[i] = i + 1
	}

	return NewGrid(size, values)
}

func markAll(t *testing.T, grid *Grid, cells ...[2]int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, grid.Mark(cell[0], cell[1]))
	}
}

func TestNewGrid(t *testing.T) {
	// When: building a 2x2 grid
	grid := NewGrid(2, []int{7, 3, 9, 1})

	// Then: values are laid out row-major and unmarked
	expected := &Grid{
		Size: 2,
		Cells: [][]Cell{
			{{Value: 7}, {Value: 3}},
			{{Value: 9}, {Value: 1}},
		},
	}
	require.Equal(t, expected, grid)
	assert.Zero(t, grid.MarkedCount())
}

func TestGrid_Mark(t *testing.T) {
	t.Run("Marks the requested cell", func(t *testing.T) {
		// Given: a fresh 3x3 grid
		grid := newTestGrid(3)

		// When: marking (1, 2)
		err := grid.Mark(1, 2)

		// Then: only that cell is marked
		require.NoError(t, err)
		assert.True(t, grid.IsMarked(1, 2))
		assert.Equal(t, 1, grid.MarkedCount())
	})

	t.Run("Marking twice is a no-op", func(t *testing.T) {
		// Given: a grid with one marked cell
		grid := newTestGrid(3)
		require.NoError(t, grid.Mark(0, 0))
		before := grid.CheckWin()

		// When: marking the same cell again
		err := grid.Mark(0, 0)

		// Then: nothing changes
		require.NoError(t, err)
		assert.Equal(t, 1, grid.MarkedCount())
		assert.Equal(t, before, grid.CheckWin())
	})

	t.Run("Error on index greater than range", func(t *testing.T) {
		grid := newTestGrid(3)

		err := grid.Mark(3, 0)

		assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Zero(t, grid.MarkedCount())
	})

	t.Run("Error on negative index", func(t *testing.T) {
		grid := newTestGrid(3)

		err := grid.Mark(0, -1)

		assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
	})
}

func TestGrid_CheckWin(t *testing.T) {
	t.Run("Fresh grid is never a win", func(t *testing.T) {
		for size := 1; size <= 10; size++ {
			assert.False(t, newTestGrid(size).CheckWin(), "size %d", size)
		}
	})

	t.Run("Full first row wins", func(t *testing.T) {
		grid := newTestGrid(3)
		markAll(t, grid, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})

		assert.True(t, grid.CheckWin())
	})

	t.Run("Full column wins", func(t *testing.T) {
		grid := newTestGrid(4)
		markAll(t, grid, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

		assert.True(t, grid.CheckWin())
	})

	t.Run("Main diagonal wins", func(t *testing.T) {
		grid := newTestGrid(3)
		markAll(t, grid, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})

		assert.True(t, grid.CheckWin())
	})

	t.Run("Incomplete diagonal does not win", func(t *testing.T) {
		grid := newTestGrid(3)
		markAll(t, grid, [2]int{0, 0}, [2]int{1, 1})

		assert.False(t, grid.CheckWin())
	})

	t.Run("Anti-diagonal wins", func(t *testing.T) {
		grid := newTestGrid(3)
		markAll(t, grid, [2]int{0, 2}, [2]int{1, 1}, [2]int{2, 0})

		assert.True(t, grid.CheckWin())
	})

	t.Run("Scattered marks do not win", func(t *testing.T) {
		grid := newTestGrid(3)
		markAll(t, grid, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1})

		assert.False(t, grid.CheckWin())
	})

	t.Run("Single marked cell wins on a 1x1 grid", func(t *testing.T) {
		grid := newTestGrid(1)
		require.NoError(t, grid.Mark(0, 0))

		assert.True(t, grid.CheckWin())
	})
}

func TestGrid_Find(t *testing.T) {
	grid := NewGrid(2, []int{7, 3, 9, 1})

	row, col, ok := grid.Find(9)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	_, _, ok = grid.Find(42)
	assert.False(t, ok)
}
