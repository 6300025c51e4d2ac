package entity

import (
	"fmt"

	"github.com/rocketscienceinc/bingo-backend/internal/apperror"
)

// Cell is one position on the card.
type Cell struct {
	Value  int  `json:"value"`
	Marked bool `json:"marked"`
}

// Grid is a square bingo card, stored row-major.
type Grid struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// NewGrid lays values out row-major into a size x size grid of unmarked cells.
// len(values) must be size*size.
func NewGrid(size int, values []int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
		for j := range cells[i] {
			cells[i][j] = Cell{Value: values[i*size+j]}
		}
	}

	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Mark sets the cell at row, col as marked. Marking an already marked cell does nothing.
func (that *Grid) Mark(row, col int) error {
	if !that.inRange(row) || !that.inRange(col) {
		return fmt.Errorf("%w: row %d, col %d, size %d", apperror.ErrIndexOutOfRange, row, col, that.Size)
	}

	that.Cells[row][col].Marked = true

	return nil
}

func (that *Grid) IsMarked(row, col int) bool {
	return that.inRange(row) && that.inRange(col) && that.Cells[row][col].Marked
}

// Find returns the position of value on the card.
func (that *Grid) Find(value int) (int, int, bool) {
	for i, row := range that.Cells {
		for j, cell := range row {
			if cell.Value == value {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

func (that *Grid) MarkedCount() int {
	count := 0
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell.Marked {
				count++
			}
		}
	}

	return count
}

// CheckWin reports whether a full row, column or either diagonal is marked.
func (that *Grid) CheckWin() bool {
	if that.Size == 0 {
		return false
	}

	for i := 0; i < that.Size; i++ {
		if that.lineMarked(func(k int) (int, int) { return i, k }) ||
			that.lineMarked(func(k int) (int, int) { return k, i }) {
			return true
		}
	}

	// main diagonal
	if that.lineMarked(func(k int) (int, int) { return k, k }) {
		return true
	}

	// anti-diagonal
	return that.lineMarked(func(k int) (int, int) { return k, that.Size - 1 - k })
}

// lineMarked walks Size positions produced by at and reports whether all are marked.
func (that *Grid) lineMarked(at func(k int) (int, int)) bool {
	for k := 0; k < that.Size; k++ {
		if row, col := at(k); !that.Cells[row][col].Marked {
			return false
		}
	}

	return true
}

func (that *Grid) inRange(index int) bool {
	return index >= 0 && index < that.Size
}
