package entity

import (
	"fmt"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

const EmptyCell = ""

// BoardView is the read-only side of a board used by win detection.
type BoardView interface {
	Columns() int
	Rows() int
	Cell(column, row int) (string, bool)
}

// Board is a columns x rows grid stored column-major. Row 0 is the bottom row.
type Board struct {
	columns int
	rows    int
	cells   []string
}

func NewBoard(columns, rows int) *Board {
	return &Board{
		columns: columns,
		rows:    rows,
		cells:   make([]string, columns*rows),
	}
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Size() int {
	return that.columns * that.rows
}

func (that *Board) InBounds(column, row int) bool {
	return column >= 0 && column < that.columns && row >= 0 && row < that.rows
}

// Cell returns the occupant of a cell; false when the coordinates are off the board.
func (that *Board) Cell(column, row int) (string, bool) {
	if !that.InBounds(column, row) {
		return EmptyCell, false
	}

	return that.cells[column*that.rows+row], true
}

// LowestEmptyRow returns the row a token dropped into column would land on.
func (that *Board) LowestEmptyRow(column int) (int, error) {
	if column < 0 || column >= that.columns {
		return -1, fmt.Errorf("%w: column %d is out of range", apperror.ErrIllegalMove, column)
	}

	for row := 0; row < that.rows; row++ {
		if that.cells[column*that.rows+row] == EmptyCell {
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d is full", apperror.ErrIllegalMove, column)
}

// Drop places player into the lowest empty row of column and returns that row.
func (that *Board) Drop(column int, player string) (int, error) {
	row, err := that.LowestEmptyRow(column)
	if err != nil {
		return -1, err
	}

	that.cells[column*that.rows+row] = player

	return row, nil
}

// Snapshot returns an independent copy of the board.
func (that *Board) Snapshot() *Board {
	cells := make([]string, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		columns: that.columns,
		rows:    that.rows,
		cells:   cells,
	}
}
