package droptoken

import "github.com/rocketscienceinc/droptoken-backend/internal/entity"

type direction struct {
	column int
	row    int
}

// winAxes - vertical, horizontal, main diagonal and anti-diagonal.
var winAxes = [4]direction{
	{column: 0, row: 1},
	{column: 1, row: 0},
	{column: 1, row: 1},
	{column: 1, row: -1},
}

// Evaluate - reports whether the token at (column, row) is part of a run of at least winningLength.
func Evaluate(board entity.BoardView, column, row, winningLength int) bool {
	player, ok := board.Cell(column, row)
	if !ok || player == entity.EmptyCell {
		return false
	}

	for _, axis := range winAxes {
		run := 1 +
			countRun(board, player, column, row, axis.column, axis.row) +
			countRun(board, player, column, row, -axis.column, -axis.row)

		if run >= winningLength {
			return true
		}
	}

	return false
}

// countRun - counts consecutive cells held by player, walking away from the start cell.
func countRun(board entity.BoardView, player string, column, row, stepColumn, stepRow int) int {
	count := 0

	for {
		column += stepColumn
		row += stepRow

		cell, ok := board.Cell(column, row)
		if !ok || cell != player {
			return count
		}

		count++
	}
}
