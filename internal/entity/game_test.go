package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

func TestStatus(t *testing.T) {
	t.Run("IsDone returns true when state is DONE", func(t *testing.T) {
		// Given: a finished game status
		status := Status{State: StatusDone}

		// When: checking if the game is done
		isDone := status.IsDone()

		// Then: it should return true
		assert.True(t, isDone)
	})

	t.Run("IsDone returns false when state is IN_PROGRESS", func(t *testing.T) {
		// Given: an ongoing game status
		status := Status{State: StatusInProgress}

		// Then: it should not be done and have no winner
		assert.False(t, status.IsDone())
		assert.False(t, status.HasWinner())
	})
}

func TestBoard_Drop(t *testing.T) {
	t.Run("Tokens stack from the bottom row", func(t *testing.T) {
		// Given: an empty 4x4 board
		board := NewBoard(4, 4)

		// When: two tokens are dropped into the same column
		first, err := board.Drop(2, "p1")
		require.NoError(t, err)
		second, err := board.Drop(2, "p2")
		require.NoError(t, err)

		// Then: they land on rows 0 and 1
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)

		cell, ok := board.Cell(2, 1)
		require.True(t, ok)
		assert.Equal(t, "p2", cell)
	})

	t.Run("Error on full column", func(t *testing.T) {
		// Given: a board whose first column is full
		board := NewBoard(2, 2)
		_, err := board.Drop(0, "p1")
		require.NoError(t, err)
		_, err = board.Drop(0, "p2")
		require.NoError(t, err)

		// When: another token is dropped into the column
		row, err := board.Drop(0, "p1")

		// Then: ErrIllegalMove is returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, -1, row)
	})

	t.Run("Error on column out of range", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(4, 4)

		// When: dropping into columns outside the board
		_, errNegative := board.Drop(-1, "p1")
		_, errTooLarge := board.Drop(4, "p1")

		// Then: both moves are illegal and the board stays empty
		require.ErrorIs(t, errNegative, apperror.ErrIllegalMove)
		require.ErrorIs(t, errTooLarge, apperror.ErrIllegalMove)
		assert.Equal(t, NewBoard(4, 4), board)
	})
}

func TestBoard_Cell(t *testing.T) {
	// Given: an empty board
	board := NewBoard(3, 2)

	// When: reading off-board coordinates
	_, ok := board.Cell(3, 0)

	// Then: the cell is reported as missing
	assert.False(t, ok)
	assert.Equal(t, 6, board.Size())
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with one token and its snapshot
	board := NewBoard(4, 4)
	_, err := board.Drop(0, "p1")
	require.NoError(t, err)
	snapshot := board.Snapshot()

	// When: the original board changes
	_, err = board.Drop(0, "p2")
	require.NoError(t, err)

	// Then: the snapshot is unaffected
	cell, _ := snapshot.Cell(0, 1)
	assert.Equal(t, EmptyCell, cell)
}
