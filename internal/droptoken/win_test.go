package droptoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

const filler = "x"

// stack drops tokens into column bottom-up.
func stack(t *testing.T, board *entity.Board, column int, players ...string) {
	t.Helper()

	for _, player := range players {
		_, err := board.Drop(column, player)
		require.NoError(t, err)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("Vertical run", func(t *testing.T) {
		// Given: four tokens of p1 stacked in column 0
		board := entity.NewBoard(4, 4)
		stack(t, board, 0, "p1", "p1", "p1", "p1")

		// When: evaluating the top token
		won := Evaluate(board, 0, 3, 4)

		// Then: it is a win
		assert.True(t, won)
	})

	t.Run("Horizontal run completed in the middle", func(t *testing.T) {
		// Given: p1 holds columns 0, 1 and 3 of the bottom row, then fills column 2
		board := entity.NewBoard(4, 4)
		stack(t, board, 0, "p1")
		stack(t, board, 1, "p1")
		stack(t, board, 3, "p1")
		stack(t, board, 2, "p1")

		// When: evaluating the last token placed
		won := Evaluate(board, 2, 0, 4)

		// Then: both directions are counted and it is a win
		assert.True(t, won)
	})

	t.Run("Main diagonal run", func(t *testing.T) {
		// Given: p1 on (0,0), (1,1), (2,2), (3,3)
		board := entity.NewBoard(4, 4)
		stack(t, board, 0, "p1")
		stack(t, board, 1, filler, "p1")
		stack(t, board, 2, filler, filler, "p1")
		stack(t, board, 3, filler, filler, filler, "p1")

		// Then: evaluating the top-right token reports a win
		assert.True(t, Evaluate(board, 3, 3, 4))
	})

	t.Run("Anti-diagonal run", func(t *testing.T) {
		// Given: p1 on (0,3), (1,2), (2,1), (3,0)
		board := entity.NewBoard(4, 4)
		stack(t, board, 0, filler, filler, filler, "p1")
		stack(t, board, 1, filler, filler, "p1")
		stack(t, board, 2, filler, "p1")
		stack(t, board, 3, "p1")

		// Then: evaluating the bottom-right token reports a win
		assert.True(t, Evaluate(board, 3, 0, 4))
	})

	t.Run("Run shorter than winning length", func(t *testing.T) {
		// Given: three p1 tokens in a row, broken by another player
		board := entity.NewBoard(4, 4)
		stack(t, board, 0, "p1")
		stack(t, board, 1, "p1")
		stack(t, board, 2, "p1")
		stack(t, board, 3, "p2")

		// Then: no win for a winning length of 4
		assert.False(t, Evaluate(board, 2, 0, 4))

		// Then: but a win for a winning length of 3
		assert.True(t, Evaluate(board, 2, 0, 3))
	})

	t.Run("Empty or off-board cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard(4, 4)

		// Then: nothing can be a win
		assert.False(t, Evaluate(board, 0, 0, 1))
		assert.False(t, Evaluate(board, 9, 9, 1))
	})

	t.Run("Board is not modified", func(t *testing.T) {
		// Given: a board with a vertical run and its snapshot
		board := entity.NewBoard(4, 4)
		stack(t, board, 1, "p1", "p1", "p1", "p1")
		before := board.Snapshot()

		// When: evaluating twice
		first := Evaluate(board, 1, 3, 4)
		second := Evaluate(board, 1, 3, 4)

		// Then: results agree and the board is unchanged
		assert.Equal(t, first, second)
		assert.Equal(t, before, board)
	})
}
