package droptoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

func TestMoveLog(t *testing.T) {
	newLog := func() *MoveLog {
		log := NewMoveLog()
		log.Append(entity.NewPlaceMove("p1", 0))
		log.Append(entity.NewQuitMove("p2"))
		log.Append(entity.NewPlaceMove("p1", 3))

		return log
	}

	t.Run("Append returns consecutive indexes", func(t *testing.T) {
		// Given: an empty log
		log := NewMoveLog()

		// When: appending two moves
		first := log.Append(entity.NewPlaceMove("p1", 0))
		second := log.Append(entity.NewQuitMove("p2"))

		// Then: indexes start at 0 and grow by one
		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, 2, log.Len())
	})

	t.Run("Slice returns entries in submission order", func(t *testing.T) {
		// Given: a log with three moves
		log := newLog()

		// When: slicing the first two
		moves, err := log.Slice(0, 2)

		// Then: the placement and the quit are returned
		require.NoError(t, err)
		require.Len(t, moves, 2)
		assert.Equal(t, entity.MoveTypePlace, moves[0].Type)
		assert.Equal(t, entity.MoveTypeQuit, moves[1].Type)
		assert.Equal(t, 1, moves[1].Index)
	})

	t.Run("Slice accepts empty and full ranges", func(t *testing.T) {
		log := newLog()

		empty, err := log.Slice(3, 3)
		require.NoError(t, err)
		assert.Empty(t, empty)

		all, err := log.Slice(0, 3)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Slice rejects invalid bounds", func(t *testing.T) {
		log := newLog()

		for _, bounds := range [][2]int{{-1, 2}, {0, 4}, {2, 1}} {
			_, err := log.Slice(bounds[0], bounds[1])
			require.ErrorIs(t, err, apperror.ErrRange, "bounds %v", bounds)
		}
	})

	t.Run("Slice result does not alias the log", func(t *testing.T) {
		// Given: a slice of the log
		log := newLog()
		moves, err := log.Slice(0, 1)
		require.NoError(t, err)

		// When: the caller modifies it
		moves[0].Player = "intruder"

		// Then: the log entry is unchanged
		move, err := log.At(0)
		require.NoError(t, err)
		assert.Equal(t, "p1", move.Player)
	})

	t.Run("At returns NotFound outside the log", func(t *testing.T) {
		log := newLog()

		_, err := log.At(-1)
		require.ErrorIs(t, err, apperror.ErrNotFound)

		_, err = log.At(3)
		require.ErrorIs(t, err, apperror.ErrNotFound)

		move, err := log.At(2)
		require.NoError(t, err)
		require.NotNil(t, move.Column)
		assert.Equal(t, 3, *move.Column)
	})
}
