package droptoken

import (
	"fmt"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

// MoveLog is an append-only record of placements and quits.
type MoveLog struct {
	moves []entity.Move
}

func NewMoveLog() *MoveLog {
	return &MoveLog{}
}

// Append stores move and returns its index in the log.
func (that *MoveLog) Append(move entity.Move) int {
	move.Index = len(that.moves)
	that.moves = append(that.moves, move)

	return move.Index
}

func (that *MoveLog) Len() int {
	return len(that.moves)
}

// Slice returns a copy of the entries in [start, until).
func (that *MoveLog) Slice(start, until int) ([]entity.Move, error) {
	if start < 0 || until > len(that.moves) || start > until {
		return nil, fmt.Errorf("%w: [%d, %d) outside log of %d moves", apperror.ErrRange, start, until, len(that.moves))
	}

	moves := make([]entity.Move, until-start)
	copy(moves, that.moves[start:until])

	return moves, nil
}

func (that *MoveLog) At(index int) (entity.Move, error) {
	if index < 0 || index >= len(that.moves) {
		return entity.Move{}, fmt.Errorf("%w: move %d", apperror.ErrNotFound, index)
	}

	return that.moves[index], nil
}
