package apperror

import "errors"

var (
	ErrConfiguration  = errors.New("invalid game configuration")
	ErrGameOver       = errors.New("game is already finished")
	ErrAccessDenied   = errors.New("player is not part of the game")
	ErrOutOfTurn      = errors.New("it's not your turn")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotFound       = errors.New("not found")
	ErrRange          = errors.New("invalid range")
	ErrInvalidRequest = errors.New("invalid request")
)
