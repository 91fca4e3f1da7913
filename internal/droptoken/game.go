package droptoken

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

// QuitIndex is returned by AddMove for accepted quits; quits have no board position.
const QuitIndex = -1

// Game is the state machine of a single match. It is safe for concurrent use.
type Game struct {
	mu sync.RWMutex

	id            string
	winningLength int
	players       []string
	activeOrder   []string
	turnPointer   int
	board         *entity.Board
	placedCount   int
	winner        string
	log           *MoveLog
}

func NewGame(id string, players []string, columns, rows, winningLength int) *Game {
	return &Game{
		id:            id,
		winningLength: winningLength,
		players:       slices.Clone(players),
		activeOrder:   slices.Clone(players),
		board:         entity.NewBoard(columns, rows),
		log:           NewMoveLog(),
	}
}

func (that *Game) ID() string {
	return that.id
}

// AddMove - validates and applies a placement or a quit.
// Placements return their index in the move log, quits return QuitIndex.
func (that *Game) AddMove(move entity.Move) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.done() {
		return 0, apperror.ErrGameOver
	}

	if !slices.Contains(that.players, move.Player) {
		return 0, fmt.Errorf("%w: %s", apperror.ErrAccessDenied, move.Player)
	}

	switch move.Type {
	case entity.MoveTypeQuit:
		return that.quit(move), nil
	case entity.MoveTypePlace:
		return that.place(move)
	default:
		return 0, fmt.Errorf("%w: unknown move type %q", apperror.ErrIllegalMove, move.Type)
	}
}

func (that *Game) quit(move entity.Move) int {
	if i := slices.Index(that.activeOrder, move.Player); i >= 0 {
		that.activeOrder = slices.Delete(that.activeOrder, i, i+1)
	}

	switch len(that.activeOrder) {
	case 0:
		that.turnPointer = 0
	case 1:
		that.turnPointer = 0
		that.winner = that.activeOrder[0]
	default:
		that.turnPointer %= len(that.activeOrder)
	}

	that.log.Append(entity.NewQuitMove(move.Player))

	return QuitIndex
}

func (that *Game) place(move entity.Move) (int, error) {
	if expected := that.activeOrder[that.turnPointer]; move.Player != expected {
		return 0, fmt.Errorf("%w: waiting for %s", apperror.ErrOutOfTurn, expected)
	}

	if move.Column == nil {
		return 0, fmt.Errorf("%w: column is required", apperror.ErrIllegalMove)
	}

	column := *move.Column

	row, err := that.board.Drop(column, move.Player)
	if err != nil {
		return 0, err
	}

	if Evaluate(that.board, column, row, that.winningLength) {
		that.winner = move.Player
	}

	that.turnPointer = (that.turnPointer + 1) % len(that.activeOrder)
	that.placedCount++

	return that.log.Append(entity.NewPlaceMove(move.Player, column)), nil
}

func (that *Game) Done() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.done()
}

func (that *Game) done() bool {
	return that.winner != "" || len(that.activeOrder) <= 1 || that.placedCount == that.board.Size()
}

// Status - roster, state and winner as seen by clients.
func (that *Game) Status() entity.Status {
	that.mu.RLock()
	defer that.mu.RUnlock()

	state := entity.StatusInProgress
	if that.done() {
		state = entity.StatusDone
	}

	return entity.Status{
		Players: slices.Clone(that.players),
		State:   state,
		Winner:  that.winner,
	}
}

func (that *Game) Moves(start, until int) ([]entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.log.Slice(start, until)
}

func (that *Game) Move(index int) (entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.log.At(index)
}

func (that *Game) MoveCount() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.log.Len()
}

func (that *Game) IsPlayer(player string) bool {
	return slices.Contains(that.players, player)
}

func (that *Game) ActiveOrder() []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return slices.Clone(that.activeOrder)
}

// NextPlayer returns the player expected to place next, or "" once the game is over.
func (that *Game) NextPlayer() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.done() {
		return ""
	}

	return that.activeOrder[that.turnPointer]
}

// Board returns a copy of the current board.
func (that *Game) Board() *entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.board.Snapshot()
}
