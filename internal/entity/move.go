package entity

type MoveType string

const (
	MoveTypePlace MoveType = "MOVE"
	MoveTypeQuit  MoveType = "QUIT"
)

// Move is a single move log entry. Column is nil for quits.
type Move struct {
	Index  int      `json:"-"`
	Type   MoveType `json:"type"`
	Player string   `json:"player"`
	Column *int     `json:"column,omitempty"`
}

func NewPlaceMove(player string, column int) Move {
	return Move{
		Type:   MoveTypePlace,
		Player: player,
		Column: &column,
	}
}

func NewQuitMove(player string) Move {
	return Move{
		Type:   MoveTypeQuit,
		Player: player,
	}
}

func (that Move) IsQuit() bool {
	return that.Type == MoveTypeQuit
}

// MoveEvent is published after a move has been accepted by a game.
type MoveEvent struct {
	GameID string `json:"game_id"`
	Move   Move   `json:"move"`
	Index  int    `json:"index"`
	State  string `json:"state"`
	Winner string `json:"winner,omitempty"`
}
