package entity

const (
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// Status is the public view of a game.
type Status struct {
	Players []string `json:"players"`
	State   string   `json:"state"`
	Winner  string   `json:"winner,omitempty"`
}

func (that Status) IsDone() bool {
	return that.State == StatusDone
}

func (that Status) HasWinner() bool {
	return that.Winner != ""
}
