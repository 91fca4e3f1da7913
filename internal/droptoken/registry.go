package droptoken

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

// Rules are the constraints every new game must satisfy.
type Rules struct {
	AllowedPlayers int
	Rows           int
	Columns        int
	WinningLength  int
}

// Registry maps game ids to games.
type Registry struct {
	mu    sync.RWMutex
	rules Rules
	games map[string]*Game
	order []string

	generateID func() string
}

type Option func(*Registry)

// WithIDGenerator replaces the uuid based game id generator.
func WithIDGenerator(generate func() string) Option {
	return func(that *Registry) {
		that.generateID = generate
	}
}

func NewRegistry(rules Rules, opts ...Option) *Registry {
	registry := &Registry{
		rules:      rules,
		games:      make(map[string]*Game),
		generateID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

func (that *Registry) Rules() Rules {
	return that.rules
}

// CreateGame - validates the request against the rules and registers a new game.
func (that *Registry) CreateGame(players []string, rows, columns int) (*Game, error) {
	if err := that.validate(players, rows, columns); err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.generateID()
	if _, exists := that.games[id]; exists {
		return nil, fmt.Errorf("game id %s is already taken", id)
	}

	game := NewGame(id, players, columns, rows, that.rules.WinningLength)
	that.games[id] = game
	that.order = append(that.order, id)

	return game, nil
}

func (that *Registry) validate(players []string, rows, columns int) error {
	if len(players) != that.rules.AllowedPlayers {
		return fmt.Errorf("%w: expected %d players, got %d", apperror.ErrConfiguration, that.rules.AllowedPlayers, len(players))
	}

	if rows != that.rules.Rows || columns != that.rules.Columns {
		return fmt.Errorf("%w: board must be %dx%d, got %dx%d",
			apperror.ErrConfiguration, that.rules.Columns, that.rules.Rows, columns, rows)
	}

	for i, player := range players {
		if player == "" {
			return fmt.Errorf("%w: player %d has an empty id", apperror.ErrConfiguration, i)
		}

		if slices.Contains(players[:i], player) {
			return fmt.Errorf("%w: duplicate player %s", apperror.ErrConfiguration, player)
		}
	}

	return nil
}

func (that *Registry) GetGame(id string) (*Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game %s", apperror.ErrNotFound, id)
	}

	return game, nil
}

// ListActiveGames returns the ids of unfinished games in creation order.
func (that *Registry) ListActiveGames() []string {
	that.mu.RLock()
	games := make([]*Game, 0, len(that.order))
	for _, id := range that.order {
		games = append(games, that.games[id])
	}
	that.mu.RUnlock()

	active := make([]string, 0, len(games))
	for _, game := range games {
		if !game.Done() {
			active = append(active, game.ID())
		}
	}

	return active
}
