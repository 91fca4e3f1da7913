package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/droptoken"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type GameService interface {
	CreateGame(ctx context.Context, players []string, rows, columns int) (string, error)
	ListActiveGames(ctx context.Context) []string
	GetStatus(ctx context.Context, gameID string) (entity.Status, error)

	PostMove(ctx context.Context, gameID, playerID string, column int) (int, error)
	PlayerQuit(ctx context.Context, gameID, playerID string) error

	GetMoves(ctx context.Context, gameID string, start, until *int) ([]entity.Move, error)
	GetMove(ctx context.Context, gameID string, index int) (entity.Move, error)
}

type gameRegistry interface {
	CreateGame(players []string, rows, columns int) (*droptoken.Game, error)
	GetGame(id string) (*droptoken.Game, error)
	ListActiveGames() []string
}

type movePublisher interface {
	Publish(ctx context.Context, event entity.MoveEvent) error
}

type gameService struct {
	logger *slog.Logger

	registry  gameRegistry
	publisher movePublisher
}

// NewGameService - publisher may be nil when no event feed is configured.
func NewGameService(logger *slog.Logger, registry gameRegistry, publisher movePublisher) GameService {
	return &gameService{
		logger:    logger.With("component", "game_service"),
		registry:  registry,
		publisher: publisher,
	}
}

func (that *gameService) CreateGame(_ context.Context, players []string, rows, columns int) (string, error) {
	game, err := that.registry.CreateGame(players, rows, columns)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID(), "players", players, "rows", rows, "columns", columns)

	return game.ID(), nil
}

func (that *gameService) ListActiveGames(_ context.Context) []string {
	return that.registry.ListActiveGames()
}

func (that *gameService) GetStatus(_ context.Context, gameID string) (entity.Status, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return entity.Status{}, err
	}

	return game.Status(), nil
}

func (that *gameService) PostMove(ctx context.Context, gameID, playerID string, column int) (int, error) {
	log := that.logger.With("method", "PostMove", "game_id", gameID, "player_id", playerID)

	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return 0, err
	}

	move := entity.NewPlaceMove(playerID, column)

	index, err := game.AddMove(move)
	if err != nil {
		log.Debug("move rejected", "column", column, "error", err)
		return 0, fmt.Errorf("failed to post move: %w", err)
	}

	log.Info("move accepted", "column", column, "index", index)
	that.publish(ctx, game, move, index)

	return index, nil
}

func (that *gameService) PlayerQuit(ctx context.Context, gameID, playerID string) error {
	log := that.logger.With("method", "PlayerQuit", "game_id", gameID, "player_id", playerID)

	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return err
	}

	if !game.IsPlayer(playerID) {
		return fmt.Errorf("%w: player %s in game %s", apperror.ErrNotFound, playerID, gameID)
	}

	move := entity.NewQuitMove(playerID)

	index, err := game.AddMove(move)
	if err != nil {
		log.Debug("quit rejected", "error", err)
		return fmt.Errorf("failed to quit game: %w", err)
	}

	log.Info("player quit")
	that.publish(ctx, game, move, index)

	return nil
}

// GetMoves - nil bounds default to the start and the end of the log.
func (that *gameService) GetMoves(_ context.Context, gameID string, start, until *int) ([]entity.Move, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return nil, err
	}

	from := 0
	if start != nil {
		from = *start
	}

	to := game.MoveCount()
	if until != nil {
		to = *until
	}

	moves, err := game.Moves(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

func (that *gameService) GetMove(_ context.Context, gameID string, index int) (entity.Move, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return entity.Move{}, err
	}

	move, err := game.Move(index)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	return move, nil
}

func (that *gameService) publish(ctx context.Context, game *droptoken.Game, move entity.Move, index int) {
	if that.publisher == nil {
		return
	}

	status := game.Status()
	event := entity.MoveEvent{
		GameID: game.ID(),
		Move:   move,
		Index:  index,
		State:  status.State,
		Winner: status.Winner,
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish move event", "game_id", game.ID(), "error", err)
	}
}
