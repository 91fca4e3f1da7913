package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type DropTokenHandler interface {
	ListGames(w http.ResponseWriter, r *http.Request)
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)

	PostMove(w http.ResponseWriter, r *http.Request)
	PlayerQuit(w http.ResponseWriter, r *http.Request)

	GetMoves(w http.ResponseWriter, r *http.Request)
	GetMove(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	CreateGame(ctx context.Context, players []string, rows, columns int) (string, error)
	ListActiveGames(ctx context.Context) []string
	GetStatus(ctx context.Context, gameID string) (entity.Status, error)

	PostMove(ctx context.Context, gameID, playerID string, column int) (int, error)
	PlayerQuit(ctx context.Context, gameID, playerID string) error

	GetMoves(ctx context.Context, gameID string, start, until *int) ([]entity.Move, error)
	GetMove(ctx context.Context, gameID string, index int) (entity.Move, error)
}

type createGameRequest struct {
	Players []string `json:"players"`
	Columns *int     `json:"columns"`
	Rows    *int     `json:"rows"`
}

type createGameResponse struct {
	GameID string `json:"gameId"`
}

type gamesResponse struct {
	Games []string `json:"games"`
}

type postMoveRequest struct {
	Column *int `json:"column"`
}

type postMoveResponse struct {
	Move string `json:"move"`
}

type movesResponse struct {
	Moves []entity.Move `json:"moves"`
}

type dropTokenHandler struct {
	logger *slog.Logger
	games  gameService
}

func NewDropTokenHandler(logger *slog.Logger, games gameService) DropTokenHandler {
	return &dropTokenHandler{
		logger: logger.With("component", "drop_token_handler"),
		games:  games,
	}
}

func (that *dropTokenHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(that.logger, w, http.StatusOK, gamesResponse{Games: that.games.ListActiveGames(r.Context())})
}

func (that *dropTokenHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var request createGameRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if request.Players == nil || request.Columns == nil || request.Rows == nil {
		writeError(that.logger, w, fmt.Errorf("%w: players, columns and rows are required", apperror.ErrInvalidRequest))
		return
	}

	gameID, err := that.games.CreateGame(r.Context(), request.Players, *request.Rows, *request.Columns)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, createGameResponse{GameID: gameID})
}

func (that *dropTokenHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := that.games.GetStatus(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, status)
}

func (that *dropTokenHandler) PostMove(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var request postMoveRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(that.logger, w, err)
		return
	}

	if request.Column == nil {
		writeError(that.logger, w, fmt.Errorf("%w: column is required", apperror.ErrInvalidRequest))
		return
	}

	index, err := that.games.PostMove(r.Context(), gameID, chi.URLParam(r, "playerID"), *request.Column)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, postMoveResponse{Move: fmt.Sprintf("%s/moves/%d", gameID, index)})
}

func (that *dropTokenHandler) PlayerQuit(w http.ResponseWriter, r *http.Request) {
	if err := that.games.PlayerQuit(r.Context(), chi.URLParam(r, "gameID"), chi.URLParam(r, "playerID")); err != nil {
		writeError(that.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (that *dropTokenHandler) GetMoves(w http.ResponseWriter, r *http.Request) {
	start, err := optionalInt(r, "start")
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	until, err := optionalInt(r, "until")
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	moves, err := that.games.GetMoves(r.Context(), chi.URLParam(r, "gameID"), start, until)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, movesResponse{Moves: moves})
}

func (that *dropTokenHandler) GetMove(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "moveNumber"))
	if err != nil {
		writeError(that.logger, w, fmt.Errorf("%w: move number must be an integer", apperror.ErrInvalidRequest))
		return
	}

	move, err := that.games.GetMove(r.Context(), chi.URLParam(r, "gameID"), index)
	if err != nil {
		writeError(that.logger, w, err)
		return
	}

	writeJSON(that.logger, w, http.StatusOK, move)
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	return nil
}

// optionalInt - reads an integer query parameter, nil when absent.
func optionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil // absent parameter
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", apperror.ErrInvalidRequest, name)
	}

	return &value, nil
}
