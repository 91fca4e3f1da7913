package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - wires the drop_token routes.
func NewRouter(logger *slog.Logger, handler DropTokenHandler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger.With("component", "http")))
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler(logger))

	router.Route("/drop_token", func(r chi.Router) {
		r.Get("/", handler.ListGames)
		r.Post("/", handler.CreateGame)

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", handler.GetStatus)
			r.Get("/moves", handler.GetMoves)
			r.Get("/moves/{moveNumber}", handler.GetMove)
			r.Post("/{playerID}", handler.PostMove)
			r.Delete("/{playerID}", handler.PlayerQuit)
		})
	})

	return router
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
