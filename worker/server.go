package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"boardgames/config"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const maxRequestBytes = 1 << 16

// Server answers best-move requests over HTTP and websocket sessions. Every
// search runs under the configured timeout.
type Server struct {
	timeout  time.Duration
	upgrader websocket.Upgrader
}

func NewServer(timeout time.Duration) *Server {
	return &Server{
		timeout:  timeout,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tictactoe/bestmove", s.handleBestMove(config.TicTacToe))
	mux.HandleFunc("POST /checkers/bestmove", s.handleBestMove(config.Checkers))
	mux.HandleFunc("GET /ws", s.handleSession)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("worker listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down worker: %w", err)
	}
	log.Info().Msg("worker stopped")
	return nil
}

func (s *Server) handleBestMove(g config.Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			writeError(w, g, fmt.Errorf("%w: %w", ErrBadRequest, err))
			return
		}

		response, err := bestMove(r.Context(), s.timeout, g, body)
		if err != nil {
			writeError(w, g, err)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, g config.Game, err error) {
	status := statusOf(err)
	log.Warn().Err(err).Str("game", string(g)).Int("status", status).Msg("best move request failed")
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
