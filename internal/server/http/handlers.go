package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gobang/internal/gobang"
	"gobang/internal/server/game"
)

var errBadRequest = errors.New("bad request")

// Handler serves the /api routes for a set of games.
type Handler struct {
	games        *game.Manager
	log          *zap.SugaredLogger
	defaultDepth int
	pollInterval time.Duration
}

type Options struct {
	DefaultDepth int
	PollInterval time.Duration // websocket frame interval
}

func NewHandler(games *game.Manager, log *zap.SugaredLogger, opts Options) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	return &Handler{
		games:        games,
		log:          log,
		defaultDepth: opts.DefaultDepth,
		pollInterval: opts.PollInterval,
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: bad json: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// An empty body starts a game with the defaults.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, fmt.Errorf("%w: bad json: %v", errBadRequest, err))
		return
	}
	if req.Depth == 0 {
		req.Depth = h.defaultDepth
	}
	human := gobang.Black
	if req.HumanColor != "" {
		c, err := gobang.ParseColor(req.HumanColor)
		if err != nil {
			writeError(w, h.log, fmt.Errorf("%w: %v", errBadRequest, err))
			return
		}
		human = c
	}

	s, err := h.games.NewGame(game.Options{Depth: req.Depth, HumanColor: human})
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(s.Poll()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	snap, err := s.Play(dtoToCoord(req.Move))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(snap))
}

// handleState never waits: a finished search is applied to the board first.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(s.Poll()))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
