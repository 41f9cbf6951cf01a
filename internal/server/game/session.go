package game

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

// Session is one human-vs-computer game. The engine is touched either by the
// session under mu or by the single search goroutine, never by both: while
// status is StatusThinking only the goroutine may use it, and the session
// answers readers from its own grid mirror.
type Session struct {
	ID         string
	Depth      int
	HumanColor gobang.Color
	CreatedAt  time.Time

	log *zap.SugaredLogger

	mu        sync.Mutex
	eng       *engine.Engine
	grid      gobang.Grid
	moves     []gobang.Coord
	status    Status
	winLine   []gobang.Coord
	version   uint64
	updatedAt time.Time
	last      *engine.SearchResult
	pending   chan searchDone
}

func newSession(id string, eng *engine.Engine, log *zap.SugaredLogger) *Session {
	cfg := eng.Config()
	now := time.Now()
	return &Session{
		ID:         id,
		Depth:      cfg.Depth,
		HumanColor: cfg.ComputerColor.Opponent(),
		CreatedAt:  now,
		log:        log,
		eng:        eng,
		status:     StatusHumanTurn,
		updatedAt:  now,
		pending:    make(chan searchDone, 1),
	}
}

// seedCenter places the computer's opening stone when it plays black.
func (s *Session) seedCenter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.eng.RecordComputerMove(gobang.Center); err != nil {
		return err
	}
	s.applyLocked(gobang.Center, s.HumanColor.Opponent())
	return nil
}

// Play records the human's stone and, unless that ended the game, starts the
// computer's search in the background. Poll collects the reply.
func (s *Session) Play(c gobang.Coord) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collectLocked()
	switch {
	case s.status == StatusThinking:
		return s.snapshotLocked(), ErrThinking
	case s.status.Finished():
		return s.snapshotLocked(), ErrGameFinished
	case s.toMoveLocked() != s.HumanColor:
		return s.snapshotLocked(), ErrNotYourTurn
	}

	if err := s.eng.RecordHumanMove(c); err != nil {
		return s.snapshotLocked(), fmt.Errorf("play %v: %w", c, err)
	}
	s.applyLocked(c, s.HumanColor)

	switch {
	case s.eng.IsGameOver():
		s.settleLocked(s.eng.Outcome(), s.eng.WinningLine(), false)
	case s.eng.Full():
		s.settleLocked(gobang.Ongoing, nil, true)
	default:
		s.status = StatusThinking
		s.touchLocked()
		go s.think()
	}
	return s.snapshotLocked(), nil
}

// think runs on its own goroutine. It has exclusive use of the engine until it
// fills the pending slot.
func (s *Session) think() {
	var d searchDone
	d.res, d.err = s.eng.Search()
	if s.eng.IsGameOver() {
		d.outcome = s.eng.Outcome()
		d.line = s.eng.WinningLine()
	}
	d.full = s.eng.Full()
	s.pending <- d
}

// Poll applies a finished search if one is waiting and returns the current
// state. It never blocks on the search.
func (s *Session) Poll() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectLocked()
	return s.snapshotLocked()
}

func (s *Session) collectLocked() {
	if s.status != StatusThinking {
		return
	}
	var d searchDone
	select {
	case d = <-s.pending:
	default:
		return
	}

	if d.err != nil {
		// The computer has no move to make, so the game ends here.
		s.log.Errorw("computer search failed", "error", d.err)
		s.settleLocked(d.outcome, d.line, d.outcome == gobang.Ongoing)
		return
	}

	res := d.res
	s.last = &res
	s.applyLocked(res.Move, s.HumanColor.Opponent())
	s.log.Debugw("computer move applied", "move", res.Move.String(), "score", res.Score)

	switch {
	case d.outcome != gobang.Ongoing:
		s.settleLocked(d.outcome, d.line, false)
	case d.full:
		s.settleLocked(gobang.Ongoing, nil, true)
	default:
		s.status = StatusHumanTurn
		s.touchLocked()
	}
}

func (s *Session) applyLocked(c gobang.Coord, color gobang.Color) {
	s.grid.Set(c, gobang.CellOf(color))
	s.moves = append(s.moves, c)
	s.touchLocked()
}

func (s *Session) settleLocked(outcome gobang.Outcome, line []gobang.Coord, draw bool) {
	switch {
	case draw:
		s.status = StatusDraw
	case outcome == gobang.ComputerWon:
		s.status = StatusComputerWon
	case outcome == gobang.HumanWon:
		s.status = StatusHumanWon
	}
	s.winLine = line
	s.touchLocked()
	s.log.Infow("game settled", "status", string(s.status), "moves", len(s.moves))
}

func (s *Session) touchLocked() {
	s.version++
	s.updatedAt = time.Now()
}

func (s *Session) toMoveLocked() gobang.Color {
	if len(s.moves)%2 == 0 {
		return gobang.Black
	}
	return gobang.White
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:         s.ID,
		Version:    s.version,
		Depth:      s.Depth,
		HumanColor: s.HumanColor,
		Grid:       s.grid,
		Moves:      append([]gobang.Coord(nil), s.moves...),
		Status:     s.status,
		WinLine:    append([]gobang.Coord(nil), s.winLine...),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.updatedAt,
	}
	if n := len(s.moves); n > 0 {
		last := s.moves[n-1]
		snap.LastMove = &last
	}
	if s.last != nil {
		res := *s.last
		snap.LastSearch = &res
	}
	return snap
}
