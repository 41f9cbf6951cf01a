package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gobang/internal/engine"
	"gobang/internal/gobang"
)

// Options picks the settings of one new game.
type Options struct {
	Depth      int
	HumanColor gobang.Color
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session

	evalCacheCap int
	log          *zap.SugaredLogger
}

func NewManager(log *zap.SugaredLogger, evalCacheCap int) *Manager {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		games:        make(map[string]*Session),
		evalCacheCap: evalCacheCap,
		log:          log,
	}
}

// NewGame starts a session. When the human takes white the computer opens on
// the centre point straight away.
func (m *Manager) NewGame(opts Options) (*Session, error) {
	if !opts.HumanColor.Valid() {
		return nil, fmt.Errorf("human colour %d: %w", opts.HumanColor, engine.ErrInvalidColor)
	}
	cfg := engine.DefaultConfig()
	cfg.Depth = opts.Depth
	cfg.ComputerColor = opts.HumanColor.Opponent()
	if m.evalCacheCap > 0 {
		cfg.EvalCacheCap = m.evalCacheCap
	}

	id := uuid.NewString()
	log := m.log.With("game_id", id)
	eng, err := engine.NewEngine(cfg, engine.WithLogger(log))
	if err != nil {
		return nil, err
	}
	s := newSession(id, eng, log)
	if cfg.ComputerColor == gobang.Black {
		if err := s.seedCenter(); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.games[id] = s
	m.mu.Unlock()

	m.log.Infow("new game", "game_id", id, "depth", cfg.Depth, "human_color", opts.HumanColor.String())
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrGameNotFound)
	}
	return s, nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
