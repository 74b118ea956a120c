package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/models"
)

const (
	MetricMin     = 0
	MetricMax     = 100
	InitialMetric = 50
)

var (
	ErrInvalidTransition = errors.New("invalid game state transition")
	ErrInvalidDirection  = errors.New("direction must be left or right")
)

// Engine drives the loading → tutorial → playing → gameover state machine.
// pick returns a random index in [0, n).
type Engine struct {
	pick func(n int) int
	now  func() time.Time
}

func NewEngine(pick func(n int) int) *Engine {
	if pick == nil {
		pick = rand.IntN
	}
	return &Engine{pick: pick, now: time.Now}
}

func InitialMetrics() models.Metrics {
	return models.Metrics{Accuracy: InitialMetric, Compute: InitialMetric, Stability: InitialMetric}
}

// NewSession returns a session in the loading state.
func (e *Engine) NewSession() *models.GameSession {
	now := e.now()
	return &models.GameSession{
		ID:        uuid.New(),
		State:     models.GameStateLoading,
		Metrics:   InitialMetrics(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Load finishes booting and shows the tutorial.
func (e *Engine) Load(s *models.GameSession) error {
	if s.State != models.GameStateLoading {
		return fmt.Errorf("%w: load from %s", ErrInvalidTransition, s.State)
	}
	s.State = models.GameStateTutorial
	s.UpdatedAt = e.now()
	return nil
}

// Start begins a fresh run from the tutorial or after a game over.
func (e *Engine) Start(s *models.GameSession) error {
	if s.State != models.GameStateTutorial && s.State != models.GameStateGameOver {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.State)
	}
	s.State = models.GameStatePlaying
	s.Run++
	s.Metrics = InitialMetrics()
	s.Epoch = 0
	s.Scenario = e.draw()
	s.UpdatedAt = e.now()
	return nil
}

// Choose applies the chosen outcome of the current scenario. It reports whether
// the run ended on this turn.
func (e *Engine) Choose(s *models.GameSession, dir models.Direction) (bool, error) {
	if s.State != models.GameStatePlaying || s.Scenario == nil {
		return false, fmt.Errorf("%w: choose from %s", ErrInvalidTransition, s.State)
	}

	var outcome models.Outcome
	switch dir {
	case models.DirectionLeft:
		outcome = s.Scenario.Left
	case models.DirectionRight:
		outcome = s.Scenario.Right
	default:
		return false, ErrInvalidDirection
	}

	s.Metrics = Apply(s.Metrics, outcome.Effects)
	s.Epoch++
	s.UpdatedAt = e.now()

	if Depleted(s.Metrics) {
		s.State = models.GameStateGameOver
		s.Scenario = nil
		if s.Epoch > s.HighScore {
			s.HighScore = s.Epoch
		}
		return true, nil
	}

	s.Scenario = e.draw()
	return false, nil
}

func (e *Engine) draw() *models.Scenario {
	sc := scenarios[e.pick(len(scenarios))]
	return &sc
}

// Apply adds the deltas and clamps every metric to [MetricMin, MetricMax].
func Apply(m, delta models.Metrics) models.Metrics {
	return models.Metrics{
		Accuracy:  clamp(m.Accuracy + delta.Accuracy),
		Compute:   clamp(m.Compute + delta.Compute),
		Stability: clamp(m.Stability + delta.Stability),
	}
}

// Depleted reports whether any metric has hit zero.
func Depleted(m models.Metrics) bool {
	return m.Accuracy <= MetricMin || m.Compute <= MetricMin || m.Stability <= MetricMin
}

func clamp(v int) int {
	return min(MetricMax, max(MetricMin, v))
}
