package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"portfolio-backend/internal/game"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 50
)

// SessionStore persists in-progress game sessions.
type SessionStore interface {
	Save(ctx context.Context, s *models.GameSession) error
	Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	// ClaimScore reports true the first time it is called for a session run.
	ClaimScore(ctx context.Context, id uuid.UUID, run int) (bool, error)
}

// ScoreStore persists finished runs for the leaderboard.
type ScoreStore interface {
	Create(ctx context.Context, score *models.GameScore) error
	Top(ctx context.Context, limit int) ([]*models.GameScore, error)
}

// ScoreRecorder takes ownership of a finished run's score.
type ScoreRecorder interface {
	Record(ctx context.Context, score *models.GameScore) error
}

const sessionLockStripes = 64

type GameService struct {
	engine   *game.Engine
	sessions SessionStore
	scores   ScoreStore
	recorder ScoreRecorder

	// Load-modify-save on one session runs under its stripe so two swipes in this
	// process cannot both apply to the same state.
	locks [sessionLockStripes]sync.Mutex
}

func NewGameService(engine *game.Engine, sessions SessionStore, scores ScoreStore) *GameService {
	return &GameService{engine: engine, sessions: sessions, scores: scores}
}

// UseRecorder hands game-over scores to r instead of writing them inline.
func (s *GameService) UseRecorder(r ScoreRecorder) {
	s.recorder = r
}

func (s *GameService) lock(id uuid.UUID) func() {
	mu := &s.locks[binary.BigEndian.Uint32(id[12:])%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

func (s *GameService) recordScore(ctx context.Context, score *models.GameScore) error {
	if s.recorder != nil {
		return s.recorder.Record(ctx, score)
	}
	return s.scores.Create(ctx, score)
}

// Create boots a new session and leaves it on the tutorial screen.
func (s *GameService) Create(ctx context.Context) (*models.GameSession, error) {
	session := s.engine.NewSession()
	if err := s.engine.Load(session); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

func (s *GameService) Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, &NotFoundError{Message: "Game session not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

func (s *GameService) Start(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	defer s.lock(id)()

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Start(session); err != nil {
		return nil, gameError(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Choose applies a swipe. When the run ends the score is recorded once, even if
// another server raced this one on the same session.
func (s *GameService) Choose(ctx context.Context, id uuid.UUID, dir models.Direction) (*models.GameSession, error) {
	defer s.lock(id)()

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	over, err := s.engine.Choose(session, dir)
	if err != nil {
		return nil, gameError(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if over {
		s.finishRun(ctx, session)
	}
	return session, nil
}

// finishRun records the score of a run that just ended. Failures are logged only:
// the run itself is already saved.
func (s *GameService) finishRun(ctx context.Context, session *models.GameSession) {
	first, err := s.sessions.ClaimScore(ctx, session.ID, session.Run)
	if err != nil {
		log.Printf("failed to claim score for session %s run %d: %v", session.ID, session.Run, err)
		return
	}
	if !first {
		return
	}

	score := &models.GameScore{SessionID: session.ID, Score: session.Epoch}
	if err := s.recordScore(ctx, score); err != nil {
		log.Printf("failed to record score for session %s: %v", session.ID, err)
	}
}

func (s *GameService) Leaderboard(ctx context.Context, limit int) ([]*models.GameScore, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}
	scores, err := s.scores.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if scores == nil {
		scores = []*models.GameScore{}
	}
	return scores, nil
}

func gameError(err error) error {
	switch {
	case errors.Is(err, game.ErrInvalidDirection):
		return &ValidationError{Message: "Direction must be left or right"}
	case errors.Is(err, game.ErrInvalidTransition):
		return &ConflictError{Message: "Action not allowed in the current game state"}
	default:
		return err
	}
}
