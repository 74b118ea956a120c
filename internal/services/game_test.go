package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/game"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

type failingScoreRepo struct {
	calls int
}

func (r *failingScoreRepo) Create(ctx context.Context, score *models.GameScore) error {
	r.calls++
	return errors.New("db down")
}

func (r *failingScoreRepo) Top(ctx context.Context, limit int) ([]*models.GameScore, error) {
	return nil, errors.New("db down")
}

func newTestGameService(pick int) (*GameService, *repository.MemoryScoreRepo) {
	scores := repository.NewMemoryScoreRepo()
	engine := game.NewEngine(func(int) int { return pick })
	return NewGameService(engine, repository.NewMemorySessionRepo(time.Hour), scores), scores
}

func TestGameService_CreateStartsAtTutorial(t *testing.T) {
	svc, _ := newTestGameService(0)

	s, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.GameStateTutorial, s.State)

	loaded, err := svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
}

func TestGameService_GetUnknown(t *testing.T) {
	svc, _ := newTestGameService(0)

	_, err := svc.Get(context.Background(), uuid.New())
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGameService_ChooseBeforeStartConflicts(t *testing.T) {
	svc, _ := newTestGameService(0)
	s, err := svc.Create(context.Background())
	require.NoError(t, err)

	_, err = svc.Choose(context.Background(), s.ID, models.DirectionLeft)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestGameService_BadDirection(t *testing.T) {
	svc, _ := newTestGameService(0)
	ctx := context.Background()
	s, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.Start(ctx, s.ID)
	require.NoError(t, err)

	_, err = svc.Choose(ctx, s.ID, "down")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGameService_GameOverRecordsScore(t *testing.T) {
	// Scenario 5 left drains stability by 25 per turn.
	svc, scores := newTestGameService(4)
	ctx := context.Background()

	s, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.Start(ctx, s.ID)
	require.NoError(t, err)

	_, err = svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)
	final, err := svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)
	assert.Equal(t, models.GameStateGameOver, final.State)

	top, err := scores.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Score)
	assert.Equal(t, s.ID, top[0].SessionID)

	// Further choices are rejected and record nothing.
	_, err = svc.Choose(ctx, s.ID, models.DirectionLeft)
	assert.Error(t, err)
	top, _ = scores.Top(ctx, 10)
	assert.Len(t, top, 1)
}

func TestGameService_ScoreFailureDoesNotFailChoice(t *testing.T) {
	scores := &failingScoreRepo{}
	engine := game.NewEngine(func(int) int { return 4 })
	svc := NewGameService(engine, repository.NewMemorySessionRepo(time.Hour), scores)
	ctx := context.Background()

	s, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.Start(ctx, s.ID)
	require.NoError(t, err)
	_, err = svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)

	final, err := svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)
	assert.Equal(t, models.GameStateGameOver, final.State)
	assert.Equal(t, 1, scores.calls)
}

func TestGameService_LeaderboardLimits(t *testing.T) {
	svc, scores := newTestGameService(0)
	ctx := context.Background()
	for i := 0; i < 60; i++ {
		require.NoError(t, scores.Create(ctx, &models.GameScore{Score: i}))
	}

	top, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, top, DefaultLeaderboardSize)
	assert.Equal(t, 59, top[0].Score)

	top, err = svc.Leaderboard(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, top, MaxLeaderboardSize)
}

func TestGameService_LeaderboardEmptyIsNotNil(t *testing.T) {
	svc, _ := newTestGameService(0)
	top, err := svc.Leaderboard(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

type capturingRecorder struct {
	scores []*models.GameScore
}

func (r *capturingRecorder) Record(ctx context.Context, score *models.GameScore) error {
	r.scores = append(r.scores, score)
	return nil
}

func TestGameService_UseRecorder(t *testing.T) {
	svc, scores := newTestGameService(4)
	rec := &capturingRecorder{}
	svc.UseRecorder(rec)
	ctx := context.Background()

	s, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.Start(ctx, s.ID)
	require.NoError(t, err)
	_, err = svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)
	_, err = svc.Choose(ctx, s.ID, models.DirectionLeft)
	require.NoError(t, err)

	require.Len(t, rec.scores, 1)
	assert.Equal(t, 2, rec.scores[0].Score)

	top, err := scores.Top(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

// slowSessions adds a round-trip delay to Get so concurrent swipes overlap.
type slowSessions struct {
	*repository.MemorySessionRepo
	delay time.Duration
}

func (s *slowSessions) Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	time.Sleep(s.delay)
	return s.MemorySessionRepo.Get(ctx, id)
}

// oneSwipeFromGameOver starts a run and leaves every metric at 1.
func oneSwipeFromGameOver(t *testing.T, svc *GameService, sessions SessionStore) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	s, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = svc.Start(ctx, s.ID)
	require.NoError(t, err)

	loaded, err := sessions.Get(ctx, s.ID)
	require.NoError(t, err)
	loaded.Metrics = models.Metrics{Accuracy: 1, Compute: 1, Stability: 1}
	require.NoError(t, sessions.Save(ctx, loaded))
	return s.ID
}

func chooseConcurrently(svcs []*GameService, id uuid.UUID) []error {
	errs := make([]error, len(svcs))
	var wg sync.WaitGroup
	for i, svc := range svcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Choose(context.Background(), id, models.DirectionLeft)
		}()
	}
	wg.Wait()
	return errs
}

func TestGameService_ConcurrentChoicesEndRunOnce(t *testing.T) {
	sessions := &slowSessions{MemorySessionRepo: repository.NewMemorySessionRepo(time.Hour), delay: 30 * time.Millisecond}
	scores := repository.NewMemoryScoreRepo()
	svc := NewGameService(game.NewEngine(func(int) int { return 0 }), sessions, scores)

	id := oneSwipeFromGameOver(t, svc, sessions)
	errs := chooseConcurrently([]*GameService{svc, svc}, id)

	var conflicts int
	for _, err := range errs {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			conflicts++
		} else {
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 1, conflicts)

	top, err := scores.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestGameService_ScoreClaimedOnceAcrossServers(t *testing.T) {
	// Two services share storage but not locks, like two server processes.
	sessions := &slowSessions{MemorySessionRepo: repository.NewMemorySessionRepo(time.Hour), delay: 30 * time.Millisecond}
	scores := repository.NewMemoryScoreRepo()
	engine := game.NewEngine(func(int) int { return 0 })
	a := NewGameService(engine, sessions, scores)
	b := NewGameService(engine, sessions, scores)

	id := oneSwipeFromGameOver(t, a, sessions)
	for _, err := range chooseConcurrently([]*GameService{a, b}, id) {
		require.NoError(t, err)
	}

	top, err := scores.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestGameService_EachRunRecordsItsOwnScore(t *testing.T) {
	sessions := repository.NewMemorySessionRepo(time.Hour)
	scores := repository.NewMemoryScoreRepo()
	svc := NewGameService(game.NewEngine(func(int) int { return 0 }), sessions, scores)
	ctx := context.Background()

	id := oneSwipeFromGameOver(t, svc, sessions)
	_, err := svc.Choose(ctx, id, models.DirectionLeft)
	require.NoError(t, err)

	restarted, err := svc.Start(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, restarted.Run)

	loaded, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	loaded.Metrics = models.Metrics{Accuracy: 1, Compute: 1, Stability: 1}
	require.NoError(t, sessions.Save(ctx, loaded))
	_, err = svc.Choose(ctx, id, models.DirectionLeft)
	require.NoError(t, err)

	top, err := scores.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}
