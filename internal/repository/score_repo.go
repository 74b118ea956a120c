package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/models"
)

type ScoreRepo struct {
	pool *pgxpool.Pool
}

func NewScoreRepo(pool *pgxpool.Pool) *ScoreRepo {
	return &ScoreRepo{pool: pool}
}

func (r *ScoreRepo) Create(ctx context.Context, score *models.GameScore) error {
	query := `
		INSERT INTO game_scores (session_id, score)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query, score.SessionID, score.Score).Scan(&score.ID, &score.CreatedAt)
}

func (r *ScoreRepo) Top(ctx context.Context, limit int) ([]*models.GameScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, session_id, score, created_at
		FROM game_scores
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []*models.GameScore
	for rows.Next() {
		s := &models.GameScore{}
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Score, &s.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// MemoryScoreRepo keeps scores in process memory when no database is configured.
type MemoryScoreRepo struct {
	mu     sync.RWMutex
	scores []models.GameScore
}

func NewMemoryScoreRepo() *MemoryScoreRepo {
	return &MemoryScoreRepo{}
}

func (r *MemoryScoreRepo) Create(ctx context.Context, score *models.GameScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	score.ID = uuid.New()
	score.CreatedAt = time.Now()
	r.scores = append(r.scores, *score)
	return nil
}

func (r *MemoryScoreRepo) Top(ctx context.Context, limit int) ([]*models.GameScore, error) {
	r.mu.RLock()
	sorted := make([]models.GameScore, len(r.scores))
	copy(sorted, r.scores)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]*models.GameScore, len(sorted))
	for i := range sorted {
		out[i] = &sorted[i]
	}
	return out, nil
}
