package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/models"
)

var ErrSessionNotFound = errors.New("game session not found")

const (
	sessionKeyPrefix = "game:session:"
	scoredKeyPrefix  = "game:scored:"
)

type SessionRepo struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionRepo(client *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{redis: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (r *SessionRepo) Save(ctx context.Context, s *models.GameSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.redis.Set(ctx, sessionKey(s.ID), data, r.ttl).Err()
}

func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	data, err := r.redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var s models.GameSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

// ClaimScore reports true exactly once per session run, across every server
// sharing this Redis.
func (r *SessionRepo) ClaimScore(ctx context.Context, id uuid.UUID, run int) (bool, error) {
	key := fmt.Sprintf("%s%s:%d", scoredKeyPrefix, id, run)
	return r.redis.SetNX(ctx, key, 1, r.ttl).Result()
}

// MemorySessionRepo keeps sessions in process memory when Redis is not configured.
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memorySession
	scored   map[scoreClaim]time.Time
	ttl      time.Duration
}

type scoreClaim struct {
	id  uuid.UUID
	run int
}

type memorySession struct {
	session   models.GameSession
	expiresAt time.Time
}

func NewMemorySessionRepo(ttl time.Duration) *MemorySessionRepo {
	return &MemorySessionRepo{
		sessions: make(map[uuid.UUID]memorySession),
		scored:   make(map[scoreClaim]time.Time),
		ttl:      ttl,
	}
}

func (r *MemorySessionRepo) Save(ctx context.Context, s *models.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *s
	if s.Scenario != nil {
		sc := *s.Scenario
		stored.Scenario = &sc
	}
	r.sessions[s.ID] = memorySession{session: stored, expiresAt: time.Now().Add(r.ttl)}

	// Expired entries are swept on write.
	now := time.Now()
	for id, m := range r.sessions {
		if now.After(m.expiresAt) {
			delete(r.sessions, id)
		}
	}
	for claim, expiresAt := range r.scored {
		if now.After(expiresAt) {
			delete(r.scored, claim)
		}
	}
	return nil
}

func (r *MemorySessionRepo) ClaimScore(ctx context.Context, id uuid.UUID, run int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	claim := scoreClaim{id: id, run: run}
	if expiresAt, ok := r.scored[claim]; ok && time.Now().Before(expiresAt) {
		return false, nil
	}
	r.scored[claim] = time.Now().Add(r.ttl)
	return true, nil
}

func (r *MemorySessionRepo) Get(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.sessions[id]
	if !ok || time.Now().After(m.expiresAt) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	s := m.session
	if s.Scenario != nil {
		sc := *s.Scenario
		s.Scenario = &sc
	}
	return &s, nil
}
