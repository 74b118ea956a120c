package worker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"portfolio-backend/internal/models"
)

// ErrQueueFull is returned by Record when the backlog is at capacity.
var ErrQueueFull = errors.New("score queue is full")

// ErrStopped is returned by Record after Stop.
var ErrStopped = errors.New("score pool is stopped")

const (
	maxAttempts  = 3
	writeTimeout = 5 * time.Second
)

type scoreStore interface {
	Create(ctx context.Context, score *models.GameScore) error
}

// Pool writes finished game scores to the leaderboard in the background so a
// slow database never holds up the swipe that ended the run.
type Pool struct {
	store       scoreStore
	queue       chan *models.GameScore
	workerCount int
	backoff     time.Duration

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewPool(store scoreStore, workerCount, queueSize int) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &Pool{
		store:       store,
		queue:       make(chan *models.GameScore, queueSize),
		workerCount: workerCount,
		backoff:     500 * time.Millisecond,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	log.Printf("Started %d score worker goroutines", p.workerCount)
}

// Stop refuses new scores and waits until the backlog is written.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

// Record queues score without blocking.
func (p *Pool) Record(ctx context.Context, score *models.GameScore) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrStopped
	}
	select {
	case p.queue <- score:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for score := range p.queue {
		p.process(id, score)
	}
	log.Printf("Score worker %d shutting down", id)
}

func (p *Pool) process(id int, score *models.GameScore) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := p.store.Create(ctx, score)
		cancel()
		if err == nil {
			return
		}

		log.Printf("Score worker %d: attempt %d/%d for session %s failed: %v", id, attempt, maxAttempts, score.SessionID, err)
		if attempt < maxAttempts {
			time.Sleep(p.backoff * time.Duration(attempt))
		}
	}
	log.Printf("Score worker %d: dropping score for session %s", id, score.SessionID)
}
