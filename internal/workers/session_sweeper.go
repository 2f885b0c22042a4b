package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const defaultSweepInterval = time.Minute

type sessionSweeper struct {
	keys     ExpiredKeyEvictor
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionSweeper creates a worker that evicts expired session data keys
// every interval. A non-positive interval defaults to one minute.
func NewSessionSweeper(keys ExpiredKeyEvictor, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &sessionSweeper{
		keys:     keys,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionSweeper) Run(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()
}

func (s *sessionSweeper) sweep() {
	if evicted := s.keys.EvictExpired(s.now()); evicted > 0 {
		s.logger.Debug().Str("func", "sessionSweeper.sweep").Int("evicted", evicted).Msg("expired session keys evicted")
	}
}

func (s *sessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
