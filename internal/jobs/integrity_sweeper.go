package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/themepick/api/internal/service"
)

// ReferenceChecker scans for dangling theme→extension references
type ReferenceChecker interface {
	FindDanglingReferences(ctx context.Context) ([]service.DanglingReference, error)
}

// IntegritySweeper periodically scans the theme catalog for dangling
// extension references and reports them. The reference is not enforced at
// write time, so broken cross-references accumulate silently; the sweep makes
// them visible in the logs without mutating anything.
type IntegritySweeper struct {
	integrity ReferenceChecker
	interval  time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   bool
	mu        sync.Mutex
}

// NewIntegritySweeper creates a new integrity sweeper job
func NewIntegritySweeper(integrity ReferenceChecker, interval time.Duration) *IntegritySweeper {
	if interval == 0 {
		interval = 1 * time.Hour
	}
	return &IntegritySweeper{
		integrity: integrity,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the integrity sweeper job
func (s *IntegritySweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("integrity sweeper started", slog.Duration("interval", s.interval))
}

// Stop gracefully stops the integrity sweeper job
func (s *IntegritySweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("integrity sweeper stopped")
}

// run is the main loop
func (s *IntegritySweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs one full catalog scan
func (s *IntegritySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dangling, err := s.integrity.FindDanglingReferences(ctx)
	if err != nil {
		slog.Error("integrity sweep failed", slog.Any("error", err))
		return
	}

	if len(dangling) == 0 {
		slog.Info("integrity sweep clean")
		return
	}

	slog.Warn("integrity sweep found dangling references", slog.Int("count", len(dangling)))
	for _, ref := range dangling {
		slog.Warn("dangling extension reference",
			slog.String("theme_id", ref.ThemeID),
			slog.String("extension_id", ref.ExtensionID),
		)
	}
}

// RunOnce runs the sweep once (for testing or manual trigger)
func (s *IntegritySweeper) RunOnce(ctx context.Context) ([]service.DanglingReference, error) {
	return s.integrity.FindDanglingReferences(ctx)
}

// IsRunning returns whether the sweeper is running
func (s *IntegritySweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
