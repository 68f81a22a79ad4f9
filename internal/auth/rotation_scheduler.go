package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gymtracker-app/backend/internal/metrics"
)

// RotationSchedulerConfig holds configuration for the key rotation sweep
type RotationSchedulerConfig struct {
	// Interval is how often the sweep looks for expired keys (default: 24 hours)
	Interval time.Duration
	// SweepTimeout bounds a single sweep run (default: 1 minute)
	SweepTimeout time.Duration
}

// RotationScheduler periodically rotates expired auth keys. It is owned by
// the process lifecycle: started once at boot, stopped during shutdown, and
// never required for request handling; the sweep only widens a user's
// valid-key window. Tests drive RunOnce directly instead of starting it.
type RotationScheduler struct {
	authService *AuthService
	config      RotationSchedulerConfig
	logger      *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	running bool
	lastRun time.Time
}

// NewRotationScheduler creates a new RotationScheduler instance
func NewRotationScheduler(authService *AuthService, config RotationSchedulerConfig, logger *slog.Logger) *RotationScheduler {
	if config.Interval == 0 {
		config.Interval = 24 * time.Hour
	}
	if config.SweepTimeout == 0 {
		config.SweepTimeout = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RotationScheduler{
		authService: authService,
		config:      config,
		logger:      logger,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start launches the sweep loop in a background goroutine.
// Calling Start on a running scheduler is a no-op.
func (s *RotationScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.run()
}

// Stop signals the loop to exit and waits for the in-flight sweep to finish
func (s *RotationScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh
}

// LastRun returns when the sweep last completed
func (s *RotationScheduler) LastRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

func (s *RotationScheduler) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.RunOnce(context.Background(), time.Now())
		}
	}
}

// RunOnce performs one rotation sweep at the given wall-clock time and
// returns the number of keys rotated.
func (s *RotationScheduler) RunOnce(ctx context.Context, now time.Time) int {
	ctx, cancel := context.WithTimeout(ctx, s.config.SweepTimeout)
	defer cancel()

	start := time.Now()
	rotated, err := s.authService.RotateExpiredKeys(ctx, now)
	metrics.KeyRotationSweepDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("auth key rotation sweep failed", "error", err, "rotated", rotated)
	}
	metrics.KeyRotationsTotal.Add(float64(rotated))

	s.mu.Lock()
	s.lastRun = time.Now()
	s.mu.Unlock()

	return rotated
}
