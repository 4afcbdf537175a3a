// Package scheduler runs the daily reminder sweep at a fixed local hour.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Sweeper is the unit of work the scheduler fires once per day.
type Sweeper interface {
	Run(ctx context.Context, now time.Time) error
}

// Scheduler fires a Sweeper at a configured local hour, once per day.
type Scheduler struct {
	sweeper Sweeper
	hour    int
	logger  *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Scheduler that fires at the given local hour (0-23).
func New(sweeper Sweeper, hour int, logger *slog.Logger) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 9
	}
	return &Scheduler{
		sweeper: sweeper,
		hour:    hour,
		logger:  logger,
	}
}

// Start begins the scheduler loop. It returns an error if already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("scheduler already running")
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.loop(ctx)
	return nil
}

// Stop terminates the loop and waits for it to exit.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)

	for {
		now := time.Now()
		next := s.nextFire(now)
		timer := time.NewTimer(next.Sub(now))

		s.logger.Info("reminder sweep scheduled",
			slog.Time("next_run", next))

		select {
		case <-timer.C:
			fireTime := time.Now()
			if err := s.sweeper.Run(ctx, fireTime); err != nil {
				s.logger.Error("reminder sweep failed", slog.String("error", err.Error()))
			}
		case <-s.stopCh:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// nextFire returns the next occurrence of the configured hour strictly after now.
func (s *Scheduler) nextFire(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
