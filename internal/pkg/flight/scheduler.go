package flight

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrSchedulerRunning = errors.New("refresh scheduler already running")
	ErrInvalidInterval  = errors.New("refresh interval must be positive")
)

type Refresher interface {
	Refresh(ctx context.Context, count int) RefreshResult
}

// Scheduler drives periodic catalog refreshes. A process owns a single
// Scheduler and a single active loop at a time.
type Scheduler struct {
	refresher Refresher

	mu      sync.Mutex
	running bool
	run     uint64
	wg      sync.WaitGroup
}

func NewScheduler(refresher Refresher) *Scheduler {
	return &Scheduler{
		refresher: refresher,
	}
}

// Start fires Refresh(count) every interval, the first time one interval from now.
// Each firing runs in its own goroutine, so a slow refresh does not delay the next
// tick and overlapping refreshes are possible. The returned stop prevents future
// firings only; it is safe to call more than once and a new Start may follow it
// immediately. Cancelling ctx also stops the loop.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration, count int) (func(), error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, ErrSchedulerRunning
	}
	s.running = true
	s.run++
	run := s.run

	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			s.markStopped(run)
		})
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.markStopped(run)

		s.loop(ctx, done, interval, count)
	}()

	slog.InfoContext(ctx, "auto refresh started",
		slog.Duration("interval", interval), slog.Int("count", count))

	return stop, nil
}

// Wait blocks until the loop and every firing it started have returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, done <-chan struct{}, interval time.Duration, count int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// in-flight refreshes outlive stop and cancellation
	refreshCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-done:
			slog.InfoContext(ctx, "auto refresh stopped")
			return
		case <-ctx.Done():
			slog.InfoContext(ctx, "auto refresh stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			// stop may race with the tick
			select {
			case <-done:
				continue
			default:
			}

			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.fire(refreshCtx, count)
			}()
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, count int) {
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(ctx, "auto refresh panicked", slog.Any("message", rvr))
		}
	}()

	res := s.refresher.Refresh(ctx, count)
	slog.InfoContext(ctx, "auto refresh performed",
		slog.Int("added", res.AddedCount), slog.Int("total", len(res.Flights)))
}

// markStopped releases the scheduler unless a later Start already took it.
func (s *Scheduler) markStopped(run uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == run {
		s.running = false
	}
}
