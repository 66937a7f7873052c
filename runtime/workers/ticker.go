package workers

import (
	"chat-view/contract"
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickerWorker calls fn every interval until its context is cancelled.
// The first call happens after one full interval.
type TickerWorker struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
}

func NewTickerWorker(name string, interval time.Duration, fn func(ctx context.Context)) *TickerWorker {
	return &TickerWorker{name: name, interval: interval, fn: fn}
}

func (w *TickerWorker) Name() string {
	return w.name
}

func (w *TickerWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.fn(ctx)
		}
	}
}

// TickerScheduler runs scheduled callbacks as supervised ticker workers.
// CancelAll stops them and waits; the scheduler can be reused afterwards.
type TickerScheduler struct {
	mu         sync.Mutex
	log        *slog.Logger
	parent     context.Context
	supervisor *Supervisor
	ctx        context.Context
	cancel     context.CancelFunc
}

var _ contract.Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(ctx context.Context, log *slog.Logger) *TickerScheduler {
	return &TickerScheduler{
		log:        log,
		parent:     ctx,
		supervisor: NewSupervisor(log),
	}
}

// Schedule starts fn on its own ticker. A non-positive interval is ignored.
func (s *TickerScheduler) Schedule(name string, interval time.Duration, fn func(ctx context.Context)) {
	if interval <= 0 || fn == nil {
		s.log.Warn("Ignoring schedule", "name", name, "interval", interval)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		s.ctx, s.cancel = context.WithCancel(s.parent)
	}
	s.log.Debug("Scheduling ticker", "name", name, "interval", interval)
	s.supervisor.Start(s.ctx, NewTickerWorker(name, interval, fn))
}

// CancelAll stops every scheduled ticker and blocks until their callbacks returned.
func (s *TickerScheduler) CancelAll() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.supervisor.Wait()
}
