package runtime

import (
	"chat-view/contract"
	"chat-view/domain"
	"chat-view/domain/event"
	"chat-view/errors"
	"chat-view/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const eventBufferSize = 64

type CoordinatorConfig struct {
	SenderID        string
	PageSize        int
	MessageInterval time.Duration
	StatusInterval  time.Duration
	RequestTimeout  time.Duration
	SinkTimeout     time.Duration
}

func (c CoordinatorConfig) withDefaults() CoordinatorConfig {
	if c.SenderID == "" {
		c.SenderID = "web"
	}
	if c.PageSize <= 0 {
		c.PageSize = 50
	}
	if c.MessageInterval <= 0 {
		c.MessageInterval = 2 * time.Second
	}
	if c.StatusInterval <= 0 {
		c.StatusInterval = 5 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	return c
}

// Coordinator drives the two polling loops of one chat view and applies their results
// to the timeline and the presence reconciler. Each loop has an in-flight guard: a tick
// finding its loop busy is dropped. Results are applied under mu, after checking that
// the coordinator was neither stopped nor reset since the request started.
type Coordinator struct {
	mu        sync.Mutex
	log       *slog.Logger
	api       contract.ChatAPI
	timeline  contract.IMessageTimeline
	presence  contract.IPresenceReconciler
	registry  contract.IRegistry
	scheduler contract.Scheduler
	cfg       CoordinatorConfig

	ctx        context.Context
	cancel     context.CancelFunc
	events     chan event.DomainEvent
	outbox     []event.DomainEvent // applied but not yet handed to the fanout
	notify     chan struct{}
	started    bool
	stopped    bool
	loaded     bool
	generation uint64
	pending    []domain.ChatMessage // admitted since the last reconciliation

	messagesInFlight atomic.Bool
	statusInFlight   atomic.Bool
	olderInFlight    atomic.Bool

	requests sync.WaitGroup
	workers  sync.WaitGroup
}

func NewCoordinator(
	log *slog.Logger,
	api contract.ChatAPI,
	timeline contract.IMessageTimeline,
	presence contract.IPresenceReconciler,
	registry contract.IRegistry,
	scheduler contract.Scheduler,
	cfg CoordinatorConfig,
) *Coordinator {
	return &Coordinator{
		log:       log,
		api:       api,
		timeline:  timeline,
		presence:  presence,
		registry:  registry,
		scheduler: scheduler,
		cfg:       cfg.withDefaults(),
		events:    make(chan event.DomainEvent, eventBufferSize),
		notify:    make(chan struct{}, 1),
	}
}

// Start schedules both loops and fires a first tick of each right away.
// Calling Start on a running coordinator does nothing.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return errors.ErrCoordinatorStopped
	}
	if c.started {
		c.mu.Unlock()
		return nil
	}
	c.started = true
	c.ctx, c.cancel = context.WithCancel(ctx)
	fanout := workers.NewEventFanout(c.log, c.events, c.registry, c.cfg.SinkTimeout)
	c.workers.Add(2)
	go func() {
		defer c.workers.Done()
		workers.NewSupervisor(c.log).Add(fanout).Run(c.ctx)
	}()
	go func() {
		defer c.workers.Done()
		c.pump(c.ctx)
	}()
	c.mu.Unlock()

	c.scheduler.Schedule("status_poll", c.cfg.StatusInterval, c.onStatusTick)
	c.scheduler.Schedule("message_poll", c.cfg.MessageInterval, c.onMessageTick)
	c.log.Info("Chat view started",
		"message_interval", c.cfg.MessageInterval,
		"status_interval", c.cfg.StatusInterval)

	c.onMessageTick(c.ctx)
	c.onStatusTick(c.ctx)
	return nil
}

// Stop cancels the timers and every request in flight, then waits for them.
// Nothing is applied to the timeline or the reconciler after Stop returns.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.scheduler.CancelAll()
	c.requests.Wait()
	c.workers.Wait()
	c.log.Info("Chat view stopped")
}

// LoadOlder fetches the page preceding the oldest stored message and merges it.
// It returns false without a request when the initial page is missing, when there
// is no older history or when a previous call is still running.
func (c *Coordinator) LoadOlder(ctx context.Context) (bool, error) {
	c.mu.Lock()
	ready := c.loaded && c.timeline.HasMore()
	c.mu.Unlock()
	if !ready {
		return false, nil
	}

	reqCtx, gen, release, ok := c.acquire(ctx, &c.olderInFlight, "older_history")
	if !ok {
		return false, nil
	}
	defer release()

	minID, ok := c.timeline.MinID()
	if !ok {
		return false, nil
	}
	page, err := c.api.GetMessages(reqCtx, contract.MessagesQuery{Limit: c.cfg.PageSize, BeforeID: &minID})
	if err != nil {
		c.logFailure(reqCtx, "Older history load failed", "before_id", minID, "error", err)
		return true, fmt.Errorf("load history before %d: %w", minID, err)
	}
	c.apply(gen, func() []event.DomainEvent {
		admitted := c.timeline.PrependOlder(page)
		c.log.Debug("Older history merged", "received", len(page), "admitted", len(admitted))
		return []event.DomainEvent{event.HistoryPrepended{Messages: admitted, HasMore: c.timeline.HasMore()}}
	})
	return true, nil
}

// Send posts content as the configured sender and polls for new messages right away.
func (c *Coordinator) Send(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: empty content", errors.ErrInvalidMessage)
	}
	if c.isStopped() {
		return errors.ErrCoordinatorStopped
	}
	if err := c.api.SendMessage(ctx, content, c.cfg.SenderID); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	c.onMessageTick(ctx)
	return nil
}

// Reset clears the timeline, as after a "clear history" on the source. Responses to
// requests started before the reset are discarded and the initial page is reloaded on
// the next message tick.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.generation++
	c.loaded = false
	c.pending = nil
	c.timeline.Reset()
	c.log.Info("Chat history reset")
	c.enqueue([]event.DomainEvent{event.HistoryLoaded{}})
	c.mu.Unlock()
}

// Loaded reports whether the initial page was applied.
func (c *Coordinator) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Coordinator) onMessageTick(_ context.Context) {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()

	if !loaded {
		c.launch(&c.messagesInFlight, "initial_history", c.loadInitial)
		return
	}
	c.launch(&c.messagesInFlight, "new_messages", c.pollNewMessages)
}

func (c *Coordinator) onStatusTick(_ context.Context) {
	c.launch(&c.statusInFlight, "presence", c.pollPresence)
}

func (c *Coordinator) loadInitial(ctx context.Context, gen uint64) {
	page, err := c.api.GetMessages(ctx, contract.MessagesQuery{Limit: c.cfg.PageSize})
	if err != nil {
		c.logFailure(ctx, "Initial history load failed, retrying on next tick", "error", err)
		return
	}
	c.apply(gen, func() []event.DomainEvent {
		stored := c.timeline.LoadInitial(page)
		c.loaded = true
		c.pending = append(c.pending, stored...)
		c.log.Info("Initial history loaded", "messages", len(stored), "has_more", c.timeline.HasMore())
		return []event.DomainEvent{event.HistoryLoaded{Messages: stored, HasMore: c.timeline.HasMore()}}
	})
}

func (c *Coordinator) pollNewMessages(ctx context.Context, gen uint64) {
	afterID, _ := c.timeline.MaxID()
	res, err := c.api.GetNewMessages(ctx, afterID, c.cfg.SenderID)
	if err != nil {
		c.logFailure(ctx, "New messages poll failed", "after_id", afterID, "error", err)
		return
	}
	c.apply(gen, func() []event.DomainEvent {
		var events []event.DomainEvent
		admitted := c.timeline.AppendNewer(res.Messages)
		if len(admitted) > 0 {
			c.pending = append(c.pending, admitted...)
			events = append(events, event.MessagesAppended{Messages: admitted})
		}
		if res.Presence != nil {
			events = append(events, c.reconcile(ctx, res.Presence))
		}
		return events
	})
}

// pollPresence reconciles even when the request failed, so that offline records
// keep expiring while the source is unreachable.
func (c *Coordinator) pollPresence(ctx context.Context, gen uint64) {
	var snapshot *domain.PresenceSnapshot
	online, err := c.api.GetPresence(ctx)
	if err != nil {
		c.logFailure(ctx, "Presence poll failed", "error", err)
	} else {
		snapshot = &online
	}
	c.apply(gen, func() []event.DomainEvent {
		return []event.DomainEvent{c.reconcile(ctx, snapshot)}
	})
}

// reconcile must be called with mu held.
func (c *Coordinator) reconcile(ctx context.Context, snapshot *domain.PresenceSnapshot) event.DomainEvent {
	view := c.presence.Reconcile(ctx, snapshot, c.pending)
	c.pending = nil
	return event.PresenceChanged{View: view}
}

// launch runs fn in its own goroutine unless guard is already held.
func (c *Coordinator) launch(guard *atomic.Bool, name string, fn func(ctx context.Context, gen uint64)) {
	ctx, gen, release, ok := c.acquire(nil, guard, name)
	if !ok {
		return
	}
	go func() {
		defer release()
		fn(ctx, gen)
	}()
}

// acquire takes guard and registers a request. The returned context ends on Stop,
// on the request timeout or, when parent is not nil, with parent.
func (c *Coordinator) acquire(parent context.Context, guard *atomic.Bool, name string) (context.Context, uint64, func(), bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.ctx == nil {
		return nil, 0, nil, false
	}
	if !guard.CompareAndSwap(false, true) {
		c.log.Debug("Tick skipped, previous request still in flight", "request", name)
		return nil, 0, nil, false
	}
	c.requests.Add(1)

	ctx, cancel := context.WithTimeout(c.ctx, c.cfg.RequestTimeout)
	stop := func() bool { return false }
	if parent != nil {
		stop = context.AfterFunc(parent, cancel)
	}
	release := func() {
		stop()
		cancel()
		guard.Store(false)
		c.requests.Done()
	}
	return ctx, c.generation, release, true
}

// apply runs fn under mu unless the coordinator was stopped or reset after the
// request started, then publishes what fn returned.
func (c *Coordinator) apply(gen uint64, fn func() []event.DomainEvent) {
	c.mu.Lock()
	if c.stopped || gen != c.generation {
		c.log.Debug("Discarding stale poll result", "stopped", c.stopped)
		c.mu.Unlock()
		return
	}
	c.enqueue(fn())
	c.mu.Unlock()
}

// enqueue must be called with mu held. It never blocks: a sink that falls behind
// delays delivery, not the application of poll results.
func (c *Coordinator) enqueue(events []event.DomainEvent) {
	if c.ctx == nil || len(events) == 0 {
		return
	}
	c.outbox = append(c.outbox, events...)
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// pump moves queued events to the fanout in the order they were applied.
func (c *Coordinator) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.notify:
		}
		c.mu.Lock()
		batch := c.outbox
		c.outbox = nil
		c.mu.Unlock()

		for _, e := range batch {
			select {
			case c.events <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

// logFailure keeps cancellations caused by Stop out of the warnings.
func (c *Coordinator) logFailure(ctx context.Context, msg string, args ...any) {
	if c.isStopped() && ctx.Err() != nil {
		c.log.Debug(msg, args...)
		return
	}
	c.log.Warn(msg, args...)
}

func (c *Coordinator) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}
