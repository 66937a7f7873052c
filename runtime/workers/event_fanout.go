package workers

import (
	"chat-view/contract"
	"chat-view/domain/event"
	"context"
	"log/slog"
	"time"
)

const defaultSinkTimeout = 2 * time.Second

// EventFanout delivers coordinator events to every sink of the registry, one event
// at a time and in publication order. A slow or failing sink is logged and skipped.
type EventFanout struct {
	log         *slog.Logger
	events      <-chan event.DomainEvent
	registry    contract.IRegistry
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, events <-chan event.DomainEvent, registry contract.IRegistry, sinkTimeout time.Duration) *EventFanout {
	if sinkTimeout <= 0 {
		sinkTimeout = defaultSinkTimeout
	}
	return &EventFanout{log: log, events: events, registry: registry, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Name() string { return "event_fanout" }

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout hands evt to each sink with its own deadline.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.registry.Sinks() {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "event", evt.Name(), "error", err)
		}
		cancel()
	}
}
