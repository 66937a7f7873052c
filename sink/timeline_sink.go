package sink

import (
	"chat-view/domain"
	"chat-view/domain/event"
	"context"
	"slices"
	"sync"
)

// Timeline mirrors the chat view in memory from the events it receives.
type Timeline struct {
	mu       sync.Mutex
	Owner    string
	messages []domain.ChatMessage
	hasMore  bool
	presence domain.PresenceView
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.HistoryLoaded:
		t.messages = slices.Clone(evt.Messages)
		t.hasMore = evt.HasMore
	case event.MessagesAppended:
		t.messages = append(t.messages, evt.Messages...)
	case event.HistoryPrepended:
		t.messages = append(slices.Clone(evt.Messages), t.messages...)
		t.hasMore = evt.HasMore
	case event.PresenceChanged:
		t.presence = evt.View
	}
	return nil
}

// Messages returns what the viewer has been shown so far, in delivery order.
func (t *Timeline) Messages() []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.messages)
}

func (t *Timeline) HasMore() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasMore
}

func (t *Timeline) Presence() domain.PresenceView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.presence
}
