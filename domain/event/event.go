// Package event defines what the chat view publishes to its sinks after a poll result
// has been applied.
package event

import (
	"chat-view/domain"
)

type DomainEvent interface {
	Name() string
}

// HistoryLoaded is published once the initial page replaced the store contents.
type HistoryLoaded struct {
	Messages []domain.ChatMessage
	HasMore  bool
}

// MessagesAppended carries only the messages admitted by the store, in ascending order.
type MessagesAppended struct {
	Messages []domain.ChatMessage
}

// HistoryPrepended carries the older page actually merged.
type HistoryPrepended struct {
	Messages []domain.ChatMessage
	HasMore  bool
}

type PresenceChanged struct {
	View domain.PresenceView
}

func (HistoryLoaded) Name() string    { return "history_loaded" }
func (MessagesAppended) Name() string { return "messages_appended" }
func (HistoryPrepended) Name() string { return "history_prepended" }
func (PresenceChanged) Name() string  { return "presence_changed" }
