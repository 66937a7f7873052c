//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-view/domain"
	"chat-view/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ Name() string }); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Scheduler runs callbacks at a fixed interval until cancelled.
type Scheduler interface {
	Schedule(name string, interval time.Duration, fn func(ctx context.Context))
	CancelAll()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	Sinks() []EventSink
	Subscribe(viewerID string, sink EventSink)
	Unsubscribe(viewerID string)
}

// MessagesQuery pages backwards through history. A nil BeforeID asks for the latest page.
type MessagesQuery struct {
	Limit    int
	BeforeID *domain.MessageID
	Offset   *int
}

// NewMessages is the answer to an incremental poll. Presence is nil when the source
// did not piggyback a snapshot.
type NewMessages struct {
	Messages []domain.ChatMessage
	Presence *domain.PresenceSnapshot
}

// ChatAPI is the polling protocol of the chat source. Message lists come back
// newest-first; callers must not rely on any order.
type ChatAPI interface {
	GetMessages(ctx context.Context, query MessagesQuery) ([]domain.ChatMessage, error)
	GetNewMessages(ctx context.Context, afterID domain.MessageID, requesterID string) (NewMessages, error)
	GetPresence(ctx context.Context) (domain.PresenceSnapshot, error)
	SendMessage(ctx context.Context, content, senderID string) error
}

// OfflineStore persists the recently-offline set between runs.
type OfflineStore interface {
	Load(ctx context.Context) ([]domain.OfflineMemberRecord, error)
	Save(ctx context.Context, records []domain.OfflineMemberRecord) error
}

type IMessageTimeline interface {
	LoadInitial(page []domain.ChatMessage) []domain.ChatMessage
	AppendNewer(batch []domain.ChatMessage) []domain.ChatMessage
	PrependOlder(page []domain.ChatMessage) []domain.ChatMessage
	Reset()
	MaxID() (domain.MessageID, bool)
	MinID() (domain.MessageID, bool)
	HasMore() bool
}

type IPresenceReconciler interface {
	Reconcile(ctx context.Context, snapshot *domain.PresenceSnapshot, messagesSinceLast []domain.ChatMessage) domain.PresenceView
}
