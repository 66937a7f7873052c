package runtime

import (
	"chat-view/contract"
	"chat-view/domain"
	"chat-view/domain/event"
	chaterrors "chat-view/errors"
	"chat-view/mocks"
	"chat-view/projection"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualScheduler records schedules and fires them on demand.
type manualScheduler struct {
	mu        sync.Mutex
	fns       map[string]func(ctx context.Context)
	cancelled int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{fns: make(map[string]func(ctx context.Context))}
}

func (s *manualScheduler) Schedule(name string, _ time.Duration, fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns[name] = fn
}

func (s *manualScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = make(map[string]func(ctx context.Context))
	s.cancelled++
}

func (s *manualScheduler) fire(name string) {
	s.mu.Lock()
	fn := s.fns[name]
	s.mu.Unlock()
	if fn != nil {
		fn(context.Background())
	}
}

// recordingSink keeps every event it receives.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.events, func(e event.DomainEvent, _ int) string { return e.Name() })
}

type fixture struct {
	api       *mocks.MockChatAPI
	timeline  *projection.Timeline
	presence  *projection.Presence
	scheduler *manualScheduler
	sink      *recordingSink
	c         *Coordinator
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		api:       mocks.NewMockChatAPI(ctrl),
		timeline:  projection.NewTimeline(0),
		presence:  projection.NewPresence(slog.Default(), nil, domain.OfflineRetention, nil),
		scheduler: newManualScheduler(),
		sink:      &recordingSink{},
	}
	registry := NewRegistry()
	registry.Subscribe("viewer", f.sink)
	f.c = NewCoordinator(slog.Default(), f.api, f.timeline, f.presence, registry, f.scheduler, CoordinatorConfig{
		SenderID: "web",
		PageSize: 50,
	})
	t.Cleanup(f.c.Stop)
	return f
}

// settle waits for every request launched so far.
func (f *fixture) settle() {
	f.c.requests.Wait()
}

func msg(id domain.MessageID, sender string) domain.ChatMessage {
	return domain.ChatMessage{ID: id, SenderID: sender, At: time.Now(), Content: domain.PlainText("hi"), Origin: domain.OriginGame}
}

func ids(messages []domain.ChatMessage) []domain.MessageID {
	return lo.Map(messages, func(m domain.ChatMessage, _ int) domain.MessageID { return m.ID })
}

func emptyPresence() domain.PresenceSnapshot {
	return domain.NewPresenceSnapshot(nil, nil, nil)
}

func TestCoordinator_Initial_Page_Then_Overlapping_Poll(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given the source returns [10, 9] newest-first, then an overlapping [9, 11]
	f.api.EXPECT().GetMessages(gomock.Any(), contract.MessagesQuery{Limit: 50}).
		Return([]domain.ChatMessage{msg(10, "Alice"), msg(9, "Bob")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(10), "web").
		Return(contract.NewMessages{Messages: []domain.ChatMessage{msg(9, "Bob"), msg(11, "Carol")}}, nil)

	// When the coordinator starts and the message loop ticks once
	req.NoError(f.c.Start(context.Background()))
	f.settle()
	req.True(f.c.Loaded())
	f.scheduler.fire("message_poll")
	f.settle()

	// Then the timeline holds each message once, ascending
	req.Equal([]domain.MessageID{9, 10, 11}, ids(f.timeline.Messages()))
	req.Eventually(func() bool {
		return lo.Contains(f.sink.names(), "messages_appended")
	}, time.Second, 10*time.Millisecond)
	req.Contains(f.sink.names(), "history_loaded")
}

func TestCoordinator_Busy_Tick_Is_Dropped(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	release := make(chan struct{})

	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(1, "Alice")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	// Given a slow incremental poll
	f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(1), "web").
		DoAndReturn(func(ctx context.Context, _ domain.MessageID, _ string) (contract.NewMessages, error) {
			<-release
			return contract.NewMessages{}, nil
		}).Times(1)

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	// When the loop ticks three times while the first request is in flight
	f.scheduler.fire("message_poll")
	req.Eventually(f.c.messagesInFlight.Load, time.Second, 5*time.Millisecond)
	f.scheduler.fire("message_poll")
	f.scheduler.fire("message_poll")
	close(release)
	f.settle()

	// Then only one request was issued and the guard is cleared
	req.False(f.c.messagesInFlight.Load())
}

func TestCoordinator_Failed_Initial_Load_Is_Retried(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	gomock.InOrder(
		f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")),
		f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(5, "Alice")}, nil),
	)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)

	// Given the first load fails
	req.NoError(f.c.Start(context.Background()))
	f.settle()
	req.False(f.c.Loaded())

	// When the message loop ticks
	f.scheduler.fire("message_poll")
	f.settle()

	// Then the initial page is loaded instead of polling for new messages
	req.True(f.c.Loaded())
	req.Equal([]domain.MessageID{5}, ids(f.timeline.Messages()))
}

func TestCoordinator_Poll_Failure_Keeps_Store_And_Clears_Guard(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(3, "Alice")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	gomock.InOrder(
		f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(3), "web").Return(contract.NewMessages{}, context.DeadlineExceeded),
		f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(3), "web").
			Return(contract.NewMessages{Messages: []domain.ChatMessage{msg(4, "Bob")}}, nil),
	)

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	f.scheduler.fire("message_poll")
	f.settle()
	req.Equal([]domain.MessageID{3}, ids(f.timeline.Messages()))

	f.scheduler.fire("message_poll")
	f.settle()
	req.Equal([]domain.MessageID{3, 4}, ids(f.timeline.Messages()))
}

func TestCoordinator_Piggybacked_Presence_Is_Reconciled(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	online := domain.NewPresenceSnapshot([]string{"Bob"}, nil, nil)
	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	// Given a poll answering a new message and a presence snapshot
	f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(0), "web").
		Return(contract.NewMessages{Messages: []domain.ChatMessage{msg(1, "Alice")}, Presence: &online}, nil)

	req.NoError(f.c.Start(context.Background()))
	f.settle()
	f.scheduler.fire("message_poll")
	f.settle()

	// Then Bob is online and Alice, who wrote without being online, is recently offline
	view := f.presence.View()
	req.Equal([]string{"Bob"}, view.Online.Game)
	req.Len(view.Offline, 1)
	req.Equal("Alice", view.Offline[0].Name)
}

func TestCoordinator_Status_Loop_Uses_Pending_Messages(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(1, "Alice")}, nil)
	gomock.InOrder(
		f.api.EXPECT().GetPresence(gomock.Any()).Return(domain.NewPresenceSnapshot([]string{"Alice"}, nil, nil), nil),
		f.api.EXPECT().GetPresence(gomock.Any()).Return(domain.PresenceSnapshot{}, errors.New("503")),
		f.api.EXPECT().GetPresence(gomock.Any()).Return(domain.NewPresenceSnapshot(nil, []string{"Carol"}, nil), nil),
	)

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	// A failed status poll keeps the previous online set
	f.scheduler.fire("status_poll")
	f.settle()
	req.Equal([]string{"Alice"}, f.presence.View().Online.Game)

	// When Alice is gone from the next snapshot
	f.scheduler.fire("status_poll")
	f.settle()

	// Then she is recently offline and never both
	view := f.presence.View()
	req.Equal([]string{"Carol"}, view.Online.Web)
	req.Equal([]string{"Alice"}, lo.Map(view.Offline, func(r domain.OfflineMemberRecord, _ int) string { return r.Name }))
}

func TestCoordinator_Stop_Discards_Late_Response(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	inFlight := make(chan struct{})
	release := make(chan struct{})

	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(1, "Alice")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	// Given a source answering only after the view was closed
	f.api.EXPECT().GetNewMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.MessageID, _ string) (contract.NewMessages, error) {
			close(inFlight)
			<-release
			return contract.NewMessages{Messages: []domain.ChatMessage{msg(2, "Bob")}}, nil
		})

	req.NoError(f.c.Start(context.Background()))
	f.settle()
	f.scheduler.fire("message_poll")
	<-inFlight

	// When Stop is called while the request is in flight
	stopped := make(chan struct{})
	go func() {
		f.c.Stop()
		close(stopped)
	}()
	req.Eventually(f.c.isStopped, time.Second, 5*time.Millisecond)
	close(release)
	<-stopped

	// Then the late response is ignored and the timers are gone
	req.Equal([]domain.MessageID{1}, ids(f.timeline.Messages()))
	req.Equal(1, f.scheduler.cancelled)

	// And nothing is scheduled or sent anymore
	f.scheduler.fire("message_poll")
	req.ErrorIs(f.c.Send(context.Background(), "hello"), chaterrors.ErrCoordinatorStopped)
	req.ErrorIs(f.c.Start(context.Background()), chaterrors.ErrCoordinatorStopped)
}

func TestCoordinator_LoadOlder_Prepends_History(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	before := domain.MessageID(51)

	f.api.EXPECT().GetMessages(gomock.Any(), contract.MessagesQuery{Limit: 50}).
		Return([]domain.ChatMessage{msg(52, "Alice"), msg(51, "Bob")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	f.api.EXPECT().GetMessages(gomock.Any(), contract.MessagesQuery{Limit: 50, BeforeID: &before}).
		Return([]domain.ChatMessage{msg(50, "Carol"), msg(1, "Dave")}, nil)

	// Before the initial page nothing is requested
	loaded, err := f.c.LoadOlder(context.Background())
	req.NoError(err)
	req.False(loaded)

	req.NoError(f.c.Start(context.Background()))
	f.settle()
	req.True(f.timeline.HasMore())

	// When older history is requested
	loaded, err = f.c.LoadOlder(context.Background())

	// Then it is merged and the start of history is reached
	req.NoError(err)
	req.True(loaded)
	req.Equal([]domain.MessageID{1, 50, 51, 52}, ids(f.timeline.Messages()))
	req.False(f.timeline.HasMore())

	// And no further request is made
	loaded, err = f.c.LoadOlder(context.Background())
	req.NoError(err)
	req.False(loaded)
}

func TestCoordinator_LoadOlder_Reports_Failure(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.api.EXPECT().GetMessages(gomock.Any(), contract.MessagesQuery{Limit: 50}).
		Return([]domain.ChatMessage{msg(20, "Alice")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	loaded, err := f.c.LoadOlder(context.Background())
	req.True(loaded)
	req.Error(err)
	req.False(f.c.olderInFlight.Load())
	req.Equal([]domain.MessageID{20}, ids(f.timeline.Messages()))
}

func TestCoordinator_Send_Polls_Immediately(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(7, "Alice")}, nil)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)
	gomock.InOrder(
		f.api.EXPECT().SendMessage(gomock.Any(), "hello", "web").Return(nil),
		f.api.EXPECT().GetNewMessages(gomock.Any(), domain.MessageID(7), "web").
			Return(contract.NewMessages{Messages: []domain.ChatMessage{msg(8, "web")}}, nil),
	)

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	// When sending a message
	req.NoError(f.c.Send(context.Background(), "  hello "))
	f.settle()

	// Then our own message shows up without waiting for a tick
	req.Equal([]domain.MessageID{7, 8}, ids(f.timeline.Messages()))

	// And empty content is rejected locally
	req.ErrorIs(f.c.Send(context.Background(), "   "), chaterrors.ErrInvalidMessage)
}

func TestCoordinator_Send_Rejected(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.api.EXPECT().SendMessage(gomock.Any(), "hello", "web").Return(chaterrors.ErrSendRejected)

	req.ErrorIs(f.c.Send(context.Background(), "hello"), chaterrors.ErrSendRejected)
}

func TestCoordinator_Reset_Reloads_History(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	gomock.InOrder(
		f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(1, "Alice"), msg(2, "Bob")}, nil),
		f.api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return([]domain.ChatMessage{msg(3, "Carol")}, nil),
	)
	f.api.EXPECT().GetPresence(gomock.Any()).Return(emptyPresence(), nil)

	req.NoError(f.c.Start(context.Background()))
	f.settle()

	// When history is cleared
	f.c.Reset()
	req.False(f.c.Loaded())
	req.Zero(f.timeline.Len())

	// Then the next message tick loads a fresh initial page
	f.scheduler.fire("message_poll")
	f.settle()
	req.Equal([]domain.MessageID{3}, ids(f.timeline.Messages()))
}

// stalledSink blocks on every event until released, whatever its context says.
type stalledSink struct {
	release chan struct{}
}

func (s *stalledSink) Consume(_ context.Context, _ event.DomainEvent) error {
	<-s.release
	return nil
}

func TestCoordinator_Stalled_Sink_Does_Not_Block_State_Changes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	api := mocks.NewMockChatAPI(ctrl)
	api.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	api.EXPECT().GetPresence(gomock.Any()).Return(domain.PresenceSnapshot{}, errors.New("down")).AnyTimes()

	sink := &stalledSink{release: make(chan struct{})}
	registry := NewRegistry()
	registry.Subscribe("viewer", sink)
	c := NewCoordinator(slog.Default(), api, projection.NewTimeline(0),
		projection.NewPresence(slog.Default(), nil, domain.OfflineRetention, nil),
		registry, newManualScheduler(), CoordinatorConfig{})
	req.NoError(c.Start(context.Background()))

	// Given a sink that never returns and more events than the buffer holds
	resets := make(chan struct{})
	go func() {
		defer close(resets)
		for range 3 * eventBufferSize {
			c.Reset()
		}
	}()

	// Then resets and reads keep going
	req.Eventually(func() bool {
		select {
		case <-resets:
			return true
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	req.False(c.Loaded())

	// And Stop returns once the sink lets go
	close(sink.release)
	stopped := make(chan struct{})
	go func() {
		c.Stop()
		close(stopped)
	}()
	req.Eventually(func() bool {
		select {
		case <-stopped:
			return true
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
