package workers

import (
	"chat-view/contract"
	"chat-view/domain/event"
	"chat-view/mocks"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink1 := mocks.NewMockEventSink(ctrl)
	mockSink2 := mocks.NewMockEventSink(ctrl)

	fanout := NewEventFanout(log, nil, mockRegistry, time.Second)
	evt := event.MessagesAppended{}

	// Given two viewers are subscribed
	mockRegistry.EXPECT().Sinks().Return([]contract.EventSink{mockSink1, mockSink2}).Times(1)
	// Then both receive the event, even when the first one fails
	mockSink1.EXPECT().Consume(gomock.Any(), evt).Return(errors.New("closed")).Times(1)
	mockSink2.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	// When an event is handled
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	sinkTimeout := 20 * time.Millisecond
	fanout := NewEventFanout(log, nil, mockRegistry, sinkTimeout)

	mockRegistry.EXPECT().Sinks().Return([]contract.EventSink{mockSink}).Times(1)
	// Given a sink that only returns once its deadline expired
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)

	start := time.Now()
	fanout.Fanout(context.Background(), event.PresenceChanged{})

	// Then the fanout is not blocked longer than the sink timeout allows
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Run_Delivers_In_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	events := make(chan event.DomainEvent, 2)
	fanout := NewEventFanout(slog.Default(), events, mockRegistry, time.Second)

	received := make(chan string, 2)
	mockRegistry.EXPECT().Sinks().Return([]contract.EventSink{mockSink}).Times(2)
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			received <- evt.Name()
			return nil
		}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- fanout.Run(ctx) }()

	// When two events are published
	events <- event.HistoryLoaded{}
	events <- event.MessagesAppended{}

	// Then they are delivered in order
	req.Equal("history_loaded", <-received)
	req.Equal("messages_appended", <-received)

	cancel()
	req.NoError(<-done)
}
