package sink

import (
	"chat-view/domain"
	"chat-view/domain/event"
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Follows_Events(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("viewer")
	ctx := context.Background()
	m := func(id domain.MessageID) domain.ChatMessage {
		return domain.ChatMessage{ID: id, SenderID: "Alice", Content: domain.PlainText("hi")}
	}
	ids := func() []domain.MessageID {
		return lo.Map(timeline.Messages(), func(m domain.ChatMessage, _ int) domain.MessageID { return m.ID })
	}

	// Given an initial page
	req.NoError(timeline.Consume(ctx, event.HistoryLoaded{Messages: []domain.ChatMessage{m(9), m(10)}, HasMore: true}))
	req.True(timeline.HasMore())

	// When newer then older messages arrive
	req.NoError(timeline.Consume(ctx, event.MessagesAppended{Messages: []domain.ChatMessage{m(11)}}))
	req.NoError(timeline.Consume(ctx, event.HistoryPrepended{Messages: []domain.ChatMessage{m(1), m(8)}, HasMore: false}))

	// Then the mirror is in order
	req.Equal([]domain.MessageID{1, 8, 9, 10, 11}, ids())
	req.False(timeline.HasMore())

	// And a reset empties it
	req.NoError(timeline.Consume(ctx, event.HistoryLoaded{}))
	req.Empty(timeline.Messages())

	view := domain.PresenceView{Online: domain.NewPresenceSnapshot([]string{"Bob"}, nil, nil)}
	req.NoError(timeline.Consume(ctx, event.PresenceChanged{View: view}))
	req.Equal(view, timeline.Presence())
}
