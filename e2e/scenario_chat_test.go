package e2e

import (
	"chat-view/contract"
	"chat-view/domain"
	"chat-view/projection"
	"chat-view/runtime"
	"chat-view/runtime/workers"
	"chat-view/sink"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testChatSyncSuite struct {
	BaseChatSuite
}

func TestChatSyncSuite(t *testing.T) {
	suite.Run(t, &testChatSyncSuite{})
}

func (s *testChatSyncSuite) TestSendAndPoll() {
	marker := fmt.Sprintf("e2e %s", uuid.NewString())
	var latest domain.MessageID

	s.Run("Step 1: Read the latest page", func() {
		s.WithClient("Initial history", func(ctx context.Context, client contract.ChatAPI) {
			page, err := client.GetMessages(ctx, contract.MessagesQuery{Limit: 20})
			s.Require().NoError(err)
			for i := 1; i < len(page); i++ {
				s.Require().Less(page[i-1].ID, page[i].ID, "page must be ascending")
			}
			if len(page) > 0 {
				latest = page[len(page)-1].ID
			}
			s.debug(page)
		})
	})

	s.Run("Step 2: Send a message", func() {
		s.WithClient("Send", func(ctx context.Context, client contract.ChatAPI) {
			s.Require().NoError(client.SendMessage(ctx, marker, s.Config.SenderID))
		})
	})

	s.Run("Step 3: The message comes back exactly once", func() {
		s.WithClient("Incremental poll", func(ctx context.Context, client contract.ChatAPI) {
			var found []domain.ChatMessage
			s.Require().Eventually(func() bool {
				res, err := client.GetNewMessages(ctx, latest, s.Config.SenderID)
				if err != nil {
					return false
				}
				s.debug(res.Messages)
				found = lo.Filter(res.Messages, func(m domain.ChatMessage, _ int) bool {
					return m.Content.String() == marker
				})
				return len(found) > 0
			}, s.Config.Timeout, 500*time.Millisecond)
			s.Require().Len(found, 1)
			s.Require().Greater(found[0].ID, latest)
		})
	})
}

func (s *testChatSyncSuite) TestCoordinatorLoadsHistory() {
	s.Step("Coordinator against the live source")
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()

	timeline := projection.NewTimeline(0)
	presence := projection.NewPresence(s.Log, nil, domain.OfflineRetention, nil)
	mirror := sink.NewTimeline(s.Config.SenderID)
	registry := runtime.NewRegistry()
	registry.Subscribe(s.Config.SenderID, mirror)
	coordinator := runtime.NewCoordinator(
		s.Log,
		newClient(&s.BaseChatSuite),
		timeline,
		presence,
		registry,
		workers.NewTickerScheduler(ctx, s.Log),
		runtime.CoordinatorConfig{SenderID: s.Config.SenderID, MessageInterval: 500 * time.Millisecond, StatusInterval: time.Second},
	)
	s.Require().NoError(coordinator.Start(ctx))
	defer coordinator.Stop()

	s.Require().Eventually(coordinator.Loaded, s.Config.Timeout, 100*time.Millisecond)
	messages := timeline.Messages()
	for i := 1; i < len(messages); i++ {
		s.Require().Less(messages[i-1].ID, messages[i].ID)
	}
	s.Require().Eventually(func() bool {
		return len(mirror.Messages()) == len(messages)
	}, s.Config.Timeout, 100*time.Millisecond, "viewer sink must receive the initial page")

	view := presence.View()
	for _, r := range view.Offline {
		s.Require().False(view.Online.Contains(r.Name))
	}
}

func (s *testChatSyncSuite) debug(messages []domain.ChatMessage) {
	if !s.Config.DebugBodies {
		return
	}
	for _, m := range messages {
		s.T().Logf("#%d <%s> %s", m.ID, m.SenderID, m.Content.String())
	}
}
