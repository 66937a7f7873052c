package e2e

import (
	"chat-view/contract"
	"chat-view/infrastructure/httpapi"
	"context"
	"fmt"
	"log/slog"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseChatSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
}

// SetupSuite loads the environment configuration and skips when no chat source is configured.
func (s *BaseChatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ChatAPIURL == "" {
		s.T().Skip("E2E_CHAT_API_URL not set")
	}
	s.Log = logs.GetLoggerFromLevel(slog.LevelDebug)
}

// Step prints a header for a test step.
func (s *BaseChatSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// WithClient runs fn with a client of the configured chat source and a bounded context.
func (s *BaseChatSuite) WithClient(name string, fn func(ctx context.Context, client contract.ChatAPI)) {
	s.Step(name)
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()
	fn(ctx, newClient(s))
}

func newClient(s *BaseChatSuite) contract.ChatAPI {
	return httpapi.NewClient(s.Log, s.Config.ChatAPIURL, s.Config.ChatToken, s.Config.Timeout)
}
