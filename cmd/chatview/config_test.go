package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_API_URL", "http://localhost:8080/api/chat")

	config, err := loadConfig[Config]()

	req.NoError(err)
	req.Equal("web", config.SenderID)
	req.Equal(50, config.PageSize)
	req.Equal(2*time.Second, config.MessageInterval)
	req.Equal(5*time.Second, config.StatusInterval)
	req.Equal(10*time.Second, config.RequestTimeout)
	req.Equal(5*time.Minute, config.OfflineRetention)
	req.Equal(1000, config.MaxRetained)
	req.Equal("INFO", config.LogLevel)
}

func TestLoadConfig_Rejects_Invalid_Values(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_API_URL", "http://localhost:8080")
	t.Setenv("CHAT_PAGE_SIZE", "0")

	_, err := loadConfig[Config]()
	req.Error(err)
}

func TestLoadConfig_Rejects_Invalid_URL(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_API_URL", "not a url")

	_, err := loadConfig[Config]()
	req.Error(err)
}
