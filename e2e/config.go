package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_CHAT_API_URL points at a running chat source; the suite is skipped when empty
	ChatAPIURL string        `envconfig:"E2E_CHAT_API_URL"`
	ChatToken  string        `envconfig:"E2E_CHAT_API_TOKEN"`
	SenderID   string        `envconfig:"E2E_SENDER_ID" default:"e2e"`
	Timeout    time.Duration `envconfig:"E2E_TIMEOUT" default:"10s"`
	// E2E_DEBUG_BODIES logs every message received
	DebugBodies bool `envconfig:"E2E_DEBUG_BODIES" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
