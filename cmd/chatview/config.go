package main

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIURL           string        `env:"CHAT_API_URL,required=true" validate:"required,url"`
	APIToken         string        `env:"CHAT_API_TOKEN"`
	SenderID         string        `env:"CHAT_SENDER_ID,default=web" validate:"required"`
	PageSize         int           `env:"CHAT_PAGE_SIZE,default=50" validate:"gt=0,lte=500"`
	MessageInterval  time.Duration `env:"MESSAGE_POLL_INTERVAL,default=2s" validate:"gt=0"`
	StatusInterval   time.Duration `env:"STATUS_POLL_INTERVAL,default=5s" validate:"gt=0"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT,default=10s" validate:"gt=0"`
	OfflineRetention time.Duration `env:"OFFLINE_RETENTION,default=5m" validate:"gt=0"`
	MaxRetained      int           `env:"MAX_RETAINED_MESSAGES,default=1000" validate:"gt=0"`
	OfflineCachePath string        `env:"OFFLINE_CACHE_PATH"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	NoColor          bool          `env:"NO_COLOR"`
}

// CacheConfig is the subset used by commands that only read the offline cache.
type CacheConfig struct {
	OfflineCachePath string        `env:"OFFLINE_CACHE_PATH"`
	OfflineRetention time.Duration `env:"OFFLINE_RETENTION,default=5m" validate:"gt=0"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

var validate = validator.New()

// loadConfig reads a .env file when present, then the environment.
func loadConfig[T any]() (T, error) {
	var config T
	_ = godotenv.Load()
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
