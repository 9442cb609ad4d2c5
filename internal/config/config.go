package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Penny"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Assistant struct {
		// TypingDelay models the assistant composing a reply. Ledger
		// mutations always happen before the delay, so it only affects
		// when the reply becomes visible.
		TypingDelay time.Duration `envconfig:"TYPING_DELAY" default:"800ms"`
		UserName    string        `envconfig:"USER_NAME"`
	}

	Budget struct {
		MonthlyCents int64 `envconfig:"MONTHLY_BUDGET_CENTS" default:"300000"`
	}

	Demo struct {
		Seed bool `envconfig:"DEMO_SEED" default:"true"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
