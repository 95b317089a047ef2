package config

import (
	"time"

	"github.com/spf13/viper"
)

// AI represents the extraction model configuration.
type AI struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func getAIConfig(v *viper.Viper) *AI {
	cfg := &AI{
		BaseURL: v.GetString("ai.base_url"),
		APIKey:  v.GetString("ai.api_key"),
		Model:   v.GetString("ai.model"),
		Timeout: v.GetDuration("ai.timeout"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}
