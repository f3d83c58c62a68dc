package anthropic

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Anthropic client.
type Config struct {
	APIKey      string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL     string        // default https://api.anthropic.com
	Model       string        // e.g., "claude-3-haiku-20240307"
	MaxTokens   int           // completion budget, default 1024
	Temperature float32       // pinned to 0 for deterministic-as-possible output
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-haiku-20240307"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}
