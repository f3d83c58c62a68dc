package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM       LLMConfig
	Normalize NormalizeConfig
	OCR       OCRConfig
}

// LLMConfig holds generative-service configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// NormalizeConfig holds text-chunking policy
type NormalizeConfig struct {
	Threshold    int
	ChunkSize    int
	ChunkOverlap int
}

// OCRConfig holds image text-extraction configuration
type OCRConfig struct {
	Tesseract     string
	TesseractLang string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:      getEnv("ANTHROPIC_API_KEY", ""),
			BaseURL:     getEnv("ANTHROPIC_BASE_URL", ""),
			Model:       getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
			MaxTokens:   getEnvAsInt("ANTHROPIC_MAX_TOKENS", 1024),
			Temperature: getEnvAsFloat32("ANTHROPIC_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("ANTHROPIC_TIMEOUT", 60*time.Second),
		},
		Normalize: NormalizeConfig{
			Threshold:    getEnvAsInt("ANALYZER_TEXT_THRESHOLD", 10000),
			ChunkSize:    getEnvAsInt("ANALYZER_CHUNK_SIZE", 4000),
			ChunkOverlap: getEnvAsInt("ANALYZER_CHUNK_OVERLAP", 200),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
		},
	}
}

// Validate checks configuration before any I/O happens. A missing API key is
// a configuration failure regardless of what the invocation would do next.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewConfigurationFailure("ANTHROPIC_API_KEY is required", nil)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
