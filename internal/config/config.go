package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/thaivocab/thaivocab/internal/logger"
)

// TTS provider names accepted by TTS_PROVIDER.
const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
)

type Config struct {
	Addr            string
	DBPath          string
	SourcesPath     string
	LogLevel        string
	TTSProvider     string
	AzureKey        string
	AzureRegion     string
	OpenAIKey       string
	OpenAIModel     string
	FFmpegPath      string
	ThaiVoice       string
	EnglishVoice    string
	DownloadTimeout int // seconds; bounds a whole-deck synthesis and merge
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:thaivocab.db"),
		SourcesPath:     envOr("SOURCES_PATH", "sources.json"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		TTSProvider:     envOr("TTS_PROVIDER", ProviderAzure),
		AzureKey:        os.Getenv("AZURE_KEY"),
		AzureRegion:     envOr("AZURE_REGION", "southeastasia"),
		OpenAIKey:       os.Getenv("OPENAI_KEY"),
		OpenAIModel:     envOr("OPENAI_MODEL", "tts-1"),
		FFmpegPath:      envOr("FFMPEG_PATH", "ffmpeg"),
		ThaiVoice:       envOr("THAI_VOICE", "th-TH-PremwadeeNeural"),
		EnglishVoice:    envOr("ENGLISH_VOICE", "en-US-JennyNeural"),
		DownloadTimeout: envIntOr("DOWNLOAD_TIMEOUT_SECONDS", 600),
	}
}

// Validate checks the configuration for values the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	switch c.TTSProvider {
	case ProviderAzure:
		if c.AzureKey == "" {
			return fmt.Errorf("AZURE_KEY is required when TTS_PROVIDER=azure")
		}
		if c.AzureRegion == "" {
			return fmt.Errorf("AZURE_REGION cannot be empty")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_KEY is required when TTS_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown TTS_PROVIDER: %q", c.TTSProvider)
	}
	if c.FFmpegPath == "" {
		return fmt.Errorf("FFMPEG_PATH cannot be empty")
	}
	if c.DownloadTimeout <= 0 {
		return fmt.Errorf("DOWNLOAD_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Warn("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
