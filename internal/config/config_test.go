package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thaivocab/thaivocab/internal/config"
)

func validAzureConfig() config.Config {
	return config.Config{
		Addr:            ":8080",
		DBPath:          "file:thaivocab.db",
		TTSProvider:     config.ProviderAzure,
		AzureKey:        "key",
		AzureRegion:     "southeastasia",
		FFmpegPath:      "ffmpeg",
		DownloadTimeout: 600,
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validAzureConfig().Validate())
}

func TestValidate_AzureRequiresKey(t *testing.T) {
	cfg := validAzureConfig()
	cfg.AzureKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_KEY")
}

func TestValidate_OpenAIRequiresKey(t *testing.T) {
	cfg := validAzureConfig()
	cfg.TTSProvider = config.ProviderOpenAI
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_KEY")

	cfg.OpenAIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := validAzureConfig()
	cfg.TTSProvider = "espeak"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTS_PROVIDER")
}

func TestValidate_DownloadTimeoutMustBePositive(t *testing.T) {
	cfg := validAzureConfig()
	cfg.DownloadTimeout = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, config.ProviderAzure, cfg.TTSProvider)
	assert.Equal(t, "th-TH-PremwadeeNeural", cfg.ThaiVoice)
	assert.Equal(t, 600, cfg.DownloadTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("TTS_PROVIDER", config.ProviderOpenAI)
	t.Setenv("OPENAI_KEY", "secret")
	t.Setenv("DOWNLOAD_TIMEOUT_SECONDS", "120")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, config.ProviderOpenAI, cfg.TTSProvider)
	assert.Equal(t, "secret", cfg.OpenAIKey)
	assert.Equal(t, 120, cfg.DownloadTimeout)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("DOWNLOAD_TIMEOUT_SECONDS", "soon")

	cfg := config.Load()
	assert.Equal(t, 600, cfg.DownloadTimeout)
}
