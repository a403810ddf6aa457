// Package tts synthesizes speech through an external provider and memoizes
// the resulting audio per process.
package tts

import (
	"context"
	"fmt"

	"github.com/thaivocab/thaivocab/internal/config"
)

// Synthesizer converts text to spoken audio bytes. Voice names are
// provider-specific: Azure neural voice ids for the azure provider, OpenAI
// voice names for the openai provider.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string, rate float64) ([]byte, error)
	Name() string
}

// NewSynthesizer builds the provider selected by the configuration.
func NewSynthesizer(cfg config.Config) (Synthesizer, error) {
	switch cfg.TTSProvider {
	case config.ProviderAzure:
		if cfg.AzureKey == "" {
			return nil, fmt.Errorf("azure provider requires AZURE_KEY")
		}
		return NewAzureClient(cfg.AzureKey, cfg.AzureRegion), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_KEY")
		}
		return NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown TTS provider: %q", cfg.TTSProvider)
	}
}
