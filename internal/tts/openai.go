package tts

import (
	"context"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/thaivocab/thaivocab/internal/logger"
)

// OpenAIClient synthesizes speech through the OpenAI speech API. Voice names
// are the OpenAI ones (alloy, nova, ...), so THAI_VOICE and ENGLISH_VOICE
// must be set accordingly when this provider is selected.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(key, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(key),
		model:  model,
	}
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) Synthesize(ctx context.Context, text, voice string, rate float64) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("openai-tts")
	start := time.Now()

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		Speed:          rate,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		log.Error("synthesis failed: %v", err)
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai speech read: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("openai speech: empty response")
	}

	log.Debug("synthesized %d bytes in %v (voice=%s rate=%v)", len(audio), time.Since(start), voice, rate)
	return audio, nil
}
