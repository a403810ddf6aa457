package services

import (
	"context"

	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/thainum"
	"github.com/thaivocab/thaivocab/internal/tts"
)

// SpeechService synthesizes single utterances for the /speak endpoints.
// A zero-length result means the audio is unavailable; callers respond with
// an empty body instead of an error, keeping the learner-facing flow alive.
type SpeechService interface {
	SpeakText(ctx context.Context, text string, rate float64) []byte
	SpeakNumber(ctx context.Context, number int, rate float64) (audio []byte, transliteration string)
}

type speechService struct {
	cache     *tts.Cache
	thaiVoice string
}

func NewSpeechService(cache *tts.Cache, thaiVoice string) SpeechService {
	return &speechService{cache: cache, thaiVoice: thaiVoice}
}

func (s *speechService) SpeakText(ctx context.Context, text string, rate float64) []byte {
	if text == "" {
		return nil
	}
	data, _ := s.cache.GetOrSynthesize(ctx, text, s.thaiVoice, rate)
	return data
}

func (s *speechService) SpeakNumber(ctx context.Context, number int, rate float64) ([]byte, string) {
	log := logger.FromContext(ctx)

	text := thainum.ToThai(number)
	log.Debug("number %d -> %s", number, text)

	data, _ := s.cache.GetOrSynthesize(ctx, text, s.thaiVoice, rate)
	return data, text
}
