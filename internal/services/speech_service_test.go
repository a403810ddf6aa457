package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thaivocab/thaivocab/internal/services"
	"github.com/thaivocab/thaivocab/internal/testutil/mocks"
	"github.com/thaivocab/thaivocab/internal/tts"
)

func TestSpeakText(t *testing.T) {
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "สวัสดี", "th-voice", 0.9).Return([]byte("audio"), nil)

	svc := services.NewSpeechService(tts.NewCache(synth), "th-voice")

	assert.Equal(t, []byte("audio"), svc.SpeakText(context.Background(), "สวัสดี", 0.9))
}

func TestSpeakText_EmptyInput(t *testing.T) {
	synth := new(mocks.MockSynthesizer)
	svc := services.NewSpeechService(tts.NewCache(synth), "th-voice")

	assert.Empty(t, svc.SpeakText(context.Background(), "", 0.9))
	synth.AssertNotCalled(t, "Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSpeakNumber(t *testing.T) {
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "ยี่สิบเอ็ด", "th-voice", 0.85).Return([]byte("audio"), nil)

	svc := services.NewSpeechService(tts.NewCache(synth), "th-voice")

	audio, text := svc.SpeakNumber(context.Background(), 21, 0.85)
	assert.Equal(t, []byte("audio"), audio)
	assert.Equal(t, "ยี่สิบเอ็ด", text)
}
