package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSynthesizer is a mock implementation of tts.Synthesizer.
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, voice string, rate float64) ([]byte, error) {
	args := m.Called(ctx, text, voice, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSynthesizer) Name() string {
	args := m.Called()
	return args.String(0)
}
