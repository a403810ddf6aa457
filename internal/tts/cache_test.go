package tts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thaivocab/thaivocab/internal/testutil/mocks"
	"github.com/thaivocab/thaivocab/internal/tts"
)

func TestCache_SynthesizesOncePerKey(t *testing.T) {
	ctx := context.Background()
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "สวัสดี", "voice-a", 0.9).Return([]byte("audio"), nil).Once()

	cache := tts.NewCache(synth)

	first, fresh := cache.GetOrSynthesize(ctx, "สวัสดี", "voice-a", 0.9)
	require.Equal(t, []byte("audio"), first)
	assert.True(t, fresh)

	second, fresh := cache.GetOrSynthesize(ctx, "สวัสดี", "voice-a", 0.9)
	assert.Equal(t, first, second)
	assert.False(t, fresh, "second call must be served from the cache")

	synth.AssertNumberOfCalls(t, "Synthesize", 1)
}

func TestCache_RateIsPartOfKey(t *testing.T) {
	ctx := context.Background()
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "สวัสดี", "voice-a", 0.9).Return([]byte("slow"), nil).Once()
	synth.On("Synthesize", mock.Anything, "สวัสดี", "voice-a", 1.0).Return([]byte("fast"), nil).Once()

	cache := tts.NewCache(synth)

	slow, _ := cache.GetOrSynthesize(ctx, "สวัสดี", "voice-a", 0.9)
	fast, _ := cache.GetOrSynthesize(ctx, "สวัสดี", "voice-a", 1.0)

	assert.Equal(t, []byte("slow"), slow)
	assert.Equal(t, []byte("fast"), fast)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_FailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "ไป", "voice-a", 0.9).Return(nil, errors.New("quota")).Once()
	synth.On("Synthesize", mock.Anything, "ไป", "voice-a", 0.9).Return([]byte("audio"), nil).Once()

	cache := tts.NewCache(synth)

	data, fresh := cache.GetOrSynthesize(ctx, "ไป", "voice-a", 0.9)
	assert.Empty(t, data, "failed synthesis yields the empty sentinel")
	assert.False(t, fresh)
	assert.Equal(t, 0, cache.Len())

	// The next call retries instead of serving the failure.
	data, fresh = cache.GetOrSynthesize(ctx, "ไป", "voice-a", 0.9)
	assert.Equal(t, []byte("audio"), data)
	assert.True(t, fresh)
}

func TestCache_EmptyProviderResultIsNotCached(t *testing.T) {
	ctx := context.Background()
	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, "มา", "voice-a", 0.9).Return([]byte{}, nil)

	cache := tts.NewCache(synth)

	data, fresh := cache.GetOrSynthesize(ctx, "มา", "voice-a", 0.9)
	assert.Empty(t, data)
	assert.False(t, fresh)
	assert.Equal(t, 0, cache.Len())
}
