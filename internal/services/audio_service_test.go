package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thaivocab/thaivocab/internal/audio"
	"github.com/thaivocab/thaivocab/internal/deck"
	apperrors "github.com/thaivocab/thaivocab/internal/errors"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/services"
	"github.com/thaivocab/thaivocab/internal/testutil/mocks"
	"github.com/thaivocab/thaivocab/internal/tts"
)

type noSilence struct{}

func (noSilence) Silence(context.Context, time.Duration) ([]byte, error) {
	return []byte("s"), nil
}

// joinConcat merges segments by concatenating their bytes, standing in for
// the ffmpeg merge.
type joinConcat struct{ err error }

func (j joinConcat) Concatenate(_ context.Context, segments [][]byte) ([]byte, error) {
	if j.err != nil {
		return nil, j.err
	}
	var buf bytes.Buffer
	for _, seg := range segments {
		buf.Write(seg)
	}
	return buf.Bytes(), nil
}

func newAudioFixture(t *testing.T, concat audio.Concatenator) services.AudioService {
	t.Helper()

	synth := new(mocks.MockSynthesizer)
	synth.On("Synthesize", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]byte("a"), nil)

	registry := deck.NewRegistry()
	registry.Add(&models.Deck{
		ID:       "vocab_Basics",
		Name:     "vocab Basics",
		Category: "vocab",
		Words: []models.Word{
			{Thai: "สวัสดี", English: "hello", AudioText: "สวัสดี"},
		},
		Fingerprint: "f1f1f1f1",
	})
	registry.Add(&models.Deck{
		ID:          "script_Week1",
		Name:        "script Week1",
		Category:    "script",
		Fingerprint: "deadbeef",
	})

	builder := audio.NewBuilder(tts.NewCache(synth), noSilence{}, "th-voice", "en-voice")
	return services.NewAudioService(registry, builder, concat, []string{"vocab"})
}

func TestBuildDeckAudio(t *testing.T) {
	svc := newAudioFixture(t, joinConcat{})

	data, filename, err := svc.BuildDeckAudio(context.Background(), "vocab_Basics", false)
	require.NoError(t, err)
	assert.Equal(t, "vocab_Basics.mp3", filename)
	// native, sil, english, sil, native, sil
	assert.Equal(t, []byte("asasas"), data)
}

func TestBuildDeckAudio_UnknownDeck(t *testing.T) {
	svc := newAudioFixture(t, joinConcat{})

	_, _, err := svc.BuildDeckAudio(context.Background(), "vocab_Nope", false)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestBuildDeckAudio_IneligibleCategory(t *testing.T) {
	svc := newAudioFixture(t, joinConcat{})

	_, _, err := svc.BuildDeckAudio(context.Background(), "script_Week1", false)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUnsupportedDeck, appErr.Code)
}

func TestBuildDeckAudio_ConcatFailure(t *testing.T) {
	svc := newAudioFixture(t, joinConcat{err: errors.New("ffmpeg exploded")})

	_, _, err := svc.BuildDeckAudio(context.Background(), "vocab_Basics", false)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeConcatenation, appErr.Code)
}
