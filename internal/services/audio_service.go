package services

import (
	"context"
	"strings"

	"github.com/thaivocab/thaivocab/internal/audio"
	"github.com/thaivocab/thaivocab/internal/deck"
	"github.com/thaivocab/thaivocab/internal/errors"
	"github.com/thaivocab/thaivocab/internal/logger"
)

// AudioService produces the downloadable listening track for a deck.
type AudioService interface {
	// BuildDeckAudio synthesizes and merges the whole deck into one MP3.
	// It returns the merged bytes and the attachment filename.
	BuildDeckAudio(ctx context.Context, deckID string, shuffle bool) ([]byte, string, error)
}

type audioService struct {
	registry   *deck.Registry
	builder    *audio.Builder
	concat     audio.Concatenator
	categories map[string]bool // categories eligible for audio export
}

// NewAudioService creates an AudioService limited to the given categories.
func NewAudioService(registry *deck.Registry, builder *audio.Builder, concat audio.Concatenator, categories []string) AudioService {
	eligible := make(map[string]bool, len(categories))
	for _, c := range categories {
		eligible[c] = true
	}
	return &audioService{
		registry:   registry,
		builder:    builder,
		concat:     concat,
		categories: eligible,
	}
}

func (s *audioService) BuildDeckAudio(ctx context.Context, deckID string, shuffle bool) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	d := s.registry.Get(deckID)
	if d == nil {
		return nil, "", errors.NewNotFoundError("deck", deckID)
	}
	if !s.categories[d.Category] {
		return nil, "", errors.NewUnsupportedDeckError(deckID)
	}

	log.Info("generating audio for %q (%d words, shuffle=%v)", d.Name, d.Count(), shuffle)

	segments := s.builder.Build(ctx, d.Words, shuffle)
	merged, err := s.concat.Concatenate(ctx, segments)
	if err != nil {
		return nil, "", errors.NewConcatenationError(err)
	}

	filename := strings.ReplaceAll(d.Name, " ", "_") + ".mp3"
	log.Info("deck audio ready: %s (%d bytes)", filename, len(merged))
	return merged, filename, nil
}
