package services

import (
	"context"
	"sync"

	"github.com/thaivocab/thaivocab/internal/deck"
	"github.com/thaivocab/thaivocab/internal/errors"
	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/repository"
)

// ProgressService tracks per-deck completion anchored to deck fingerprints.
type ProgressService interface {
	// GetProgress returns the full progress mapping, initializing missing
	// records and resetting any record whose fingerprint no longer matches
	// its deck. This read is the only place automatic invalidation happens.
	GetProgress(ctx context.Context) (map[string]models.ProgressRecord, error)

	// MarkComplete sets one completion flag and re-anchors the record to the
	// deck's current fingerprint. It deliberately does not reset the other
	// flag when the fingerprint drifted; only GetProgress performs the full
	// reset.
	MarkComplete(ctx context.Context, deckID, mode string) (models.ProgressRecord, error)

	// ResetDeck unconditionally clears both flags for one deck.
	ResetDeck(ctx context.Context, deckID string) (models.ProgressRecord, error)
}

type progressService struct {
	mu       sync.Mutex // serializes every load-mutate-save sequence
	registry *deck.Registry
	repo     repository.ProgressRepository
}

// NewProgressService creates a ProgressService over the given registry and
// durable mapping.
func NewProgressService(registry *deck.Registry, repo repository.ProgressRepository) ProgressService {
	return &progressService{registry: registry, repo: repo}
}

func (s *progressService) GetProgress(ctx context.Context) (map[string]models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	dirty := false
	for _, d := range s.registry.All() {
		rec, ok := progress[d.ID]
		switch {
		case !ok:
			progress[d.ID] = models.ProgressRecord{Fingerprint: d.Fingerprint}
			dirty = true
		case rec.Fingerprint != d.Fingerprint:
			log.Info("deck %q changed (fingerprint %s -> %s), resetting progress",
				d.ID, rec.Fingerprint, d.Fingerprint)
			progress[d.ID] = models.ProgressRecord{Fingerprint: d.Fingerprint}
			dirty = true
		}
	}

	if dirty {
		if err := s.repo.Save(ctx, progress); err != nil {
			return nil, errors.NewInternalError(err)
		}
	}

	// Records for decks no longer in the registry are returned as-is;
	// they are harmless and simply ignored by clients.
	return progress, nil
}

func (s *progressService) MarkComplete(ctx context.Context, deckID, mode string) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	if mode != models.ModeNative && mode != models.ModeTranslation {
		return models.ProgressRecord{}, errors.NewInvalidModeError(mode)
	}
	d := s.registry.Get(deckID)
	if d == nil {
		return models.ProgressRecord{}, errors.NewNotFoundError("deck", deckID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.repo.Load(ctx)
	if err != nil {
		return models.ProgressRecord{}, errors.NewInternalError(err)
	}

	rec := progress[deckID] // zero value doubles as the fresh record
	if mode == models.ModeNative {
		rec.NativeDone = true
	} else {
		rec.TranslationDone = true
	}
	rec.Fingerprint = d.Fingerprint
	progress[deckID] = rec

	if err := s.repo.Save(ctx, progress); err != nil {
		return models.ProgressRecord{}, errors.NewInternalError(err)
	}

	log.Info("marked %s [%s] as complete", deckID, mode)
	return rec, nil
}

func (s *progressService) ResetDeck(ctx context.Context, deckID string) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx)

	d := s.registry.Get(deckID)
	if d == nil {
		return models.ProgressRecord{}, errors.NewNotFoundError("deck", deckID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, err := s.repo.Load(ctx)
	if err != nil {
		return models.ProgressRecord{}, errors.NewInternalError(err)
	}

	rec := models.ProgressRecord{Fingerprint: d.Fingerprint}
	progress[deckID] = rec

	if err := s.repo.Save(ctx, progress); err != nil {
		return models.ProgressRecord{}, errors.NewInternalError(err)
	}

	log.Info("reset progress for %s", deckID)
	return rec, nil
}
