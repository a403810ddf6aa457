package repository

import (
	"context"

	"github.com/thaivocab/thaivocab/internal/models"
)

// ProgressRepository is the durable mapping from deck id to progress record.
// Load returns the entire mapping; Save replaces it wholesale. The narrow
// interface keeps callers ignorant of the storage scheme so a per-entry or
// transactional store can be swapped in later.
type ProgressRepository interface {
	Load(ctx context.Context) (map[string]models.ProgressRecord, error)
	Save(ctx context.Context, progress map[string]models.ProgressRecord) error
}
