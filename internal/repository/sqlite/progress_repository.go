package sqlite

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a SQLite-backed ProgressRepository.
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Load(ctx context.Context) (map[string]models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	query, args, err := sqlBuilder.
		Select("deck_id", "fingerprint", "native_done", "translation_done").
		From("progress").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	progress := map[string]models.ProgressRecord{}
	for rows.Next() {
		var deckID string
		var rec models.ProgressRecord
		if err := rows.Scan(&deckID, &rec.Fingerprint, &rec.NativeDone, &rec.TranslationDone); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		progress[deckID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("loaded %d progress records", len(progress))
	return progress, nil
}

// Save replaces the whole mapping in one transaction. Deck counts are small,
// so the wholesale rewrite stays cheap; callers needing per-entry updates at
// larger scale should grow the interface instead of bypassing it.
func (r *progressRepository) Save(ctx context.Context, progress map[string]models.ProgressRecord) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM progress`); err != nil {
		log.Error("failed to clear progress: %v", err)
		return err
	}

	if len(progress) > 0 {
		deckIDs := make([]string, 0, len(progress))
		for deckID := range progress {
			deckIDs = append(deckIDs, deckID)
		}
		sort.Strings(deckIDs)

		insert := sqlBuilder.
			Insert("progress").
			Columns("deck_id", "fingerprint", "native_done", "translation_done")
		for _, deckID := range deckIDs {
			rec := progress[deckID]
			insert = insert.Values(deckID, rec.Fingerprint, rec.NativeDone, rec.TranslationDone)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert progress: %v", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit progress: %v", err)
		return err
	}

	log.Debug("saved %d progress records", len(progress))
	return nil
}
