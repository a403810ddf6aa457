package deck

import (
	"context"
	"sort"
	"strings"

	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/sheets"
)

// TabFetcher yields the rows of one spreadsheet tab.
type TabFetcher interface {
	FetchTab(ctx context.Context, sheetID, tab string) ([]sheets.Row, error)
}

// DeckID builds the registry key for a category and tab name.
func DeckID(category, tab string) string {
	return category + "_" + strings.ReplaceAll(tab, " ", "_")
}

// Load fetches every configured tab and builds the deck registry. A tab that
// fails to fetch is logged and skipped so one broken source does not take the
// whole catalog down.
func Load(ctx context.Context, fetcher TabFetcher, sources Sources) *Registry {
	log := logger.FromContext(ctx).WithPrefix("deck")
	registry := NewRegistry()

	categories := make([]string, 0, len(sources))
	for category := range sources {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		source := sources[category]
		log.Info("loading category %q (%d tabs)", category, len(source.Tabs))

		for _, tab := range source.Tabs {
			rows, err := fetcher.FetchTab(ctx, source.SheetID, tab)
			if err != nil {
				log.Error("skipping tab %q: %v", tab, err)
				continue
			}

			words := buildWords(category, rows)
			d := &models.Deck{
				ID:          DeckID(category, tab),
				Name:        tab,
				Category:    category,
				Words:       words,
				Fingerprint: Fingerprint(words),
			}
			registry.Add(d)

			if len(words) == 0 {
				log.Warn("deck %q loaded with no cards", d.ID)
			} else {
				log.Info("deck %q: %d cards (fingerprint %s)", d.ID, len(words), d.Fingerprint)
			}
		}
	}

	log.Info("registry ready: %d decks", registry.Len())
	return registry
}

// buildWords applies the retention invariant: a word is kept only when both
// the Thai form and the translation are non-empty. Script decks fall back to
// the pronunciation column when the English column is blank.
func buildWords(category string, rows []sheets.Row) []models.Word {
	var words []models.Word
	for _, row := range rows {
		eng := row.English
		if category == "script" && eng == "" {
			eng = row.Phonetic
		}
		if row.Thai == "" || eng == "" {
			continue
		}

		audioText := row.Override
		if audioText == "" {
			audioText = row.Thai
		}
		words = append(words, models.Word{
			Thai:      row.Thai,
			Phonetic:  row.Phonetic,
			English:   eng,
			AudioText: audioText,
		})
	}
	return words
}
