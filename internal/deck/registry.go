package deck

import (
	"github.com/thaivocab/thaivocab/internal/models"
)

// Registry is the process-wide set of loaded decks, keyed by deck id.
// It is built once at startup and never mutated afterwards, so reads need
// no locking.
type Registry struct {
	decks map[string]*models.Deck
	order []string // insertion order, for stable listings
}

func NewRegistry() *Registry {
	return &Registry{decks: map[string]*models.Deck{}}
}

// Add registers a deck. A duplicate id replaces the previous deck without
// changing its listing position.
func (r *Registry) Add(d *models.Deck) {
	if _, exists := r.decks[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.decks[d.ID] = d
}

// Get returns the deck for id, or nil when unknown.
func (r *Registry) Get(id string) *models.Deck {
	return r.decks[id]
}

// Len returns the number of registered decks.
func (r *Registry) Len() int {
	return len(r.decks)
}

// All returns the decks in load order.
func (r *Registry) All() []*models.Deck {
	out := make([]*models.Deck, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.decks[id])
	}
	return out
}

// Summaries returns the list-decks view in load order.
func (r *Registry) Summaries() []models.DeckSummary {
	out := make([]models.DeckSummary, 0, len(r.order))
	for _, id := range r.order {
		d := r.decks[id]
		out = append(out, models.DeckSummary{
			Name:        d.Name,
			ID:          d.ID,
			Category:    d.Category,
			Count:       d.Count(),
			Fingerprint: d.Fingerprint,
		})
	}
	return out
}
