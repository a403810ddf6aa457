package models

// Word is a single vocabulary entry inside a deck. AudioText is the text
// actually sent to the synthesizer and defaults to the Thai form when the
// source row has no override.
type Word struct {
	Thai      string `json:"thai"`
	Phonetic  string `json:"phonetic,omitempty"`
	English   string `json:"eng"`
	AudioText string `json:"audio_text"`
}

// Deck is an ordered collection of words loaded from one sheet tab. Decks are
// built once at startup and never mutated; a reload replaces the whole
// registry.
type Deck struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Words       []Word `json:"words"`
	Fingerprint string `json:"fingerprint"`
}

// Count returns the number of retained words.
func (d *Deck) Count() int {
	return len(d.Words)
}

// DeckSummary is the list-decks response shape.
type DeckSummary struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Category    string `json:"category"`
	Count       int    `json:"count"`
	Fingerprint string `json:"fingerprint"`
}

// Completion modes accepted by the progress endpoints.
const (
	ModeNative      = "native"
	ModeTranslation = "translation"
)

// ProgressRecord tracks per-deck completion. Fingerprint anchors the record to
// the deck content the flags were earned against; when the deck's current
// fingerprint drifts away from it the flags are no longer meaningful and get
// reset on the next progress read.
type ProgressRecord struct {
	Fingerprint     string `json:"fingerprint"`
	NativeDone      bool   `json:"native_done"`
	TranslationDone bool   `json:"translation_done"`
}
