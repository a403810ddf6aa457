package deck

import (
	"encoding/json"
	"os"

	"github.com/thaivocab/thaivocab/internal/logger"
)

// Source names one spreadsheet and the tabs to load from it.
type Source struct {
	SheetID string   `json:"sheet_id"`
	Tabs    []string `json:"tabs"`
}

// Sources maps a category name to its spreadsheet source.
type Sources map[string]Source

// DefaultSources returns the built-in deck sources.
func DefaultSources() Sources {
	return Sources{
		"vocab": {
			SheetID: "13yvW0q6WXHlabaRjJUSKdreNmHH-NI-_OVtRfndO_e8",
			Tabs:    []string{"Vocab 1", "Vocab 2", "Vocab 3", "Vocab 4", "Vocab 5", "Places", "Numbers"},
		},
		"script": {
			SheetID: "1ny4GYNfDmK-vQH84OlpJe1PW-XemKMmVtncaKpTm0Og",
			Tabs:    []string{"V1", "V2", "V3", "P", "N"},
		},
	}
}

// LoadSources reads the sources file at path, falling back to the defaults
// when the file is absent or malformed.
func LoadSources(path string) Sources {
	log := logger.Default().WithPrefix("deck")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read %s, using default sources: %v", path, err)
		}
		return DefaultSources()
	}

	var sources Sources
	if err := json.Unmarshal(data, &sources); err != nil {
		log.Warn("could not parse %s, using default sources: %v", path, err)
		return DefaultSources()
	}
	if len(sources) == 0 {
		log.Warn("%s defines no sources, using defaults", path)
		return DefaultSources()
	}

	log.Info("loaded deck sources from %s", path)
	return sources
}
