package tts

import (
	"context"
	"fmt"
	"sync"

	"github.com/thaivocab/thaivocab/internal/logger"
)

// Cache memoizes synthesized audio for the process lifetime. Entries are
// never evicted or recomputed. The key is text plus rate; voice is fixed per
// call path (Thai voice for native text, English voice for translations), so
// it is deliberately not part of the key.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	synth   Synthesizer
}

func NewCache(synth Synthesizer) *Cache {
	return &Cache{
		entries: map[string][]byte{},
		synth:   synth,
	}
}

func cacheKey(text string, rate float64) string {
	return fmt.Sprintf("%s_%v", text, rate)
}

// GetOrSynthesize returns the audio for (text, rate), synthesizing it on the
// first request. fresh reports whether a provider call was made. On provider
// failure nothing is cached and the result is empty; callers must treat a
// zero-length result as "unavailable", not as silence.
//
// The lock covers only map access, so two requests racing on the same new key
// may both synthesize; the last write wins, which costs a duplicate provider
// call but never returns wrong audio.
func (c *Cache) GetOrSynthesize(ctx context.Context, text, voice string, rate float64) (audio []byte, fresh bool) {
	log := logger.FromContext(ctx).WithPrefix("tts-cache")
	key := cacheKey(text, rate)

	c.mu.Lock()
	if data, ok := c.entries[key]; ok {
		c.mu.Unlock()
		log.Debug("cache hit (%d bytes)", len(data))
		return data, false
	}
	c.mu.Unlock()

	data, err := c.synth.Synthesize(ctx, text, voice, rate)
	if err != nil {
		log.Warn("synthesis unavailable for %q: %v", text, err)
		return nil, false
	}
	if len(data) == 0 {
		log.Warn("provider returned empty audio for %q, not caching", text)
		return nil, false
	}

	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()
	return data, true
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
