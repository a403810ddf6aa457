package audio

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/thaivocab/thaivocab/internal/logger"
	"github.com/thaivocab/thaivocab/internal/models"
	"github.com/thaivocab/thaivocab/internal/tts"
)

// Per-word playback pattern: native, pause, translation, pause, native again,
// long pause before the next word.
const (
	pauseAfterNative      = 2 * time.Second
	pauseAfterTranslation = 1 * time.Second
	pauseAfterWord        = 3 * time.Second

	nativeRate      = 0.9
	translationRate = 1.0
)

// Builder assembles the ordered segment list for a deck. Each unique
// utterance is synthesized at most once per process through the cache, and
// each silence duration is rendered once per build.
type Builder struct {
	cache        *tts.Cache
	silence      SilenceGenerator
	nativeVoice  string
	englishVoice string
}

func NewBuilder(cache *tts.Cache, silence SilenceGenerator, nativeVoice, englishVoice string) *Builder {
	return &Builder{
		cache:        cache,
		silence:      silence,
		nativeVoice:  nativeVoice,
		englishVoice: englishVoice,
	}
}

// Build returns the deck's segment sequence. With shuffle, playback order is
// a fresh uniform permutation on every call; the deck itself is never
// reordered. Failed synthesis yields empty speech segments, which are dropped
// here while their surrounding silence gaps stay in place.
func (b *Builder) Build(ctx context.Context, words []models.Word, shuffle bool) [][]byte {
	log := logger.FromContext(ctx).WithPrefix("audio")

	ordered := make([]models.Word, len(words))
	copy(ordered, words)
	if shuffle {
		rand.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}

	sil1 := b.silenceFor(ctx, pauseAfterTranslation)
	sil2 := b.silenceFor(ctx, pauseAfterNative)
	sil3 := b.silenceFor(ctx, pauseAfterWord)

	var segments [][]byte
	for i, word := range ordered {
		translation := CleanTranslation(word.English)
		log.Debug("word %d/%d: %s / %s", i+1, len(ordered), word.AudioText, translation)

		native, _ := b.cache.GetOrSynthesize(ctx, word.AudioText, b.nativeVoice, nativeRate)
		english, _ := b.cache.GetOrSynthesize(ctx, translation, b.englishVoice, translationRate)

		if len(native) > 0 {
			segments = append(segments, native)
		}
		segments = append(segments, sil2)
		if len(english) > 0 {
			segments = append(segments, english)
		}
		segments = append(segments, sil1)
		if len(native) > 0 {
			segments = append(segments, native)
		}
		segments = append(segments, sil3)
	}

	log.Info("built %d segments for %d words (shuffle=%v)", len(segments), len(ordered), shuffle)
	return segments
}

func (b *Builder) silenceFor(ctx context.Context, d time.Duration) []byte {
	buf, err := b.silence.Silence(ctx, d)
	if err != nil {
		// An empty buffer is filtered by the concatenator; the gap collapses
		// instead of failing the whole download.
		logger.FromContext(ctx).Warn("silence generation failed for %v: %v", d, err)
		return nil
	}
	return buf
}

var (
	bracketRe = regexp.MustCompile(`\(([^)]*)\)`)
	slashRe   = regexp.MustCompile(`\s*/\s*`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// CleanTranslation normalizes a translation for spoken output: brackets are
// stripped but their content kept, slash-separated alternatives are joined
// with "or", and whitespace is collapsed.
func CleanTranslation(text string) string {
	text = bracketRe.ReplaceAllString(text, "$1")
	text = slashRe.ReplaceAllString(text, " or ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
