package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thaivocab/thaivocab/internal/deck"
	"github.com/thaivocab/thaivocab/internal/models"
)

func sampleWords() []models.Word {
	return []models.Word{
		{Thai: "สวัสดี", English: "hello", AudioText: "สวัสดี"},
		{Thai: "ขอบคุณ", English: "thank you", AudioText: "ขอบคุณ"},
		{Thai: "ลาก่อน", English: "goodbye", AudioText: "ลาก่อน"},
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	words := sampleWords()

	first := deck.Fingerprint(words)
	second := deck.Fingerprint(sampleWords())

	assert.Equal(t, first, second, "identical ordered content must yield identical fingerprints")
	assert.Len(t, first, deck.FingerprintLen)
}

func TestFingerprint_IgnoresNonContentFields(t *testing.T) {
	words := sampleWords()
	base := deck.Fingerprint(words)

	words[1].Phonetic = "khop khun"
	words[1].AudioText = "ขอบคุณครับ"

	assert.Equal(t, base, deck.Fingerprint(words), "phonetic and audio override are not part of the content hash")
}

func TestFingerprint_Sensitivity(t *testing.T) {
	base := deck.Fingerprint(sampleWords())

	t.Run("translation edit", func(t *testing.T) {
		words := sampleWords()
		words[1].English = "thanks"
		assert.NotEqual(t, base, deck.Fingerprint(words))
	})

	t.Run("reorder", func(t *testing.T) {
		words := sampleWords()
		words[0], words[1] = words[1], words[0]
		assert.NotEqual(t, base, deck.Fingerprint(words))
	})

	t.Run("insertion", func(t *testing.T) {
		words := append(sampleWords(), models.Word{Thai: "ใช่", English: "yes"})
		assert.NotEqual(t, base, deck.Fingerprint(words))
	})

	t.Run("deletion", func(t *testing.T) {
		words := sampleWords()[:2]
		assert.NotEqual(t, base, deck.Fingerprint(words))
	})
}

func TestFingerprint_EmptyDeck(t *testing.T) {
	assert.Len(t, deck.Fingerprint(nil), deck.FingerprintLen)
}
