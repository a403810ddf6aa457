package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/thaivocab/thaivocab/internal/models"
)

// FingerprintLen is the number of hex characters kept from the digest.
const FingerprintLen = 8

// Fingerprint derives a short content digest from an ordered word list.
// Identical ordered content always yields the same fingerprint; any edit,
// reorder, insertion or deletion changes it with overwhelming probability.
// Thai form and translation are concatenated without a separator, so a
// boundary-shifting edit inside one word can theoretically alias; the
// collision chance is negligible at this digest length.
func Fingerprint(words []models.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Thai + w.English
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:FingerprintLen]
}
