// Package tracker implements the suggestion-history engine: canonical
// command hashing, feature extraction, similarity search, confidence
// estimation, insight generation, retention and export, composed behind
// the Tracker facade.
package tracker

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashPrefixLen is the number of hex characters kept from the digest.
const hashPrefixLen = 16

// HashCommand returns a short content hash identifying a command up to
// case and whitespace: the command is lowercased, runs of whitespace are
// collapsed to single spaces, and the first 16 hex characters of the
// SHA-256 digest are returned. Used for grouping and dedup only, not as
// a security boundary.
func HashCommand(command string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(command)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])[:hashPrefixLen]
}
