package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"
)

// PrefixSummary namespaces archive summary entries.
const PrefixSummary = "summary"

// GenerateKey generates the stored cache key from a logical key.
// The result is a SHA256 hex digest, so arbitrary paths and separators
// in logical keys never leak into the store.
func GenerateKey(logical string) string {
	hash := sha256.Sum256([]byte(logical))
	return hex.EncodeToString(hash[:])
}

// SummaryKey builds the logical key for an archive summary. The root's
// modification time is part of the key, so a re-extracted archive at
// the same path gets a fresh entry instead of a stale hit.
func SummaryKey(root string, modTime time.Time) string {
	return fmt.Sprintf("%s:%s|%d", PrefixSummary, normalizeForKey(root), modTime.UTC().UnixNano())
}

// normalizeForKey normalizes a filesystem path so equivalent spellings
// (trailing slashes, dot segments, doubled separators) share a key.
func normalizeForKey(path string) string {
	if path == "" {
		return "."
	}
	return filepath.Clean(path)
}
