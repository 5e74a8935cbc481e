package formatter

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

// cacheKey derives a stable key from every field that shapes the prompt.
func cacheKey(req interfaces.FormatRequest) string {
	// FormatRequest holds only strings, ints and bools; Marshal cannot fail.
	b, _ := json.Marshal(req)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// CacheLen returns the number of cached results, or 0 when caching is off.
func (f *Formatter) CacheLen() int {
	if f.cache == nil {
		return 0
	}
	return f.cache.Len()
}
