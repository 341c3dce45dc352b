package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		kept = append(kept, part)
	}

	return strings.Join(kept, cacheKeySeparator)
}

