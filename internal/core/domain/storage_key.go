package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// StorageKey returns a deterministic directory name for a repository URL.
// URLs differing only by a trailing slash or ".git" suffix share a key.
func StorageKey(repoURL string) string {
	normalized := strings.TrimSuffix(strings.TrimRight(strings.TrimSpace(repoURL), "/"), ".git")
	return fmt.Sprintf("%016x", xxhash.Sum64String(normalized))
}
