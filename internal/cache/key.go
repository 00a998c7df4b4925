package cache

import (
	"fmt"

	"github.com/abhineethp/repostats/internal/contrib"
)

// Kind identifies which aggregate a cache entry holds.
type Kind string

const (
	// KindContributors caches unique-contributor lists.
	KindContributors Kind = "users"
	// KindTopContributors caches ranked commit-count lists.
	KindTopContributors Kind = "most-frequent"
)

// Key derives the cache key for one aggregate over one window.
// Format: "<kind>:<since>:<until>". The dates are rendered in canonical
// calendar form, which cannot contain the delimiter, so distinct
// (kind, since, until) triples always map to distinct keys.
func Key(kind Kind, w contrib.DateWindow) string {
	return fmt.Sprintf("%s:%s:%s", kind, w.SinceString(), w.UntilString())
}
