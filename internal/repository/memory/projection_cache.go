package memory

import (
	"fmt"
	"slices"
	"time"

	"feature-feedback-board/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ProjectionCache memoizes list projections per store revision. Entries for old
// revisions are never read again and simply expire.
type ProjectionCache struct {
	cache *cache.Cache
}

func NewProjectionCache() *ProjectionCache {
	// Entries live for 10 minutes, expired ones are purged every 5 minutes
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &ProjectionCache{
		cache: c,
	}
}

func projectionKey(revision uint64, filter, sort fmt.Stringer) string {
	return fmt.Sprintf("%d|%s|%s", revision, filter, sort)
}

func (r *ProjectionCache) Save(revision uint64, filter, sort fmt.Stringer, features []entity.Feature) {
	r.cache.Set(projectionKey(revision, filter, sort), slices.Clone(features), cache.DefaultExpiration)
}

// Get returns a copy so callers cannot alter the memoized slice.
func (r *ProjectionCache) Get(revision uint64, filter, sort fmt.Stringer) ([]entity.Feature, bool) {
	if x, found := r.cache.Get(projectionKey(revision, filter, sort)); found {
		out := slices.Clone(x.([]entity.Feature))
		if out == nil {
			out = []entity.Feature{}
		}
		return out, true
	}
	return nil, false
}

func (r *ProjectionCache) Len() int {
	return r.cache.ItemCount()
}

func (r *ProjectionCache) Flush() {
	r.cache.Flush()
}
