package regressor

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"valuation-service/internal/domain"
)

const cacheCleanupInterval = 10 * time.Minute

// CachedLoader keeps loaded regressors in memory, keyed by artifact path and
// invalidated when the file's mtime changes. It trades the uncached loader's
// guaranteed freshness for latency; kept behind a config flag and off by
// default.
type CachedLoader struct {
	next  domain.ArtifactLoader
	cache *gocache.Cache
}

func NewCachedLoader(next domain.ArtifactLoader, ttl time.Duration) *CachedLoader {
	c := gocache.New(ttl, cacheCleanupInterval)
	c.OnEvicted(func(_ string, v interface{}) {
		if entry, ok := v.(*cacheEntry); ok {
			entry.evict()
		}
	})
	return &CachedLoader{next: next, cache: c}
}

// Load returns the cached regressor when the artifact on disk is unchanged,
// otherwise loads through and replaces the entry. Cached sessions are shared
// across requests, so entries are reference counted: eviction (mtime change,
// TTL, janitor) only destroys the session once the last outstanding handle
// is closed.
func (l *CachedLoader) Load(ctx context.Context, handle domain.ArtifactHandle) (domain.Regressor, error) {
	info, err := os.Stat(handle.Path)
	if err != nil {
		return nil, fmt.Errorf("stat model artifact: %w", err)
	}

	if v, found := l.cache.Get(handle.Path); found {
		entry := v.(*cacheEntry)
		if entry.modTime.Equal(info.ModTime()) {
			if r, ok := entry.acquire(); ok {
				return r, nil
			}
			// Evicted between Get and acquire; fall through to a fresh load.
		} else {
			l.cache.Delete(handle.Path)
		}
	}

	loaded, err := l.next.Load(ctx, handle)
	if err != nil {
		return nil, err
	}

	entry := &cacheEntry{regressor: loaded, modTime: info.ModTime()}
	r, _ := entry.acquire()
	l.cache.Set(handle.Path, entry, gocache.DefaultExpiration)
	return r, nil
}

// cacheEntry owns one loaded session. The session is destroyed only after
// the cache has evicted the entry and every handed-out handle has been
// closed, so a request that loaded before a hot-swap can finish on the old
// model.
type cacheEntry struct {
	regressor domain.Regressor
	modTime   time.Time

	mu      sync.Mutex
	refs    int
	evicted bool
}

func (e *cacheEntry) acquire() (domain.Regressor, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.evicted {
		return nil, false
	}
	e.refs++
	return &cacheHandle{entry: e}, true
}

func (e *cacheEntry) release() error {
	e.mu.Lock()
	e.refs--
	destroy := e.evicted && e.refs == 0
	e.mu.Unlock()

	if destroy {
		return e.regressor.Close()
	}
	return nil
}

func (e *cacheEntry) evict() {
	e.mu.Lock()
	e.evicted = true
	destroy := e.refs == 0
	e.mu.Unlock()

	if destroy {
		_ = e.regressor.Close()
	}
}

// cacheHandle is the per-request view of a cached session. Close releases
// the reference exactly once; the entry decides when the session dies.
type cacheHandle struct {
	entry *cacheEntry
	once  sync.Once
}

func (h *cacheHandle) Predict(features []float64) (float64, error) {
	return h.entry.regressor.Predict(features)
}

func (h *cacheHandle) Close() error {
	var err error
	h.once.Do(func() { err = h.entry.release() })
	return err
}
