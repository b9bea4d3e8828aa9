// Package offline implements the gateway's cache engine: versioned response
// buckets with a network-first strategy for API reads and a cache-first
// strategy for shell assets, so the app keeps serving last-known-good data
// when the upstream API is unreachable.
package offline

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State is the engine's lifecycle phase, following the service-worker model.
type State int

const (
	StateInstalling State = iota
	StateWaiting
	StateActivating
	StateActivated
)

func (s State) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActivating:
		return "activating"
	case StateActivated:
		return "activated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// FetchFunc performs the actual network (or origin) read for a request.
type FetchFunc func(ctx context.Context) (Entry, error)

// Result is what the engine hands back to the caller.
type Result struct {
	Entry     Entry
	FromCache bool
}

// Engine coordinates the cache buckets. Bucket names embed the version tag;
// Activate drops every bucket from a previous version.
type Engine struct {
	store       BucketStore
	assetBucket string
	apiBucket   string

	mu    sync.Mutex
	state State
}

// NewEngine creates an engine for the given version tag. The engine starts
// in the installing state; call Install then Activate (or SkipWaiting) to
// bring it into service.
func NewEngine(store BucketStore, version string) *Engine {
	return &Engine{
		store:       store,
		assetBucket: version,
		apiBucket:   version + "-api",
		state:       StateInstalling,
	}
}

// State reports the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Install completes the install phase, leaving the engine waiting.
func (e *Engine) Install() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateInstalling {
		e.state = StateWaiting
	}
	log.Info().Str("bucket", e.assetBucket).Msg("Cache engine installed")
}

// SkipWaiting activates immediately, bypassing the waiting phase.
func (e *Engine) SkipWaiting() error {
	return e.Activate()
}

// Activate deletes every bucket that does not belong to the current version
// and marks the engine active.
func (e *Engine) Activate() error {
	e.mu.Lock()
	e.state = StateActivating
	e.mu.Unlock()

	buckets, err := e.store.Buckets()
	if err != nil {
		return fmt.Errorf("enumerating cache buckets: %w", err)
	}

	for _, name := range buckets {
		if name == e.assetBucket || name == e.apiBucket {
			continue
		}
		log.Info().Str("bucket", name).Msg("Deleting old cache bucket")
		if err := e.store.DeleteBucket(name); err != nil {
			// A leftover stale bucket costs disk, not correctness.
			log.Error().Err(err).Str("bucket", name).Msg("Failed to delete old cache bucket")
		}
	}

	e.mu.Lock()
	e.state = StateActivated
	e.mu.Unlock()
	log.Info().Str("bucket", e.assetBucket).Msg("Cache engine activated")
	return nil
}

// Precache stores an entry in the asset bucket ahead of any request,
// used for the offline fallback document.
func (e *Engine) Precache(key string, entry Entry) error {
	return e.store.Put(e.assetBucket, key, entry)
}

// FetchAPI serves an API read network-first: the fetch result is stored and
// returned on success; on failure the most recently stored response for the
// exact same key is served instead. The fetch error is returned only when
// nothing is cached.
func (e *Engine) FetchAPI(ctx context.Context, key string, fetch FetchFunc) (Result, error) {
	entry, err := fetch(ctx)
	if err == nil && entry.Status == http.StatusOK {
		stored := entry
		stored.StoredAt = time.Now()
		if putErr := e.store.Put(e.apiBucket, key, stored); putErr != nil {
			log.Error().Err(putErr).Str("key", key).Msg("Failed to cache API response")
		}
		return Result{Entry: entry}, nil
	}
	if err == nil {
		// Non-200 responses pass through uncached.
		return Result{Entry: entry}, nil
	}

	cached, ok, getErr := e.store.Get(e.apiBucket, key)
	if getErr != nil {
		log.Error().Err(getErr).Str("key", key).Msg("Cache lookup failed")
	}
	if ok {
		log.Warn().Err(err).Str("key", key).Msg("Network failed, serving cached API response")
		return Result{Entry: cached, FromCache: true}, nil
	}
	return Result{}, err
}

// FetchAsset serves a shell asset cache-first: a stored copy wins, otherwise
// the origin is consulted and successful 200 responses are kept. When the
// origin also fails, navigation requests get the offline fallback document
// and anything else a synthetic 408.
func (e *Engine) FetchAsset(ctx context.Context, key string, navigation bool, fetch FetchFunc) Result {
	cached, ok, err := e.store.Get(e.assetBucket, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Cache lookup failed")
	}
	if ok {
		return Result{Entry: cached, FromCache: true}
	}

	entry, err := fetch(ctx)
	if err == nil {
		if entry.Status == http.StatusOK {
			stored := entry
			stored.StoredAt = time.Now()
			if putErr := e.store.Put(e.assetBucket, key, stored); putErr != nil {
				log.Error().Err(putErr).Str("key", key).Msg("Failed to cache asset")
			}
		}
		return Result{Entry: entry}
	}

	if navigation {
		fallback, ok, _ := e.store.Get(e.assetBucket, OfflineFallbackKey)
		if ok {
			return Result{Entry: fallback, FromCache: true}
		}
	}
	return Result{Entry: Entry{
		Status:      http.StatusRequestTimeout,
		ContentType: "text/plain",
		Body:        []byte("Network error happened"),
	}}
}

// OfflineFallbackKey is the precached document served to navigations when
// both cache and origin fail.
const OfflineFallbackKey = "/offline.html"
