package offline

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOK(body string) Entry {
	return Entry{Status: http.StatusOK, ContentType: "application/json", Body: []byte(body)}
}

func TestActivateDeletesStaleBuckets(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put("jug-jiggasha-v1.0.0", "/a", entryOK("old")))
	require.NoError(t, store.Put("jug-jiggasha-v1.0.0-api", "/b", entryOK("old")))
	require.NoError(t, store.Put("jug-jiggasha-v2.0.0", "/a", entryOK("new")))

	engine := NewEngine(store, "jug-jiggasha-v2.0.0")
	engine.Install()
	assert.Equal(t, StateWaiting, engine.State())

	require.NoError(t, engine.Activate())
	assert.Equal(t, StateActivated, engine.State())

	buckets, err := store.Buckets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"jug-jiggasha-v2.0.0"}, buckets)
}

func TestSkipWaitingActivatesImmediately(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")
	engine.Install()

	require.NoError(t, engine.SkipWaiting())
	assert.Equal(t, StateActivated, engine.State())
}

func TestFetchAPINetworkFirstStoresResponse(t *testing.T) {
	store := NewMemoryStore()
	engine := NewEngine(store, "v1")

	result, err := engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return entryOK(`["q1"]`), nil
	})
	require.NoError(t, err)
	assert.False(t, result.FromCache)

	cached, ok, err := store.Get("v1-api", "questions")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["q1"]`), cached.Body)
}

func TestFetchAPIFallsBackToLastCachedResponse(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")

	// Two successful fetches; the second one must win the fallback.
	_, err := engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return entryOK(`["old"]`), nil
	})
	require.NoError(t, err)
	_, err = engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return entryOK(`["new"]`), nil
	})
	require.NoError(t, err)

	result, err := engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return Entry{}, errors.New("network down")
	})
	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Equal(t, []byte(`["new"]`), result.Entry.Body)
}

func TestFetchAPIMissWhenNeverCached(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")

	netErr := errors.New("network down")
	_, err := engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return Entry{}, netErr
	})
	assert.ErrorIs(t, err, netErr)
}

func TestFetchAPIDoesNotCacheNon200(t *testing.T) {
	store := NewMemoryStore()
	engine := NewEngine(store, "v1")

	result, err := engine.FetchAPI(context.Background(), "questions", func(ctx context.Context) (Entry, error) {
		return Entry{Status: http.StatusNotFound}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Entry.Status)

	_, ok, err := store.Get("v1-api", "questions")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFetchAssetCacheFirst(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")

	fetches := 0
	fetch := func(ctx context.Context) (Entry, error) {
		fetches++
		return entryOK("body"), nil
	}

	first := engine.FetchAsset(context.Background(), "/app.js", false, fetch)
	assert.False(t, first.FromCache)

	second := engine.FetchAsset(context.Background(), "/app.js", false, fetch)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Entry.Body, second.Entry.Body)
	assert.Equal(t, 1, fetches)
}

func TestFetchAssetOfflineFallbackForNavigation(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")
	require.NoError(t, engine.Precache(OfflineFallbackKey, Entry{
		Status:      http.StatusOK,
		ContentType: "text/html",
		Body:        []byte("<html>offline</html>"),
	}))

	result := engine.FetchAsset(context.Background(), "/somewhere", true, func(ctx context.Context) (Entry, error) {
		return Entry{}, errors.New("network down")
	})

	assert.True(t, result.FromCache)
	assert.Equal(t, []byte("<html>offline</html>"), result.Entry.Body)
}

func TestFetchAssetSynthetic408ForNonNavigation(t *testing.T) {
	engine := NewEngine(NewMemoryStore(), "v1")

	result := engine.FetchAsset(context.Background(), "/data.bin", false, func(ctx context.Context) (Entry, error) {
		return Entry{}, errors.New("network down")
	})

	assert.Equal(t, http.StatusRequestTimeout, result.Entry.Status)
	assert.Equal(t, []byte("Network error happened"), result.Entry.Body)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "installing", StateInstalling.String())
	assert.Equal(t, "activated", StateActivated.String())
}
