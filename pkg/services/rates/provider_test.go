package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPProvider_FetchesAndCaches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"base":"EUR","rates":{"USD":1.12}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())

	assert.Equal(t, 1.12, p.EURToUSD(context.Background()))
	assert.Equal(t, 1.12, p.EURToUSD(context.Background()))
	assert.Equal(t, int32(1), calls.Load(), "second call served from cache")
}

func TestHTTPProvider_CacheExpiresAfterTTL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"rates":{"USD":1.12}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())
	clock := time.Now()
	p.now = func() time.Time { return clock }

	p.EURToUSD(context.Background())
	clock = clock.Add(25 * time.Hour)
	p.EURToUSD(context.Background())

	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPProvider_FallbackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())

	assert.Equal(t, FallbackEURToUSD, p.EURToUSD(context.Background()))
}

func TestHTTPProvider_FallbackOnMissingUSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"GBP":0.85}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())

	assert.Equal(t, FallbackEURToUSD, p.EURToUSD(context.Background()))
}

func TestHTTPProvider_FailureDoesNotPoisonCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"rates":{"USD":1.09}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, srv.Client())

	assert.Equal(t, FallbackEURToUSD, p.EURToUSD(context.Background()))
	assert.Equal(t, 1.09, p.EURToUSD(context.Background()), "retry succeeds after a failed fetch")
}

func TestStatic(t *testing.T) {
	assert.Equal(t, 1.5, Static(1.5).EURToUSD(context.Background()))
}
