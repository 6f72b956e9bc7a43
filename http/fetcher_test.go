package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/novelgrab/novelgrab"
	grabhttp "github.com/novelgrab/novelgrab/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelay disables the politeness delay and backoff waiting for tests.
func noDelay() []grabhttp.Option {
	return []grabhttp.Option{
		grabhttp.WithPreRequestDelay(0, 0),
		grabhttp.WithSleep(func(ctx context.Context, d time.Duration) error { return nil }),
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body, headers and status from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("<html><body>Hello World</body></html>"), result.Body)
		assert.Equal(t, "text/html; charset=utf-8", result.Headers["Content-Type"])
		assert.Equal(t, server.URL, result.FinalURL)
		assert.Equal(t, http.StatusOK, result.StatusCode)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var userAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, userAgent, "Mozilla/5.0")
	})

	t.Run("403 fails immediately without retry", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, novelgrab.EFORBIDDEN, novelgrab.ErrorCode(err))
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("404 fails immediately without retry", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, novelgrab.ENOTFOUND, novelgrab.ErrorCode(err))
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("500 retries the full budget then surfaces unavailable", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		var delays []time.Duration
		fetcher := grabhttp.NewFetcher(
			grabhttp.WithMaxAttempts(3),
			grabhttp.WithBackoff(10*time.Millisecond, 0),
			grabhttp.WithPreRequestDelay(0, 0),
			grabhttp.WithSleep(func(ctx context.Context, d time.Duration) error {
				delays = append(delays, d)
				return nil
			}),
		)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, novelgrab.EUNAVAILABLE, novelgrab.ErrorCode(err))
		assert.Equal(t, int32(3), requests.Load())

		// Two inter-attempt delays, strictly increasing.
		require.Len(t, delays, 2)
		assert.Less(t, delays[0], delays[1])
	})

	t.Run("recovers when a transient failure clears", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte("recovered"))
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []byte("recovered"), result.Body)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("network failure surfaces timeout code", func(t *testing.T) {
		t.Parallel()

		fetcher := grabhttp.NewFetcher(append(noDelay(),
			grabhttp.WithTimeout(100*time.Millisecond),
			grabhttp.WithMaxAttempts(2),
		)...)

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, novelgrab.ETIMEOUT, novelgrab.ErrorCode(err))
	})

	t.Run("follows redirects and reports the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/final", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("landed"))
		})

		fetcher := grabhttp.NewFetcher(noDelay()...)

		result, err := fetcher.Fetch(context.Background(), server.URL+"/start")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/final", result.FinalURL)
		assert.Equal(t, []byte("landed"), result.Body)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := grabhttp.NewFetcher(noDelay()...)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

// One Fetcher is shared by parallel scrapes, so the jittered delay
// paths must be safe to hit from many goroutines at once. Run with
// -race to catch regressions.
func TestFetcher_ConcurrentFetches(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("chapter body"))
	})
	mux.HandleFunc("/flaky", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	fetcher := grabhttp.NewFetcher(
		grabhttp.WithMaxAttempts(2),
		grabhttp.WithPreRequestDelay(time.Millisecond, 2*time.Millisecond),
		grabhttp.WithBackoff(time.Millisecond, time.Millisecond),
		grabhttp.WithSleep(func(ctx context.Context, d time.Duration) error { return nil }),
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				result, err := fetcher.Fetch(context.Background(), server.URL+"/ok")
				assert.NoError(t, err)
				if err == nil {
					assert.Equal(t, []byte("chapter body"), result.Body)
				}
				return
			}
			_, err := fetcher.Fetch(context.Background(), server.URL+"/flaky")
			assert.Equal(t, novelgrab.EUNAVAILABLE, novelgrab.ErrorCode(err))
		}()
	}
	wg.Wait()
}
