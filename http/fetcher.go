// Package http provides the retrying HTTP implementation of
// novelgrab.Fetcher. It issues browser-like GET requests with jittered
// politeness delays, a bounded per-attempt timeout, a redirect cap, and
// a fixed retry budget with growing backoff.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/novelgrab/novelgrab"
)

// Defaults for the fetch retry state machine.
const (
	// DefaultTimeout bounds each individual attempt.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxAttempts includes the initial attempt.
	DefaultMaxAttempts = 3

	// DefaultBackoffBase grows linearly with the attempt number.
	DefaultBackoffBase = 1 * time.Second

	// DefaultJitter is the maximum random addition to each backoff delay.
	DefaultJitter = 500 * time.Millisecond

	// DefaultRedirectMaxHops caps redirect following to avoid loops.
	DefaultRedirectMaxHops = 5
)

// browserHeaders reduce the request's bot-detection signature.
// Fiction sites routinely serve block pages to default Go user agents.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
}

// SleepFunc blocks for d or until the context is canceled.
// Injectable so tests can record delays instead of waiting them out.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ensure Fetcher implements novelgrab.Fetcher at compile time.
var _ novelgrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw bytes from URLs with retry and backoff.
// Retries within one Fetch are strictly sequential to stay polite to
// the target host; there is no speculative parallelism.
type Fetcher struct {
	client          *http.Client
	timeout         time.Duration
	maxAttempts     int
	backoffBase     time.Duration
	jitter          time.Duration
	preDelayMin     time.Duration
	preDelayMax     time.Duration
	redirectMaxHops int
	sleep           SleepFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithMaxAttempts sets the total attempt budget, including the initial
// attempt. Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		if n < 1 {
			n = 1
		}
		f.maxAttempts = n
	}
}

// WithBackoff sets the base backoff delay and jitter cap. The delay
// before retry n is base*n plus a random duration up to jitter.
func WithBackoff(base, jitter time.Duration) Option {
	return func(f *Fetcher) {
		f.backoffBase = base
		f.jitter = jitter
	}
}

// WithPreRequestDelay sets the randomized politeness delay inserted
// before the first attempt. A zero max disables the delay.
func WithPreRequestDelay(min, max time.Duration) Option {
	return func(f *Fetcher) {
		f.preDelayMin = min
		f.preDelayMax = max
	}
}

// WithRedirectMaxHops caps redirect following.
func WithRedirectMaxHops(n int) Option {
	return func(f *Fetcher) { f.redirectMaxHops = n }
}

// WithSleep replaces the sleep function used for politeness and backoff
// delays. Tests inject a recorder here.
func WithSleep(sleep SleepFunc) Option {
	return func(f *Fetcher) { f.sleep = sleep }
}

// NewFetcher creates a new retrying Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:         DefaultTimeout,
		maxAttempts:     DefaultMaxAttempts,
		backoffBase:     DefaultBackoffBase,
		jitter:          DefaultJitter,
		preDelayMin:     500 * time.Millisecond,
		preDelayMax:     1500 * time.Millisecond,
		redirectMaxHops: DefaultRedirectMaxHops,
		sleep:           defaultSleep,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.redirectMaxHops {
				return fmt.Errorf("stopped after %d redirects", f.redirectMaxHops)
			}
			return nil
		},
	}

	return f
}

// Fetch issues a GET for the URL, retrying transient failures up to the
// attempt budget. 403 and 404 are permanent and fail without retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*novelgrab.FetchResult, error) {
	if d := f.preRequestDelay(); d > 0 {
		if err := f.sleep(ctx, d); err != nil {
			return nil, err
		}
	}

	var lastErr error
	lastStatus := 0

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		result, status, err := f.tryOnce(ctx, url)
		if err == nil {
			return result, nil
		}

		// Permanent failures short-circuit the retry budget.
		switch status {
		case http.StatusForbidden:
			return nil, novelgrab.Errorf(novelgrab.EFORBIDDEN, "access forbidden by %s", url)
		case http.StatusNotFound:
			return nil, novelgrab.Errorf(novelgrab.ENOTFOUND, "page not found at %s", url)
		}

		lastErr = err
		lastStatus = status

		if attempt == f.maxAttempts {
			break
		}
		if err := f.sleep(ctx, f.backoffDelay(attempt)); err != nil {
			return nil, err
		}
	}

	if lastStatus >= 500 {
		return nil, novelgrab.Errorf(novelgrab.EUNAVAILABLE, "upstream server error (HTTP %d) after %d attempts: %v", lastStatus, f.maxAttempts, lastErr)
	}
	return nil, novelgrab.Errorf(novelgrab.ETIMEOUT, "fetch failed after %d attempts: %v", f.maxAttempts, lastErr)
}

// tryOnce performs a single attempt. The returned status is zero for
// network-level failures.
func (f *Fetcher) tryOnce(ctx context.Context, url string) (*novelgrab.FetchResult, int, error) {
	attemptCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	for name, value := range browserHeaders {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, resp.StatusCode, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &novelgrab.FetchResult{
		Body:       body,
		Headers:    headers,
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
	}, resp.StatusCode, nil
}

// preRequestDelay picks a random politeness delay within the bounds.
// It uses the package-level rand source, which is safe for concurrent
// use; a Fetcher is shared across parallel scrapes.
func (f *Fetcher) preRequestDelay() time.Duration {
	if f.preDelayMax <= 0 {
		return 0
	}
	spread := f.preDelayMax - f.preDelayMin
	if spread <= 0 {
		return f.preDelayMin
	}
	return f.preDelayMin + time.Duration(rand.Int63n(int64(spread)))
}

// backoffDelay grows with the attempt number plus jitter, so successive
// inter-attempt delays are strictly increasing.
func (f *Fetcher) backoffDelay(attempt int) time.Duration {
	d := f.backoffBase * time.Duration(attempt)
	if f.jitter > 0 {
		d += time.Duration(rand.Int63n(int64(f.jitter)))
	}
	return d
}
