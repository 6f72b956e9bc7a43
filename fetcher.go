package novelgrab

import "context"

// FetchResult holds the raw response of a successful fetch.
// Body is undecoded; encoding detection happens downstream.
type FetchResult struct {
	Body       []byte
	Headers    map[string]string
	FinalURL   string
	StatusCode int
}

// Fetcher retrieves raw bytes from URLs.
// Implementations handle retries, backoff, and politeness delays; a
// returned FetchResult always has a status code in [200, 400).
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the raw response.
	// The context bounds the whole attempt budget including backoff.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}
