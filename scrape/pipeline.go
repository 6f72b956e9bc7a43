// Package scrape wires the retrieval and extraction pipeline: validate
// → fetch → detect encoding → decode → extract → validate content.
// Each invocation is stateless; nothing is cached or shared between
// calls, so concurrent scrapes are independent.
package scrape

import (
	"context"
	"time"

	"github.com/novelgrab/novelgrab"
)

// Ensure Pipeline implements novelgrab.Scraper at compile time.
var _ novelgrab.Scraper = (*Pipeline)(nil)

// Pipeline runs one sequential scrape per invocation.
type Pipeline struct {
	fetcher   novelgrab.Fetcher
	detector  novelgrab.EncodingDetector
	decoder   novelgrab.Decoder
	extractor novelgrab.Extractor

	validatorCfg novelgrab.ValidatorConfig
	now          func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithValidatorConfig overrides the content-validation thresholds.
func WithValidatorConfig(cfg novelgrab.ValidatorConfig) Option {
	return func(p *Pipeline) { p.validatorCfg = cfg }
}

// WithClock replaces the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(fetcher novelgrab.Fetcher, detector novelgrab.EncodingDetector, decoder novelgrab.Decoder, extractor novelgrab.Extractor, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:      fetcher,
		detector:     detector,
		decoder:      decoder,
		extractor:    extractor,
		validatorCfg: novelgrab.DefaultValidatorConfig(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Scrape retrieves and extracts one chapter. All failures are typed
// application errors; low-quality extractions are never returned as
// success.
func (p *Pipeline) Scrape(ctx context.Context, rawURL string) (*novelgrab.Chapter, *novelgrab.Meta, error) {
	chapter, meta, _, err := p.ScrapeHTML(ctx, rawURL)
	return chapter, meta, err
}

// ScrapeHTML is Scrape with the decoded page HTML as an extra return,
// for callers that need to discover links on the fetched page.
func (p *Pipeline) ScrapeHTML(ctx context.Context, rawURL string) (*novelgrab.Chapter, *novelgrab.Meta, string, error) {
	start := p.now()

	url, err := novelgrab.ValidateURL(rawURL)
	if err != nil {
		return nil, nil, "", err
	}

	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, nil, "", err
	}

	decision := p.detector.Detect(result.Headers, result.Body, result.FinalURL)
	text, err := p.decoder.Decode(result.Body, decision.Codec)
	if err != nil {
		return nil, nil, "", novelgrab.Errorf(novelgrab.EINTERNAL, "decode failed for codec %s: %v", decision.Codec, err)
	}

	extraction, err := p.extractor.Extract(text, result.FinalURL)
	if err != nil {
		return nil, nil, text, err
	}

	verdict := novelgrab.ValidateContent(extraction.Title, extraction.Content, result.FinalURL, p.validatorCfg)
	if !verdict.Valid {
		return nil, nil, text, &ValidationError{
			err:         novelgrab.Errorf(verdict.Code, "%s", verdict.Reason),
			Diagnostics: verdict.Diagnostics,
		}
	}

	chapter := &novelgrab.Chapter{
		URL:         url,
		Title:       extraction.Title,
		Content:     extraction.Content,
		WordCount:   novelgrab.WordCount(extraction.Content),
		ExtractedAt: p.now().UTC(),
	}
	meta := &novelgrab.Meta{
		Encoding:       string(decision.Codec),
		EncodingSource: string(decision.Source),
		ProcessingTime: p.now().Sub(start),
	}
	return chapter, meta, text, nil
}

// ValidationError carries the content-validation diagnostics alongside
// the application error code.
type ValidationError struct {
	err         *novelgrab.Error
	Diagnostics novelgrab.Diagnostics
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.err.Error() }

// Unwrap exposes the application error for code inspection.
func (e *ValidationError) Unwrap() error { return e.err }
