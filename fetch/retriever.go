// Package fetch coordinates retrieval of documentation pages: rate-limited
// fetching with retries, host-aware content extraction, and markdown
// conversion. It turns a list of page URLs into the fetched contents that
// the prompt assembler consumes.
package fetch

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docfinder"
	"golang.org/x/sync/errgroup"
)

// Retriever fetches documentation pages and prepares their content for
// prompt assembly.
type Retriever struct {
	Fetcher docfinder.Fetcher

	// Extractor handles hosts without an entry in Extractors.
	Extractor docfinder.Extractor

	// Extractors maps a host to a specialized extractor. The FeatBit SDK
	// pages live on github.com, where the README needs its own extraction.
	Extractors map[string]docfinder.Extractor

	Converter   docfinder.Converter
	RateLimiter docfinder.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// ProgressEvent reports progress during a retrieval operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting retrieval progress.
type ProgressFunc func(event ProgressEvent)

// retrieveResult holds the outcome of processing a single URL.
type retrieveResult struct {
	position int
	url      string
	markdown string
	err      error
}

// Retrieve fetches all URLs and returns their contents as markdown, in
// input order. URLs that fail after retries are skipped and reported via
// the progress callback; an error is returned only when nothing could be
// retrieved at all.
func (r *Retriever) Retrieve(ctx context.Context, urls []string, progress ProgressFunc) ([]docfinder.FetchedContent, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	resultCh := make(chan retrieveResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				result := r.processURL(gctx, i, pageURL)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]retrieveResult, len(urls))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
				})
			}
		}
	}

	var contents []docfinder.FetchedContent
	for _, result := range results {
		if result.err != nil {
			continue
		}
		contents = append(contents, docfinder.FetchedContent{
			URL:     result.url,
			Content: result.markdown,
		})
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	// A prompt without any documentation content is useless, so surface the
	// first failure when every URL failed.
	if len(contents) == 0 {
		for _, result := range results {
			if result.err != nil {
				return nil, result.err
			}
		}
	}

	return contents, nil
}

// processURL fetches and processes a single URL.
func (r *Retriever) processURL(ctx context.Context, position int, pageURL string) retrieveResult {
	result := retrieveResult{
		position: position,
		url:      pageURL,
	}

	if r.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	// Fetch with retry
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return r.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, fetchFn, delays)
	if err != nil {
		result.err = err
		return result
	}

	// Extract content
	extracted, err := r.extractorFor(pageURL).Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	// Convert to markdown
	markdown, err := r.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.markdown = markdown
	return result
}

// extractorFor returns the extractor registered for the URL's host, or the
// default extractor.
func (r *Retriever) extractorFor(pageURL string) docfinder.Extractor {
	if len(r.Extractors) == 0 {
		return r.Extractor
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return r.Extractor
	}
	if e, ok := r.Extractors[u.Host]; ok {
		return e
	}
	return r.Extractor
}
