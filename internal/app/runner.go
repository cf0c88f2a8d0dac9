// Package app wires the extraction pipeline together: logging, the
// parallel page runner and the record sinks it feeds.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// Page is one unit of work: a page title plus its parsed tree.
type Page struct {
	Title string         `json:"title"`
	Root  *wikinode.Node `json:"tree"`
}

// Sink receives the records of one page. The runner serializes calls,
// so implementations need no locking of their own.
type Sink func(ctx context.Context, recs []domain.Record) error

// Runner processes a stream of pages with a pool of workers. Pages are
// independent; each worker owns one Extractor and one diagnostic
// Collector, and the collectors are merged only after every worker has
// stopped.
type Runner struct {
	langs   *lookup.Languages
	render  wikinode.Renderer
	opts    extract.Options
	workers int
	log     *slog.Logger
}

// NewRunner creates a Runner. render may be nil for the plain text
// renderer; workers below 1 is an error at Run time, not here.
func NewRunner(langs *lookup.Languages, render wikinode.Renderer, opts extract.Options, workers int, logger *slog.Logger) *Runner {
	return &Runner{
		langs:   langs,
		render:  render,
		opts:    opts,
		workers: workers,
		log:     logger,
	}
}

// Run drains pages, feeding every page's records to sink, and returns
// the merged diagnostics. The first sink or context error cancels the
// remaining workers.
func (r *Runner) Run(ctx context.Context, pages <-chan Page, sink Sink) (*diag.Collector, error) {
	if r.workers < 1 {
		return nil, fmt.Errorf("runner: workers must be >= 1 (got %d)", r.workers)
	}

	g, ctx := errgroup.WithContext(ctx)
	collectors := make([]*diag.Collector, r.workers)
	var sinkMu sync.Mutex

	for i := 0; i < r.workers; i++ {
		dc := diag.New(r.log)
		collectors[i] = dc
		ex := extract.New(r.langs, r.render, dc, r.opts)
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case page, ok := <-pages:
					if !ok {
						return nil
					}
					recs := ex.ExtractPage(page.Title, page.Root)
					if len(recs) == 0 {
						continue
					}
					sinkMu.Lock()
					err := sink(ctx, recs)
					sinkMu.Unlock()
					if err != nil {
						return fmt.Errorf("sink page %q: %w", page.Title, err)
					}
				}
			}
		})
	}

	err := g.Wait()

	merged := diag.New(nil)
	for _, dc := range collectors {
		merged.Merge(dc)
	}
	if err != nil {
		return merged, fmt.Errorf("runner: %w", err)
	}
	return merged, nil
}
