// Command extract runs the dictionary extraction pipeline over a
// stream of parsed page trees.
//
// Input is JSON Lines on --input (or stdin): one {"title": ...,
// "tree": {...}} document per line, the tree in the node shape produced
// by the wikitext provider. Records are written as JSON lines to
// --output (or stdout), or inserted into the configured PostgreSQL
// database with --store.
//
// Flags:
//
//	--input      path to the page JSONL file ("-" for stdin)
//	--output     path for record JSONL output ("-" for stdout)
//	--store      insert records into the database instead of writing JSONL
//	--languages  comma-separated language filter, overrides config
//	--workers    worker count, overrides config
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/wiktparse/internal/adapter/postgres"
	"github.com/heartmarshall/wiktparse/internal/adapter/postgres/record"
	"github.com/heartmarshall/wiktparse/internal/app"
	"github.com/heartmarshall/wiktparse/internal/config"
	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract"
	"github.com/heartmarshall/wiktparse/internal/lookup"
)

// maxLineBytes bounds one input line; page trees for long articles run
// into megabytes.
const maxLineBytes = 64 << 20

func main() {
	inputFlag := flag.String("input", "-", `path to page JSONL input ("-" for stdin)`)
	outputFlag := flag.String("output", "-", `path for record JSONL output ("-" for stdout)`)
	storeFlag := flag.Bool("store", false, "insert records into the database instead of writing JSONL")
	languagesFlag := flag.String("languages", "", "comma-separated language filter (overrides config)")
	workersFlag := flag.Int("workers", 0, "worker count (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *languagesFlag != "" {
		cfg.Extract.Languages = config.ParseLanguages(*languagesFlag)
	}
	if *workersFlag > 0 {
		cfg.Extract.Workers = *workersFlag
	}

	if err := run(context.Background(), cfg, logger, *inputFlag, *outputFlag, *storeFlag); err != nil {
		logger.Error("extract failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, input, output string, store bool) error {
	// Cancel frees the reader goroutine when the runner stops early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	sink, closeSink, err := newSink(ctx, cfg, output, store)
	if err != nil {
		return err
	}
	defer closeSink()

	opts := extract.Options{
		CapturePronunciation: cfg.Extract.Pronunciation,
		CaptureTranslations:  cfg.Extract.Translations,
		CaptureLinkage:       cfg.Extract.Linkage,
		CaptureCompounds:     cfg.Extract.Compounds,
		Languages:            cfg.Extract.Languages,
	}
	runner := app.NewRunner(lookup.DefaultLanguages(), nil, opts, cfg.Extract.Workers, logger)

	pages := make(chan app.Page)
	readErr := make(chan error, 1)
	go func() {
		defer close(pages)
		readErr <- readPages(ctx, in, pages, logger)
	}()

	dc, err := runner.Run(ctx, pages, sink)
	if err != nil {
		return err
	}
	if err := <-readErr; err != nil {
		return err
	}

	logDiagnostics(logger, dc)
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// newSink builds the record destination: a JSONL writer or the
// database repository.
func newSink(ctx context.Context, cfg *config.Config, output string, store bool) (app.Sink, func(), error) {
	if store {
		if cfg.Database.DSN == "" {
			return nil, nil, fmt.Errorf("--store requires database.dsn to be configured")
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		repo := record.New(pool)
		sink := func(ctx context.Context, recs []domain.Record) error {
			_, err := repo.BulkInsert(ctx, recs)
			return err
		}
		return sink, pool.Close, nil
	}

	var out io.WriteCloser = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return nil, nil, fmt.Errorf("create output: %w", err)
		}
		out = f
	}
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	sink := func(_ context.Context, recs []domain.Record) error {
		for i := range recs {
			if err := enc.Encode(&recs[i]); err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
		}
		return nil
	}
	closeFn := func() {
		w.Flush()
		if out != os.Stdout {
			out.Close()
		}
	}
	return sink, closeFn, nil
}

func readPages(ctx context.Context, in io.Reader, pages chan<- app.Page, logger *slog.Logger) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 1<<20), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var page app.Page
		if err := json.Unmarshal(raw, &page); err != nil {
			// A malformed page document is skipped, not fatal.
			logger.Warn("skipping malformed page document",
				slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}
		select {
		case pages <- page:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func logDiagnostics(logger *slog.Logger, dc *diag.Collector) {
	logger.Info("extraction finished",
		slog.Int("warnings", dc.CountBySeverity(diag.SeverityWarning)),
		slog.Int("errors", dc.CountBySeverity(diag.SeverityError)),
		slog.Int("unrecognized_templates", len(dc.UnrecognizedTemplates)),
		slog.Int("unrecognized_sections", len(dc.SectionCounts)),
	)
	for name, count := range dc.UnrecognizedTemplates {
		logger.Debug("unrecognized template", slog.String("name", name), slog.Int("count", count))
	}
	for title, count := range dc.SectionCounts {
		logger.Debug("unrecognized section", slog.String("title", title), slog.Int("count", count))
	}
}
