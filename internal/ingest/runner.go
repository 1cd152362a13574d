package ingest

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"sponsor-scout/internal/config"
	"sponsor-scout/internal/database"
	"sponsor-scout/internal/repository"
)

// Runner fetches posting URLs, normalizes them and upserts the result.
// Each Ingest call is one bookkept run against the named source.
type Runner struct {
	db       database.DB
	postings repository.PostingRepository
	fetcher  *Fetcher
	workers  int
	rate     int
	logger   *log.Logger
}

func NewRunner(db database.DB, postings repository.PostingRepository, cfg config.IngestConfig, logger *log.Logger) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	return &Runner{
		db:       db,
		postings: postings,
		fetcher:  NewFetcher(cfg),
		workers:  workers,
		rate:     cfg.RatePerSec,
		logger:   logger,
	}
}

// Stats summarizes one ingest run.
type Stats struct {
	Submitted int
	Stored    int
	Failed    int
}

func (r *Runner) Ingest(ctx context.Context, sourceName, baseURL string, urls []string) (Stats, error) {
	if r == nil || r.db == nil || r.postings == nil {
		return Stats{}, fmt.Errorf("nil runner/db")
	}

	sourceID, err := ensureSource(ctx, r.db, sourceName, baseURL)
	if err != nil {
		return Stats{}, fmt.Errorf("ensure source %q: %w", sourceName, err)
	}

	runID, _ := createIngestRun(ctx, r.db, sourceID)

	stats := Stats{}
	pool := NewWorkerPool(r.workers, r.workers*2)
	if r.rate > 0 {
		pool.SetRateLimit(r.rate)
	}
	results := pool.Run(ctx)

	for _, raw := range urls {
		u := strings.TrimSpace(raw)
		if u == "" {
			continue
		}
		stats.Submitted++
		pool.Submit(func(ctx context.Context) error {
			return r.ingestOne(ctx, sourceID, runID, u)
		})
	}

	pool.Close()
	for res := range results {
		if res.Err != nil {
			stats.Failed++
			_ = logIngest(ctx, r.db, runID, "error", res.Err.Error())
			if r.logger != nil {
				r.logger.Printf("[Ingest] item failed | source=%s err=%v", sourceName, res.Err)
			}
			continue
		}
		stats.Stored++
	}

	status := "finished"
	if ctx.Err() != nil {
		status = "cancelled"
	}
	_ = finishIngestRun(context.Background(), r.db, runID, status)

	if r.logger != nil {
		r.logger.Printf("[Ingest] run done | source=%s submitted=%d stored=%d failed=%d", sourceName, stats.Submitted, stats.Stored, stats.Failed)
	}
	return stats, ctx.Err()
}

// IngestURL fetches and stores a single posting outside of a bookkept
// run. Used by the on-demand score-by-url path.
func (r *Runner) IngestURL(ctx context.Context, sourceName, rawURL string) (uuid.UUID, error) {
	if r == nil || r.db == nil || r.postings == nil {
		return uuid.Nil, fmt.Errorf("nil runner/db")
	}
	sourceID, err := ensureSource(ctx, r.db, sourceName, "")
	if err != nil {
		return uuid.Nil, err
	}
	return r.storeOne(ctx, sourceID, rawURL)
}

func (r *Runner) ingestOne(ctx context.Context, sourceID, runID uuid.UUID, rawURL string) error {
	id, err := r.storeOne(ctx, sourceID, rawURL)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", rawURL, err)
	}
	_ = logIngest(ctx, r.db, runID, "info", fmt.Sprintf("posting upserted url=%s id=%s", rawURL, id))
	return nil
}

func (r *Runner) storeOne(ctx context.Context, sourceID uuid.UUID, rawURL string) (uuid.UUID, error) {
	page, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return uuid.Nil, err
	}
	nj := Normalize(page)

	return r.postings.Upsert(ctx, repository.PostingUpsert{
		SourceID:       sourceID,
		ExternalJobID:  stableExternalIDFromURL(rawURL),
		URL:            rawURL,
		RawDescription: page.BodyText,
		Normalized:     nj,
	})
}

func stableExternalIDFromURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	h := sha1.Sum([]byte(u))
	return "urlsha1-" + hex.EncodeToString(h[:])
}
