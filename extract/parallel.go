package extract

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/voxpdf/model"
)

// Parallel extracts the requested 0-indexed pages concurrently and returns
// their results in request order.
//
// Pages are split into contiguous chunks of max(1, len(pages)/workers).
// Each chunk runs on its own goroutine with its own Document, opened at
// chunk start and closed at chunk end; at most workers chunks run at once.
// The first failure cancels the remaining chunks and is returned without
// partial results. Opening a document per chunk only pays off for large
// page counts; for a handful of pages ExtractPage on one Document is
// cheaper.
func Parallel(ctx context.Context, open Opener, path string, pages []int, opts ...Option) ([]model.PageResult, error) {
	cfg := newConfig(opts)
	if len(pages) == 0 {
		return []model.PageResult{}, nil
	}

	chunks := chunkPages(pages, max(1, len(pages)/cfg.workers))
	results := make([][]model.PageResult, len(chunks))
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			res, err := extractChunk(ctx, open, path, chunk, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		cfg.logger.Warn().Str("path", path).Err(err).Msg("parallel extraction failed")
		return nil, err
	}

	out := make([]model.PageResult, 0, len(pages))
	for _, res := range results {
		out = append(out, res...)
	}

	cfg.logger.Debug().Str("path", path).Int("pages", len(pages)).Int("chunks", len(chunks)).
		Dur("elapsed", time.Since(start)).Msg("parallel extraction complete")

	return out, nil
}

// extractChunk processes one chunk sequentially. The document is opened
// only if some page is not cached.
func extractChunk(ctx context.Context, open Opener, path string, pages []int, cfg *config) ([]model.PageResult, error) {
	out := make([]model.PageResult, len(pages))
	var missing []int

	for i, page := range pages {
		if result, ok := cfg.cached(path, page); ok {
			out[i] = result
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		return out, nil
	}

	doc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	for _, i := range missing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := extractPage(doc, pages[i], cfg)
		if err != nil {
			return nil, err
		}
		cfg.store(path, result)
		out[i] = result
	}

	return out, nil
}

func chunkPages(pages []int, size int) [][]int {
	var chunks [][]int
	for size < len(pages) {
		pages, chunks = pages[size:], append(chunks, pages[:size:size])
	}
	return append(chunks, pages)
}
