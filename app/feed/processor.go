package feed

import (
	"context"
	"fmt"
	"log/slog"

	"feedgate/app/parser"
)

// Processor drives the fetch, parse, and normalize pipeline for a single
// feed URL. Each run is independent and stateless apart from the response
// cache; one blocking network call per cache miss, everything else executes
// purely in-memory.
type Processor struct {
	fetcher    *Fetcher
	normalizer *Normalizer
	cache      *Cache
}

func NewProcessor(fetcher *Fetcher, normalizer *Normalizer, cache *Cache) *Processor {
	return &Processor{
		fetcher:    fetcher,
		normalizer: normalizer,
		cache:      cache,
	}
}

func (p *Processor) Run(ctx context.Context, url string) (*FeedData, error) {
	if data, ok := p.cache.Get(url); ok {
		slog.Debug("Feed served from cache", "url", url)
		return data, nil
	}

	raw, err := p.fetcher.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	model, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	data, err := p.normalizer.Run(model)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize feed: %w", err)
	}

	p.cache.Set(url, data)

	slog.Info("Feed processed", "url", url, "title", data.Title, "items", len(data.Items))

	return data, nil
}
