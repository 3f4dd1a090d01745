package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/crawlkit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher    crawlkit.Fetcher
	Store      crawlkit.ResourceStore
	Extractor  crawlkit.LinkExtractor
	Tracker    crawlkit.VisitedTracker
	Limiter    crawlkit.DomainLimiter
	Seeder     crawlkit.SeedSource
	Processors []crawlkit.Processor
	Logger     *slog.Logger
}

// FetchCmd handles the crawl operation.
type FetchCmd struct {
	URL          string
	Depth        int
	Concurrency  int
	MaxResources int
	Retries      int
}
