package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_fetcher/internal/domain"
	"content_fetcher/internal/media"
	"content_fetcher/internal/source/notion"
)

// ContentSource is the external content service: collection queries,
// single-record retrieval, and content-block fetches.
type ContentSource interface {
	QueryDatabase(ctx context.Context, databaseID string, q notion.Query) ([]notion.Page, error)
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
	PageBlocks(ctx context.Context, pageID string) ([]notion.Block, error)
}

// MediaLocalizer rewrites remote image references to local copies.
type MediaLocalizer interface {
	Localize(ctx context.Context, markup, prefix string) media.Result
	LocalizeHero(ctx context.Context, remoteURL, slug string) (string, error)
	Remove(filename string) error
}

// ImageManifest tracks downloaded files across runs for orphan pruning.
type ImageManifest interface {
	BeginRun(ctx context.Context) error
	Orphans(ctx context.Context) ([]string, error)
	Forget(ctx context.Context, filename string) error
}

// ArtifactWriter persists everything one run produces.
type ArtifactWriter interface {
	Write(ctx context.Context, bundle *domain.Bundle) error
}

// Publisher announces a completed run.
type Publisher interface {
	Publish(ctx context.Context, meta domain.Metadata, problems int) error
	Close() error
}
