// Package portout declares the outbound dependencies of the resources module.
package portout

import (
	"context"

	"pathora/internal/modules/resources/domain"
)

type CatalogAPI interface {
	ListResources(ctx context.Context) ([]domain.Resource, error)
}

type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}

// FileFetcher downloads a URL into the local cache and returns the path.
// Repeat fetches of the same URL reuse the cached copy.
type FileFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type PDFReader interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error)
}
