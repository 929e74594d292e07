package fetcher

import (
	"context"
	"io"
)

// Fetcher retrieves a source by URL or local path. Implementations exist per
// transport; SchemeFetcher picks one by URL scheme.
type Fetcher interface {
	// Download opens the source for streaming. The caller closes the body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadToFile copies the source to path and returns the bytes written.
	DownloadToFile(ctx context.Context, url string, path string) (int64, error)
}
