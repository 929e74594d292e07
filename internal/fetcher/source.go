package fetcher

import (
	"context"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// SchemeFetcher routes a source to the fetcher for its URL scheme:
// http(s) to HTTP, ftp to FTP, and file:// or a bare path to the filesystem.
type SchemeFetcher struct {
	HTTP Fetcher
	FTP  Fetcher
	File Fetcher
}

// NewSchemeFetcher builds a SchemeFetcher from concrete fetchers.
func NewSchemeFetcher(httpOpts HTTPOptions, ftpOpts FTPOptions) *SchemeFetcher {
	return &SchemeFetcher{
		HTTP: NewHTTPFetcher(httpOpts),
		FTP:  NewFTPFetcher(ftpOpts),
		File: FileFetcher{},
	}
}

func (s *SchemeFetcher) route(rawURL string) (Fetcher, error) {
	scheme, _, found := strings.Cut(rawURL, "://")
	if !found {
		if s.File == nil {
			return nil, eris.Errorf("fetch: no file fetcher for %q", rawURL)
		}
		return s.File, nil
	}

	var f Fetcher
	switch strings.ToLower(scheme) {
	case "http", "https":
		f = s.HTTP
	case "ftp":
		f = s.FTP
	case "file":
		f = s.File
	default:
		return nil, eris.Errorf("fetch: unsupported scheme %q", scheme)
	}
	if f == nil {
		return nil, eris.Errorf("fetch: no fetcher configured for scheme %q", scheme)
	}
	return f, nil
}

// Download fetches rawURL with the fetcher for its scheme.
func (s *SchemeFetcher) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	f, err := s.route(rawURL)
	if err != nil {
		return nil, err
	}
	return f.Download(ctx, rawURL)
}

// DownloadToFile fetches rawURL into path with the fetcher for its scheme.
func (s *SchemeFetcher) DownloadToFile(ctx context.Context, rawURL string, path string) (int64, error) {
	f, err := s.route(rawURL)
	if err != nil {
		return 0, err
	}
	return f.DownloadToFile(ctx, rawURL, path)
}
