package fetcher

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// FileFetcher reads local files addressed by path or file:// URL.
type FileFetcher struct{}

// localPath resolves a path or file:// URL to a filesystem path.
func localPath(raw string) (string, error) {
	if !strings.HasPrefix(raw, "file:") {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", eris.Wrap(err, "parse file url")
	}
	if u.Path == "" {
		return "", eris.New("empty path in file url")
	}
	return u.Path, nil
}

// Download opens the file for reading.
func (FileFetcher) Download(ctx context.Context, raw string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "file: context cancelled")
	}
	path, err := localPath(raw)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "file: open")
	}
	return f, nil
}

// DownloadToFile copies the file to path.
func (ff FileFetcher) DownloadToFile(ctx context.Context, raw string, path string) (int64, error) {
	rc, err := ff.Download(ctx, raw)
	if err != nil {
		return 0, err
	}
	defer rc.Close() //nolint:errcheck

	return writeFile(rc, path)
}

func writeFile(r io.Reader, path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, eris.Wrap(err, "create file")
	}
	defer file.Close() //nolint:errcheck

	n, err := io.Copy(file, r)
	if err != nil {
		return n, eris.Wrap(err, "write file")
	}

	return n, nil
}
