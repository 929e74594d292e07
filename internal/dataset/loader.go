package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/fetcher"
	"github.com/sells-group/paygap/internal/model"
)

// DefaultSourceURL is the published disclosure CSV.
const DefaultSourceURL = "https://raw.githubusercontent.com/plotly/Figure-Friday/main/2024/week-32/irish-pay-gap.csv"

// FetchError reports that the source could not be fetched or parsed as a table.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch dataset from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// Source is a URL or local path. Default: DefaultSourceURL.
	Source string
	// Charset of a CSV source. Empty means UTF-8.
	Charset string
	// TempDir receives downloaded XLSX sources. Default: os.TempDir().
	TempDir string
}

// Loader fetches and normalizes the disclosure table.
type Loader struct {
	fetcher fetcher.Fetcher
	opts    LoaderOptions
}

// NewLoader creates a Loader reading through f.
func NewLoader(f fetcher.Fetcher, opts LoaderOptions) *Loader {
	if opts.Source == "" {
		opts.Source = DefaultSourceURL
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	return &Loader{fetcher: f, opts: opts}
}

// Source returns the configured source.
func (l *Loader) Source() string { return l.opts.Source }

// Load fetches the source and returns the normalized dataset. Any failure is
// a *FetchError.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	start := time.Now()
	log := zap.L().With(zap.String("source", l.opts.Source))
	log.Info("dataset: loading")

	var (
		header []string
		rows   []fetcher.Row
		err    error
	)
	if isXLSX(l.opts.Source) {
		header, rows, err = l.readXLSX(ctx)
	} else {
		header, rows, err = l.readCSV(ctx)
	}
	if err != nil {
		return nil, &FetchError{Source: l.opts.Source, Err: err}
	}
	if len(header) == 0 {
		return nil, &FetchError{Source: l.opts.Source, Err: eris.New("dataset: source has no header row")}
	}

	header = normalizeHeader(header)
	records := make([]model.PayGapRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(header, row.Fields, row.Line))
	}

	ds := New(records, dumpColumns(header))
	ds.source = l.opts.Source

	log.Info("dataset: loaded",
		zap.Int("records", ds.Len()),
		zap.Int("companies", len(ds.companies)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ds, nil
}

func (l *Loader) readCSV(ctx context.Context) ([]string, []fetcher.Row, error) {
	body, err := l.fetcher.Download(ctx, l.opts.Source)
	if err != nil {
		return nil, nil, eris.Wrap(err, "dataset: download")
	}
	defer body.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	headerCh := make(chan []string, 1)
	rowCh, errCh := fetcher.StreamCSV(ctx, body, fetcher.CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		Charset:   l.opts.Charset,
	})

	var (
		header []string
		rows   []fetcher.Row
	)
	for row := range rowCh {
		if header == nil {
			// The header is sent before any data row.
			header = <-headerCh
		}
		rows = append(rows, row)
	}
	for err := range errCh {
		if err != nil {
			return nil, nil, eris.Wrap(err, "dataset: parse csv")
		}
	}
	if header == nil {
		select {
		case header = <-headerCh:
		default:
		}
	}
	return header, rows, nil
}

func (l *Loader) readXLSX(ctx context.Context) ([]string, []fetcher.Row, error) {
	tmp, err := os.CreateTemp(l.opts.TempDir, "paygap-*.xlsx")
	if err != nil {
		return nil, nil, eris.Wrap(err, "dataset: create temp file")
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path) //nolint:errcheck

	if _, err := l.fetcher.DownloadToFile(ctx, l.opts.Source, path); err != nil {
		return nil, nil, eris.Wrap(err, "dataset: download")
	}

	rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	if err != nil {
		return nil, nil, eris.Wrap(err, "dataset: parse xlsx")
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0].Fields, rows[1:], nil
}

func isXLSX(source string) bool {
	if i := strings.IndexAny(source, "?#"); i >= 0 && strings.Contains(source, "://") {
		source = source[:i]
	}
	return strings.EqualFold(filepath.Ext(source), ".xlsx")
}
