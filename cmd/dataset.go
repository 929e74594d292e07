package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/config"
	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/fetcher"
)

// newFetcher builds the scheme-routing fetcher from the source config.
func newFetcher(c config.SourceConfig) fetcher.Fetcher {
	return fetcher.NewSchemeFetcher(
		fetcher.HTTPOptions{
			UserAgent:    c.UserAgent,
			Timeout:      c.Timeout(),
			MaxAttempts:  c.MaxRetries + 1,
			RetryBackoff: time.Second,
			RateLimiters: fetcher.DefaultRateLimiters(),
		},
		fetcher.FTPOptions{
			Timeout:  c.Timeout(),
			User:     c.FTPUser,
			Password: c.FTPPass,
		},
	)
}

// loadDataset fetches and normalizes the configured source. A failure is
// logged and returned; callers treat it as fatal.
func loadDataset(ctx context.Context, mode string) (*dataset.Dataset, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	loader := dataset.NewLoader(newFetcher(cfg.Source), dataset.LoaderOptions{
		Source:  cfg.Source.URL,
		Charset: cfg.Source.Charset,
		TempDir: cfg.Source.TempDir,
	})
	ds, err := loader.Load(ctx)
	if err != nil {
		zap.L().Error("dataset load failed", zap.String("source", loader.Source()), zap.Error(err))
		return nil, err
	}
	return ds, nil
}
