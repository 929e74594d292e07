package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/paygap/internal/fetcher"
)

const fixturePath = "testdata/irish-pay-gap.csv"

func readFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	return data
}

// serveFixture serves body as a CSV download.
func serveFixture(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write(body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	l := NewLoader(fetcher.FileFetcher{}, LoaderOptions{Source: fixturePath})
	ds, err := l.Load(context.Background())
	require.NoError(t, err)
	return ds
}
