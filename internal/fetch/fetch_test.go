package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "傢俱 家具 [jia1 ju4] /furniture/\n"

func gzipped(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleText))
	}))
	defer srv.Close()

	got, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleText, got)
}

func TestHTTPSourceFetchGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(gzipped(t, sampleText))
	}))
	defer srv.Close()

	got, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleText, got)
}

func TestHTTPSourceFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestHTTPSourceFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewHTTPSource(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewHTTPSource("").URL)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cedict_ts.u8")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0644))

	got, err := (&FileSource{Path: path}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleText, got)
}

func TestFileSourceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cedict.txt.gz")
	require.NoError(t, os.WriteFile(path, gzipped(t, sampleText), 0644))

	got, err := (&FileSource{Path: path}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleText, got)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope.u8")}).Fetch(context.Background())
	assert.Error(t, err)
}
