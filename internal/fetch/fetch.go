// Package fetch acquires the raw CC-CEDICT source text.
package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultURL is the MDBG CC-CEDICT export.
const DefaultURL = "https://www.mdbg.net/chinese/export/cedict/cedict_1_0_ts_utf-8_mdbg.txt.gz"

// Source supplies the complete raw dictionary text. An acquisition failure
// is the only error the lexicon core propagates to callers; it is not
// retried here.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPSource downloads the dictionary over HTTP(S).
type HTTPSource struct {
	URL        string
	httpClient *http.Client
}

// NewHTTPSource creates a source for the given URL, falling back to
// DefaultURL when url is empty.
func NewHTTPSource(url string) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPSource{
		URL: url,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Fetch downloads and, if necessary, decompresses the dictionary source.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading dictionary: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	text, err := maybeGunzip(body)
	if err != nil {
		return "", fmt.Errorf("decompressing dictionary: %w", err)
	}
	return text, nil
}

// FileSource reads the dictionary from a local file.
type FileSource struct {
	Path string
}

// Fetch reads and, if necessary, decompresses the dictionary file.
func (s *FileSource) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading dictionary file: %w", err)
	}

	text, err := maybeGunzip(data)
	if err != nil {
		return "", fmt.Errorf("decompressing dictionary file: %w", err)
	}
	return text, nil
}

// maybeGunzip decompresses data when it carries the gzip magic bytes.
// CC-CEDICT is distributed both as plain UTF-8 text and gzipped.
func maybeGunzip(data []byte) (string, error) {
	if len(data) < 2 || data[0] != 0x1f || data[1] != 0x8b {
		return string(data), nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
