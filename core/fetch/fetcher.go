// Package fetch implements the Fetcher interface.
// Sources are local files, stdin ("-") or http(s) URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/tablepipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "tablepipe/1.0 (https://github.com/gaurav-prasanna/tablepipe)"

	// Stdin is the source name that reads standard input.
	Stdin = "-"
)

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// For returns the fetcher that handles source. stdin backs the "-" source.
func For(source string, stdin io.Reader) core.Fetcher {
	if IsURL(source) {
		return New()
	}
	return NewFileFetcher(stdin)
}

// HTTPFetcher fetches pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/plain,text/html;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:      url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}

// FileFetcher reads a local file, or stdin for the "-" source.
type FileFetcher struct {
	stdin io.Reader
}

// NewFileFetcher creates a FileFetcher that reads "-" from stdin.
func NewFileFetcher(stdin io.Reader) *FileFetcher {
	return &FileFetcher{stdin: stdin}
}

// Fetch reads the whole source.
func (f *FileFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if source == "" || source == Stdin {
		source = Stdin
		data, err = io.ReadAll(f.stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	return &core.FetchResult{
		Source:      source,
		ContentType: "text/plain",
		Body:        string(data),
	}, nil
}

// IsHTML reports whether the fetched body is an HTML page.
func IsHTML(result *core.FetchResult) bool {
	return strings.Contains(strings.ToLower(result.ContentType), "text/html")
}
