package resource

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"dockbox/pkg/images"
	stdnet "dockbox/std/net"
)

// Fetcher retrieves resources by URI.
type Fetcher interface {
	Fetch(uri string) (body []byte, contentType string, err error)
}

// DefaultFetcher fetches resources over HTTP/HTTPS, resolving relative URIs
// against a base URL.
type DefaultFetcher struct {
	baseURL string
	ctx     context.Context
}

// NewFetcher creates a DefaultFetcher with the given base URL.
// Relative URIs passed to Fetch will be resolved against this base.
func NewFetcher(baseURL string) *DefaultFetcher {
	return &DefaultFetcher{baseURL: baseURL, ctx: context.Background()}
}

// WithContext returns a copy of f whose requests are bound to ctx.
func (f *DefaultFetcher) WithContext(ctx context.Context) *DefaultFetcher {
	c := *f
	c.ctx = ctx
	return &c
}

// Fetch retrieves the resource at the given URI.
// Relative URIs are resolved against the fetcher's base URL.
func (f *DefaultFetcher) Fetch(uri string) ([]byte, string, error) {
	resolved := uri
	if !stdnet.IsNetworkURL(uri) && f.baseURL != "" {
		resolved = stdnet.ResolveURL(f.baseURL, uri)
	}
	if !stdnet.IsNetworkURL(resolved) {
		return nil, "", fmt.Errorf("cannot fetch non-network URI: %s", resolved)
	}
	ctx := f.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return stdnet.Fetch(ctx, resolved)
}

// FileFetcher reads resources from a directory.
type FileFetcher struct {
	Dir string
}

func (f FileFetcher) Fetch(uri string) ([]byte, string, error) {
	path := uri
	if !filepath.IsAbs(path) {
		path = filepath.Join(f.Dir, uri)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return body, mime.TypeByExtension(filepath.Ext(path)), nil
}

// FetchMarkup fetches a markup document and returns its text.
// Returns an error if the content type is not textual.
func FetchMarkup(f Fetcher, uri string) (string, error) {
	body, contentType, err := f.Fetch(uri)
	if err != nil {
		return "", err
	}
	ct := strings.ToLower(contentType)
	if ct != "" && !strings.HasPrefix(ct, "text/") && !strings.Contains(ct, "xml") && !strings.Contains(ct, "octet-stream") {
		return "", fmt.Errorf("unexpected content type for markup: %s", contentType)
	}
	return string(body), nil
}

// ImageFetcher adapts f for image loading.
func ImageFetcher(f Fetcher) images.ImageFetcher {
	return func(uri string) ([]byte, error) {
		body, _, err := f.Fetch(uri)
		if err != nil {
			return nil, err
		}
		return body, nil
	}
}
