package net

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "dockbox/1.0 (compatible; Go)"

// maxBodySize caps how much of a response Fetch will read.
var maxBodySize int64 = 16 << 20

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Fetch GETs rawURL and returns the body and its Content-Type. ctx bounds the
// request and the body read.
func Fetch(ctx context.Context, rawURL string) (body []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/*, image/*, */*;q=0.5")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}
	if resp.ContentLength > maxBodySize {
		return nil, "", fmt.Errorf("%s: body of %d bytes exceeds %d", rawURL, resp.ContentLength, maxBodySize)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if int64(len(body)) > maxBodySize {
		return nil, "", fmt.Errorf("%s: body exceeds %d bytes", rawURL, maxBodySize)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// ResolveURL resolves ref against base. ref is returned unchanged when either
// fails to parse.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// IsNetworkURL reports whether s is an absolute http or https URL.
func IsNetworkURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
