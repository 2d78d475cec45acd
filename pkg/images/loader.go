package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageFetcher retrieves raw image bytes for a source that is not a data URI,
// typically over the network or relative to a document's location.
type ImageFetcher func(uri string) ([]byte, error)

// ImageCache caches decoded images by source.
type ImageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

var globalCache = &ImageCache{
	cache: make(map[string]image.Image),
}

func (c *ImageCache) get(key string) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.cache[key]
	return img, ok
}

func (c *ImageCache) put(key string, img image.Image) {
	c.mu.Lock()
	c.cache[key] = img
	c.mu.Unlock()
}

// IsDataURI reports whether s is a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// LoadImageFromDataURI decodes an image embedded in a data URI.
// Both base64 and percent-encoded payloads are accepted.
func LoadImageFromDataURI(uri string) (image.Image, error) {
	if !IsDataURI(uri) {
		return nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("data URI has no payload")
	}
	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding base64 payload: %w", err)
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding payload: %w", err)
		}
		data = []byte(s)
	}
	return DecodeImage(data)
}

// DecodeImage decodes PNG, JPEG, GIF, BMP or WebP bytes.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// LoadImage loads an image from a data URI or the filesystem.
func LoadImage(src string) (image.Image, error) {
	return LoadImageWithFetcher(src, nil)
}

// LoadImageWithFetcher loads src from a data URI or, when fetcher is nil,
// from the filesystem. Every other source goes through fetcher.
// Results are cached by src.
func LoadImageWithFetcher(src string, fetcher ImageFetcher) (image.Image, error) {
	if img, ok := globalCache.get(src); ok {
		return img, nil
	}

	var (
		img image.Image
		err error
	)
	switch {
	case IsDataURI(src):
		img, err = LoadImageFromDataURI(src)
	case fetcher != nil:
		var data []byte
		data, err = fetcher(src)
		if err == nil {
			img, err = DecodeImage(data)
		}
	default:
		img, err = loadFile(src)
	}
	if err != nil {
		return nil, err
	}

	globalCache.put(src, img)
	return img, nil
}

func loadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(src string) (width, height int, err error) {
	img, err := LoadImage(src)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
