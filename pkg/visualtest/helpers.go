package visualtest

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"dockbox/pkg/resource"
	"dockbox/pkg/script"
)

// DefaultDPI is the resolution reference images are rendered at.
const DefaultDPI = 72.0

// RenderMarkup renders markup into a width x height image. Relative image
// sources resolve against baseDir; scripts run with console output discarded.
func RenderMarkup(content string, width, height int, dpi float64, baseDir string) (*image.RGBA, error) {
	_, img, err := RenderPage(content, width, height, dpi, baseDir)
	return img, err
}

// RenderPage is RenderMarkup that also returns the laid-out page.
func RenderPage(content string, width, height int, dpi float64, baseDir string) (*resource.Page, *image.RGBA, error) {
	var fetcher resource.Fetcher
	if baseDir != "" {
		fetcher = resource.FileFetcher{Dir: baseDir}
	}
	renderer := resource.NewDockRenderer(fetcher)
	engine := script.New()
	engine.Stdout, engine.Stderr = io.Discard, io.Discard
	renderer.SetScriptEngine(engine)

	page, err := renderer.Load(content, width, height, dpi)
	if err != nil {
		return nil, nil, err
	}
	target := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer.Paint(page, target, dpi)
	return page, target, nil
}

// RenderMarkupToFile renders markup content to a PNG file
func RenderMarkupToFile(content, outputPath string, width, height int, dpi float64, baseDir string) error {
	img, err := RenderMarkup(content, width, height, dpi, baseDir)
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	return nil
}

// RenderMarkupFile renders a markup file to a PNG file. Images resolve
// relative to the markup file.
func RenderMarkupFile(markupPath, outputPath string, width, height int, dpi float64) error {
	content, err := os.ReadFile(markupPath)
	if err != nil {
		return fmt.Errorf("failed to read markup file: %w", err)
	}
	return RenderMarkupToFile(string(content), outputPath, width, height, dpi, filepath.Dir(markupPath))
}

// UpdateReferenceImage generates a new reference image
// Use this when you've intentionally changed rendering behavior
func UpdateReferenceImage(markupPath, referencePath string, width, height int, dpi float64) error {
	fmt.Printf("Updating reference image: %s\n", referencePath)
	return RenderMarkupFile(markupPath, referencePath, width, height, dpi)
}
