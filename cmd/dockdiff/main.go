// Command dockdiff renders two markup files and reports where their images
// differ, broken down by the boxes of the first file's layout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dockbox/pkg/inspect"
	"dockbox/pkg/visualtest"
)

type options struct {
	width, height int
	dpi           float64
	tolerance     int
	all           bool
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "w", 400, "viewport width in pixels")
	flag.IntVar(&opts.height, "h", 300, "viewport height in pixels")
	flag.Float64Var(&opts.dpi, "dpi", visualtest.DefaultDPI, "display resolution")
	flag.IntVar(&opts.tolerance, "tolerance", 5, "per-channel difference ignored")
	flag.BoolVar(&opts.all, "all", false, "list boxes without differences too")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockdiff [flags] <test.dock> <ref.dock>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	same, err := run(flag.Arg(0), flag.Arg(1), opts, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if !same {
		os.Exit(1)
	}
}

// run reports the differences and whether the images matched.
func run(testPath, refPath string, opts options, out io.Writer) (bool, error) {
	read := func(path string) (string, error) {
		content, err := os.ReadFile(path)
		return string(content), err
	}
	testContent, err := read(testPath)
	if err != nil {
		return false, fmt.Errorf("reading test: %w", err)
	}
	refContent, err := read(refPath)
	if err != nil {
		return false, fmt.Errorf("reading reference: %w", err)
	}

	page, actual, err := visualtest.RenderPage(testContent, opts.width, opts.height, opts.dpi, filepath.Dir(testPath))
	if err != nil {
		return false, fmt.Errorf("rendering test: %w", err)
	}
	_, expected, err := visualtest.RenderPage(refContent, opts.width, opts.height, opts.dpi, filepath.Dir(refPath))
	if err != nil {
		return false, fmt.Errorf("rendering reference: %w", err)
	}

	result, err := visualtest.Compare(actual, expected, visualtest.CompareOptions{Tolerance: opts.tolerance})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(out, "Image size: %dx%d\n", opts.width, opts.height)
	if result.Match {
		fmt.Fprintln(out, "Images match")
		return true, nil
	}

	pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
	fmt.Fprintf(out, "%d/%d pixels differ (%.1f%%), max channel difference %d\n",
		result.DifferentPixels, result.TotalPixels, pct, result.MaxDifference)
	fmt.Fprintf(out, "Difference bounding box: %v\n\n", result.Bounds)

	for _, d := range visualtest.DiffByNode(page.Root(), actual, expected, opts.tolerance) {
		if d.Different == 0 && !opts.all {
			continue
		}
		share := 0.0
		if d.Total > 0 {
			share = float64(d.Different) / float64(d.Total) * 100
		}
		fmt.Fprintf(out, "%s%s: %d/%d pixels differ (%.1f%%)\n",
			strings.Repeat("  ", d.Depth), inspect.Line(d.Node), d.Different, d.Total, share)
	}
	return false, nil
}
