package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dockbox/pkg/visualtest"
)

// Regenerates the golden images used by the visual regression tests.
func main() {
	dir := flag.String("dir", "pkg/visualtest/testdata/golden", "directory of .dock files")
	width := flag.Int("w", 320, "image width in pixels")
	height := flag.Int("h", 200, "image height in pixels")
	dpi := flag.Float64("dpi", visualtest.DefaultDPI, "display resolution")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Reference Image Generator for dockbox")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  go run ./cmd/update-references [flags] [name...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Or use the test-based approach:")
		fmt.Fprintln(os.Stderr, "  UPDATE_REFS=1 go test ./pkg/visualtest -run TestGolden")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*dir, "*.dock"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		files = selectNames(files, flag.Args())
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No .dock files to render in %s\n", *dir)
		os.Exit(1)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".dock")
		ref := filepath.Join(*dir, "reference", name+".png")
		if err := visualtest.UpdateReferenceImage(file, ref, *width, *height, *dpi); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to generate %s: %v\n", ref, err)
			os.Exit(1)
		}
	}
	fmt.Printf("Generated %d reference images\n", len(files))
}

// selectNames keeps the files whose base name, without extension, is listed.
func selectNames(files, names []string) []string {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.TrimSuffix(n, ".dock")] = true
	}
	var out []string
	for _, f := range files {
		if want[strings.TrimSuffix(filepath.Base(f), ".dock")] {
			out = append(out, f)
		}
	}
	return out
}
