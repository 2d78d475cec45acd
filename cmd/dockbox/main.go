// Command dockbox renders a markup file to a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"dockbox/pkg/inspect"
	"dockbox/pkg/resource"
	"dockbox/pkg/script"
	"dockbox/pkg/text"
)

type options struct {
	input  string
	output string
	width  int
	height int
	dpi    float64
	font   string
	dump   bool
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "w", 800, "viewport width in pixels")
	flag.IntVar(&opts.height, "h", 600, "viewport height in pixels")
	flag.Float64Var(&opts.dpi, "dpi", 72, "display resolution; 72 makes one point one pixel")
	flag.StringVar(&opts.output, "o", "output.png", "output PNG file path")
	flag.StringVar(&opts.font, "font", "", "TrueType file for regular label text")
	flag.BoolVar(&opts.dump, "dump", false, "print the laid-out node tree")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockbox [flags] <input.dock>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.input = flag.Arg(0)

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	if opts.width <= 0 || opts.height <= 0 || opts.dpi <= 0 {
		return fmt.Errorf("viewport %dx%d at %v dpi is empty", opts.width, opts.height, opts.dpi)
	}
	content, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	renderer := resource.NewDockRenderer(
		resource.FileFetcher{Dir: filepath.Dir(opts.input)},
		text.FontConfig{Regular: opts.font},
	)
	renderer.SetScriptEngine(script.New())

	page, err := renderer.Load(string(content), opts.width, opts.height, opts.dpi)
	if err != nil {
		return err
	}
	if opts.dump {
		if err := inspect.Dump(stdout, page.Root()); err != nil {
			return err
		}
	}

	target := image.NewRGBA(image.Rect(0, 0, opts.width, opts.height))
	renderer.Paint(page, target, opts.dpi)

	if err := savePNG(target, opts.output); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	fmt.Fprintf(stdout, "Rendered %s to %s (%dx%d at %v dpi)\n",
		opts.input, opts.output, opts.width, opts.height, opts.dpi)
	return nil
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
