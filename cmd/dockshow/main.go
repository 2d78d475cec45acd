// Command dockshow fetches a markup document over HTTP and renders it to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"time"

	"dockbox/pkg/resource"
	"dockbox/pkg/script"
)

func main() {
	width := flag.Int("w", 800, "viewport width in pixels")
	height := flag.Int("h", 600, "viewport height in pixels")
	dpi := flag.Float64("dpi", 72, "display resolution")
	output := flag.String("o", "output.png", "output PNG file path")
	noScript := flag.Bool("noscript", false, "do not run document scripts")
	timeout := flag.Duration("timeout", time.Minute, "limit on fetching the document and its images")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockshow [flags] <url>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	url := flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	// Relative image sources resolve against the document URL.
	fetcher := resource.NewFetcher(url).WithContext(ctx)

	fmt.Fprintf(os.Stderr, "Fetching %s...\n", url)
	content, err := resource.FetchMarkup(fetcher, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching URL: %v\n", err)
		os.Exit(1)
	}

	target := image.NewRGBA(image.Rect(0, 0, *width, *height))
	renderer := resource.NewDockRenderer(fetcher)
	if !*noScript {
		renderer.SetScriptEngine(script.New())
	}

	fmt.Fprintf(os.Stderr, "Rendering %dx%d at %v dpi...\n", *width, *height, *dpi)
	if err := renderer.Render(content, target, *dpi); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, target); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Saved to %s\n", *output)
}
