package resource

import (
	"fmt"
	"image"
	"log"
	"math"

	"dockbox/pkg/layout"
	"dockbox/pkg/markup"
	"dockbox/pkg/render"
	"dockbox/pkg/script"
	"dockbox/pkg/text"
)

// Renderer renders markup onto an image.
type Renderer interface {
	Render(content string, target *image.RGBA, dpi float64) error
}

// Page is a built document whose root is stretched to fill a viewport.
type Page struct {
	Tree *markup.Tree

	// Declared root minimum size, restored before each viewport fit.
	minX, minY float64
}

// Root returns the page's root node.
func (p *Page) Root() *layout.Node {
	return p.Tree.Root
}

// Layout lays the page out so that the root covers at least width x height
// pixels at dpi.
func (p *Page) Layout(width, height int, dpi float64) {
	root := p.Tree.Root
	root.MinSizeX = max(p.minX, viewportPoints(width, dpi))
	root.MinSizeY = max(p.minY, viewportPoints(height, dpi))
	root.LayoutAsRoot(dpi)
}

// viewportPoints converts px to the largest point size that does not round
// back up past px at dpi.
func viewportPoints(px int, dpi float64) float64 {
	p := float64(px) * 72 / dpi
	for p > 0 && layout.Pixels(p, dpi) > px {
		p = math.Nextafter(p, 0)
	}
	return p
}

// DockRenderer builds, scripts, lays out and paints markup documents.
type DockRenderer struct {
	fetcher  Fetcher
	fonts    *text.Fonts
	measurer text.Measurer
	engine   *script.Engine // nil = skip scripts
}

// NewDockRenderer creates a renderer. The fetcher, if any, loads images.
// If fonts is omitted or zero-value, the embedded fonts are used.
func NewDockRenderer(fetcher Fetcher, fonts ...text.FontConfig) *DockRenderer {
	f := text.Default()
	if len(fonts) > 0 && fonts[0] != (text.FontConfig{}) {
		f = text.NewFonts(fonts[0])
	}
	return &DockRenderer{fetcher: fetcher, fonts: f}
}

// SetScriptEngine enables scripts. Scripts run once per Load, between a
// first and a second layout, so they can read geometry and change the tree.
func (r *DockRenderer) SetScriptEngine(engine *script.Engine) {
	r.engine = engine
}

// SetMeasurer makes labels size their text with m instead of the fonts.
func (r *DockRenderer) SetMeasurer(m text.Measurer) {
	r.measurer = m
}

// Fonts returns the face cache used for labels.
func (r *DockRenderer) Fonts() *text.Fonts {
	return r.fonts
}

// Load builds content and lays it out for a width x height viewport.
// Script errors are logged, not returned.
func (r *DockRenderer) Load(content string, width, height int, dpi float64) (*Page, error) {
	opts := markup.Options{Fonts: r.fonts, Measurer: r.measurer}
	if r.fetcher != nil {
		opts.Fetcher = ImageFetcher(r.fetcher)
	}
	tree, err := markup.Parse(content, opts)
	if err != nil {
		return nil, fmt.Errorf("building markup: %w", err)
	}

	page := &Page{Tree: tree, minX: tree.Root.MinSizeX, minY: tree.Root.MinSizeY}
	page.Layout(width, height, dpi)

	if r.engine != nil && len(tree.Scripts) > 0 {
		tree.Root.MinSizeX, tree.Root.MinSizeY = page.minX, page.minY
		r.engine.Fonts, r.engine.Measurer = r.fonts, r.measurer
		if err := r.engine.Execute(tree.Root, tree.Scripts); err != nil {
			log.Printf("script: %v", err)
		}
		page.minX, page.minY = tree.Root.MinSizeX, tree.Root.MinSizeY
		page.Layout(width, height, dpi)
	}
	return page, nil
}

// Paint draws a laid-out page onto target.
func (r *DockRenderer) Paint(page *Page, target *image.RGBA, dpi float64) {
	renderer := render.NewRendererForImage(target)
	renderer.SetFonts(r.fonts)
	renderer.Render(page.Root(), dpi)
}

// Render loads content sized to target and paints it.
func (r *DockRenderer) Render(content string, target *image.RGBA, dpi float64) error {
	bounds := target.Bounds()
	page, err := r.Load(content, bounds.Dx(), bounds.Dy(), dpi)
	if err != nil {
		return err
	}
	r.Paint(page, target, dpi)
	return nil
}
