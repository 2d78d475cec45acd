package markup

import (
	"errors"
	"fmt"
	"path/filepath"

	"dockbox/pkg/css"
	"dockbox/pkg/images"
	"dockbox/pkg/layout"
	"dockbox/pkg/text"
	"dockbox/pkg/widget"
)

// Options control how elements become nodes.
type Options struct {
	// Fonts is given to every label. Nil uses text.Default().
	Fonts *text.Fonts
	// Measurer, if set, sizes labels instead of Fonts.
	Measurer text.Measurer
	// Fetcher loads every image source that is not a data URI. Nil loads
	// them as files.
	Fetcher images.ImageFetcher
	// BaseDir resolves relative image paths when there is no Fetcher.
	BaseDir string
}

// BuildError reports a problem with one element.
type BuildError struct {
	Line int
	Tag  string
	ID   string
	Err  error
}

func (e *BuildError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("line %d: <%s id=%q>: %v", e.Line, e.Tag, e.ID, e.Err)
	}
	return fmt.Sprintf("line %d: <%s>: %v", e.Line, e.Tag, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Tree is a built document.
type Tree struct {
	Root    *layout.Node
	Scripts []string
}

// Parse parses and builds markup in one step.
func Parse(input string, opts Options) (*Tree, error) {
	doc, err := ParseDocument(input)
	if err != nil {
		return nil, err
	}
	root, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root, Scripts: doc.Scripts}, nil
}

// Build turns the document's single top-level element into a node tree.
func Build(doc *Document, opts Options) (*layout.Node, error) {
	for _, c := range doc.Root.Children {
		if c.Type == TextNode {
			return nil, fmt.Errorf("line %d: text outside of any element", c.Line)
		}
	}
	top := doc.Root.Elements()
	if len(top) != 1 {
		return nil, fmt.Errorf("document must have exactly one top-level element, found %d", len(top))
	}

	var sheets []*css.Stylesheet
	for _, src := range doc.Stylesheets {
		sheet, err := css.ParseStylesheet(src)
		if err != nil {
			return nil, fmt.Errorf("stylesheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	b := &builder{opts: opts, sheets: sheets}
	return b.build(top[0])
}

type builder struct {
	opts   Options
	sheets []*css.Stylesheet
}

func (b *builder) build(el *Node) (*layout.Node, error) {
	n, err := b.buildNode(el)
	if err != nil {
		id, _ := el.GetAttribute("id")
		var be *BuildError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, &BuildError{Line: el.Line, Tag: el.TagName, ID: id, Err: err}
	}
	return n, nil
}

func (b *builder) buildNode(el *Node) (*layout.Node, error) {
	style := css.ComputeStyle(el, b.sheets)

	rule := layout.RuleFill
	if dock, ok := style.Get("dock"); ok {
		r, ok := layout.ParseRule(dock)
		if !ok {
			return nil, fmt.Errorf("unknown dock rule %q", dock)
		}
		rule = r
	}

	name, ok := el.GetAttribute("id")
	if !ok {
		name = el.TagName
	}
	n := layout.NewNode(name, rule)
	if _, ok := el.GetAttribute("disabled"); ok {
		n.SetEnabled(false)
	}

	if err := applyBox(n, style); err != nil {
		return nil, err
	}
	decor, err := decoration(style)
	if err != nil {
		return nil, err
	}

	switch el.TagName {
	case "panel":
		n.Content = &widget.Panel{Decor: decor}
	case "scroll":
		n.Content = &widget.ScrollView{Decor: decor}
		if _, ok := style.Get("scroll"); !ok {
			n.CanScrollY = true
		}
	case "label":
		label, err := b.label(el, style)
		if err != nil {
			return nil, err
		}
		label.Decor = decor
		n.Content = label
	case "image":
		im, err := b.image(el)
		if err != nil {
			return nil, err
		}
		im.Decor = decor
		n.Content = im
	default:
		return nil, fmt.Errorf("unknown element")
	}

	if el.TagName == "label" || el.TagName == "image" {
		if len(el.Elements()) > 0 && !onlyBreaks(el) {
			return nil, fmt.Errorf("<%s> cannot have child elements", el.TagName)
		}
		return n, nil
	}

	for _, c := range el.Children {
		if c.Type == TextNode {
			return nil, fmt.Errorf("unexpected text %q; use a label", c.Text)
		}
		child, err := b.build(c)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func applyBox(n *layout.Node, style *css.Style) error {
	if w, _, valid := style.GetLength("min-width"); valid {
		n.MinSizeX = w
	} else {
		return fmt.Errorf("malformed min-width")
	}
	if h, _, valid := style.GetLength("min-height"); valid {
		n.MinSizeY = h
	} else {
		return fmt.Errorf("malformed min-height")
	}

	pad, bad := style.GetPadding()
	if bad != "" {
		return fmt.Errorf("malformed %s", bad)
	}
	n.Padding = layout.Edges{West: pad.Left, East: pad.Right, North: pad.Top, South: pad.Bottom}

	x, y, ok := style.GetScroll()
	if !ok {
		v, _ := style.Get("scroll")
		return fmt.Errorf("unknown scroll value %q", v)
	}
	n.CanScrollX, n.CanScrollY = x, y
	return nil
}

func decoration(style *css.Style) (widget.Decor, error) {
	var d widget.Decor
	if c, ok, valid := style.GetColor("background"); !valid {
		return d, fmt.Errorf("malformed background colour")
	} else if ok {
		d.Background = c
	}
	if c, ok, valid := style.GetColor("border-color"); !valid {
		return d, fmt.Errorf("malformed border colour")
	} else if ok {
		d.Border = c
	}
	return d, nil
}

func (b *builder) label(el *Node, style *css.Style) (*widget.Label, error) {
	size, ok := style.GetFontSize(widget.DefaultFontSize)
	if !ok {
		return nil, fmt.Errorf("malformed font-size")
	}
	label := &widget.Label{
		Text:  el.TextContent(),
		Size:  size,
		Style: text.Style{Bold: style.IsBold(), Mono: style.IsMono()},
		Fonts:    b.opts.Fonts,
		Measurer: b.opts.Measurer,
	}
	if t, ok := el.GetAttribute("text"); ok {
		label.Text = t
	}
	if c, ok, valid := style.GetColor("color"); !valid {
		return nil, fmt.Errorf("malformed colour")
	} else if ok {
		label.Color = c
	}
	return label, nil
}

func (b *builder) image(el *Node) (*widget.Image, error) {
	src, ok := el.GetAttribute("src")
	if !ok || src == "" {
		return nil, fmt.Errorf("missing src")
	}
	if b.opts.Fetcher == nil && b.opts.BaseDir != "" && !images.IsDataURI(src) && !filepath.IsAbs(src) {
		src = filepath.Join(b.opts.BaseDir, src)
	}
	return widget.LoadImage(src, b.opts.Fetcher)
}

func onlyBreaks(el *Node) bool {
	for _, c := range el.Elements() {
		if c.TagName != "br" {
			return false
		}
	}
	return true
}
