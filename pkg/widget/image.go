package widget

import (
	"image"

	"dockbox/pkg/images"
	"dockbox/pkg/layout"
)

// Image displays a bitmap. Its pixels are treated as points, so the
// intrinsic size grows with DPI like every other declared length.
type Image struct {
	Decor
	Src   string
	Image image.Image

	// Fit is the aspect-preserving destination inside the node's padded box,
	// relative to the node's origin. Set by OnLayoutFinal.
	Fit image.Rectangle
}

// LoadImage creates an Image widget from src through the shared image cache.
func LoadImage(src string, fetcher images.ImageFetcher) (*Image, error) {
	img, err := images.LoadImageWithFetcher(src, fetcher)
	if err != nil {
		return nil, err
	}
	return &Image{Src: src, Image: img}, nil
}

func (im *Image) Kind() string { return "image" }

func (im *Image) MeasureIntrinsic(n *layout.Node, axis layout.Axis, dpi float64) int {
	if im.Image == nil {
		return 0
	}
	b := im.Image.Bounds()
	pad := n.ContentPadding
	if axis == layout.AxisY {
		return layout.Pixels(float64(b.Dy()), dpi) + pad.North + pad.South
	}
	return layout.Pixels(float64(b.Dx()), dpi) + pad.West + pad.East
}

func (im *Image) OnLayoutFinal(n *layout.Node) {
	x, y, w, h := innerBox(n)
	im.Fit = image.Rectangle{}
	if im.Image == nil || w == 0 || h == 0 {
		return
	}
	b := im.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	fw, fh := w, b.Dy()*w/b.Dx()
	if fh > h {
		fw, fh = b.Dx()*h/b.Dy(), h
	}
	x += (w - fw) / 2
	y += (h - fh) / 2
	im.Fit = image.Rect(x, y, x+fw, y+fh)
}
