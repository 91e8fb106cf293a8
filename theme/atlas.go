// Package theme implements the image + theme atlas: decoding and holding
// icon/button imagery, and rendering a loaded image into a buffer at a
// target size/scale/padding. Scaling is done with golang.org/x/image/draw;
// decoding PNG/XBM/SVG bytes themselves is an external collaborator's
// job, modeled here as the Decoder interface.
package theme

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Kind is the closed set of source image encodings a theme can supply.
type Kind int

const (
	KindPNG Kind = iota
	KindSVG
	KindXBM
	KindXPM
)

// Decoder turns raw theme-file bytes into a decoded image.Image. Actual
// PNG/SVG/XBM/XPM parsing is an external collaborator's job; callers
// supply a concrete Decoder (e.g. backed by image/png, or an SVG
// rasterizer) at startup.
type Decoder interface {
	Decode(kind Kind, data []byte, xbmColor color.Color) (image.Image, error)
}

// Modifier draws an overlay effect (e.g. a hover tint) on top of an
// already-rendered buffer.
type Modifier func(dst draw.Image)

// Img is a reference-counted, decoded theme image plus the sequence of
// modifier callbacks applied at render time. Two Imgs are Equal iff they
// share the same underlying decoded data and the identical modifier
// chain, compared pointer-by-pointer.
type Img struct {
	kind      Kind
	data      image.Image
	modifiers []Modifier
	refs      int
}

// Load decodes data via dec and returns a reference-counted handle at
// refcount 1.
func Load(dec Decoder, kind Kind, data []byte, xbmColor color.Color) (*Img, error) {
	img, err := dec.Decode(kind, data, xbmColor)
	if err != nil {
		return nil, err
	}
	return &Img{kind: kind, data: img, refs: 1}, nil
}

// Lock increments the reference count.
func (im *Img) Lock() { im.refs++ }

// Unlock decrements the reference count and reports whether it reached
// zero (the caller should then Drop).
func (im *Img) Unlock() bool {
	im.refs--
	return im.refs <= 0
}

// Drop releases the decoded pixels. Callers must not use im afterward.
func (im *Img) Drop() {
	im.data = nil
	im.modifiers = nil
}

// WithModifier returns a shallow copy of im with an additional modifier
// callback appended, so hover-state variants can share the base decode.
func (im *Img) WithModifier(m Modifier) *Img {
	mods := make([]Modifier, len(im.modifiers), len(im.modifiers)+1)
	copy(mods, im.modifiers)
	mods = append(mods, m)
	return &Img{kind: im.kind, data: im.data, modifiers: mods, refs: 1}
}

// Equal reports whether a and b decode to the same underlying data and
// carry the identical modifier chain (pointer-compared, since Go has no
// portable function-value equality beyond identity of the underlying
// closure).
func Equal(a, b *Img) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.data != b.data || len(a.modifiers) != len(b.modifiers) {
		return false
	}
	for i := range a.modifiers {
		if !sameFunc(a.modifiers[i], b.modifiers[i]) {
			return false
		}
	}
	return true
}

// Render draws im, scaled to fit width x height (minus padding on each
// side) at the given output scale, centered and letterboxed into the
// interior, then runs every modifier over the result.
func Render(im *Img, width, height, padding int, scale float64) *image.NRGBA {
	outW := int(float64(width) * scale)
	outH := int(float64(height) * scale)
	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	if im == nil || im.data == nil {
		return dst
	}

	pad := int(float64(padding) * scale)
	innerW := outW - 2*pad
	innerH := outH - 2*pad
	if innerW <= 0 || innerH <= 0 {
		return dst
	}

	sb := im.data.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW == 0 || srcH == 0 {
		return dst
	}

	// Letterbox: scale uniformly to fit inside the interior, center the
	// result.
	fit := float64(innerW) / float64(srcW)
	if hfit := float64(innerH) / float64(srcH); hfit < fit {
		fit = hfit
	}
	destW := int(float64(srcW) * fit)
	destH := int(float64(srcH) * fit)
	offX := pad + (innerW-destW)/2
	offY := pad + (innerH-destH)/2

	destRect := image.Rect(offX, offY, offX+destW, offY+destH)
	draw.CatmullRom.Scale(dst, destRect, im.data, sb, draw.Over, nil)

	for _, m := range im.modifiers {
		m(dst)
	}
	return dst
}

func sameFunc(a, b Modifier) bool {
	return funcPointer(a) == funcPointer(b)
}
