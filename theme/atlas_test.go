package theme

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

type fakeDecoder struct {
	img image.Image
	err error
}

func (d fakeDecoder) Decode(Kind, []byte, color.Color) (image.Image, error) {
	return d.img, d.err
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoadPropagatesDecodeError(t *testing.T) {
	wantErr := errors.New("bad png")
	_, err := Load(fakeDecoder{err: wantErr}, KindPNG, nil, nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Load error = %v, want %v", err, wantErr)
	}
}

func TestLoadStartsAtRefcountOne(t *testing.T) {
	im, err := Load(fakeDecoder{img: solidImage(4, 4, color.White)}, KindPNG, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	im.Lock()
	if im.Unlock() {
		t.Fatal("expected refcount 1 after one Lock on top of the initial 1, Unlock should not reach zero")
	}
	if !im.Unlock() {
		t.Fatal("expected refcount to reach zero on the matching Unlock")
	}
}

func TestEqualComparesDataAndModifierChain(t *testing.T) {
	im, err := Load(fakeDecoder{img: solidImage(2, 2, color.Black)}, KindPNG, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	other := &Img{data: im.data}

	if !Equal(im, other) {
		t.Fatal("expected two Imgs sharing the same decoded data and no modifiers to be Equal")
	}
}

func TestEqualDiffersAfterWithModifier(t *testing.T) {
	im, err := Load(fakeDecoder{img: solidImage(2, 2, color.Black)}, KindPNG, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	withMod := im.WithModifier(func(dst draw.Image) {})
	if Equal(im, withMod) {
		t.Fatal("expected Img with an added modifier to no longer Equal its base")
	}
}

func TestRenderEmptyImgReturnsBlankBuffer(t *testing.T) {
	out := Render(nil, 10, 10, 0, 1.0)
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Fatalf("Render(nil) bounds = %v, want 10x10", out.Bounds())
	}
}

func TestRenderAppliesScale(t *testing.T) {
	im, err := Load(fakeDecoder{img: solidImage(4, 4, color.White)}, KindPNG, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := Render(im, 10, 10, 0, 2.0)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Fatalf("Render scale=2 bounds = %v, want 20x20", out.Bounds())
	}
}
