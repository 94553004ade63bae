package landing

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	thumbWidth  = 640
	thumbHeight = 352
	// The gradient is drawn small and scaled up.
	thumbSourceWidth  = 40
	thumbSourceHeight = 22
	captionScale      = 3
)

var (
	slate200 = color.RGBA{0xe2, 0xe8, 0xf0, 0xff}
	slate100 = color.RGBA{0xf1, 0xf5, 0xf9, 0xff}
	slate500 = color.RGBA{0x64, 0x74, 0x8b, 0xff}
)

// RenderThumbnail draws the placeholder image for project n: a diagonal
// slate gradient with the caption "Projeto n" in the centre, PNG encoded.
func RenderThumbnail(n int) ([]byte, error) {
	src := image.NewRGBA(image.Rect(0, 0, thumbSourceWidth, thumbSourceHeight))
	span := float64(thumbSourceWidth + thumbSourceHeight - 2)
	for y := 0; y < thumbSourceHeight; y++ {
		for x := 0; x < thumbSourceWidth; x++ {
			src.SetRGBA(x, y, lerp(slate200, slate100, float64(x+y)/span))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	drawCaption(dst, fmt.Sprintf("Projeto %d", n))

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCaption renders text with the bitmap face on a transparent layer and
// scales it onto dst so the caption stays legible at thumbnail size.
func drawCaption(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	layer := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(slate500),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	w, h := width*captionScale, height*captionScale
	x0 := (dst.Bounds().Dx() - w) / 2
	y0 := (dst.Bounds().Dy() - h) / 2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), layer, layer.Bounds(), draw.Over, nil)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}
