// Package qrimage renders an encoded QR symbol as a PNG image. It is an
// external collaborator of the qrcode package: it only reads the symbol's
// module grid and size, never its internal encoding state.
package qrimage

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ashokshau/qrcode"
)

// Options configures PNG rendering.
type Options struct {
	// Scale is the number of pixels per module. Defaults to 8 when 0.
	Scale int
	// QuietZone is the number of light modules of border drawn around the
	// symbol. Defaults to 4 when negative (the zero value 0 is a legitimate
	// "no border" request), matching the teacher's fixed border.
	QuietZone int
	// Dark and Light override the module colors. Default to black and
	// white when nil.
	Dark, Light color.Color
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 8
	}
	if o.QuietZone < 0 {
		o.QuietZone = 4
	}
	if o.Dark == nil {
		o.Dark = color.Black
	}
	if o.Light == nil {
		o.Light = color.White
	}
	return o
}

// Symbol is the subset of qrcode.Code that rendering needs.
type Symbol interface {
	Size() int
	Module(row, col int) bool
}

var _ Symbol = (*qrcode.Code)(nil)

// Encode writes code to w as a PNG, per the teacher's WritePNG, generalized
// with a configurable quiet zone (original_source/QRcode/QRcode.py's
// export() defaults it to 6; the teacher's hardcoded 4 is kept as our
// default since it matches the ISO-recommended minimum) and module colors.
func Encode(w io.Writer, code Symbol, opts Options) error {
	opts = opts.withDefaults()
	size := code.Size()
	dim := (size + 2*opts.QuietZone) * opts.Scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{opts.Light, opts.Dark})
	for i := range img.Pix {
		img.Pix[i] = 0 // light
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !code.Module(r, c) {
				continue
			}
			startX := (c + opts.QuietZone) * opts.Scale
			startY := (r + opts.QuietZone) * opts.Scale
			for y := 0; y < opts.Scale; y++ {
				for x := 0; x < opts.Scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
