// package qrexport renders a worksheet session's persistence string
// (persist.Encode) as a scannable QR bitmap, a natural companion for
// sharing a worksheet out-of-band: a worksheet holder can hand the QR
// to another device instead of typing the persistence string back in.
package qrexport

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/kortschak/qr"
	xdraw "golang.org/x/image/draw"
)

// Scale is the number of output pixels per QR module.
const Scale = 8

// bitmapForQR flattens a qr.Code's module grid into a grayscale image with
// one pixel per module (black 0, white 255) via the standard
// qr.Encode → .Size/.Black(x,y) walk.
func bitmapForQR(code *qr.Code) *image.Gray {
	dim := code.Size
	img := image.NewGray(image.Rect(0, 0, dim, dim))
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			v := byte(255)
			if code.Black(x, y) {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// Encode renders content as a QR code at the given error-correction level
// and writes it to w as a PNG, upscaled by Scale using nearest-neighbour
// interpolation so each module prints as a solid square.
func Encode(w io.Writer, content string, level qr.Level) error {
	code, err := qr.Encode(content, level)
	if err != nil {
		return fmt.Errorf("qrexport: %w", err)
	}
	src := bitmapForQR(code)
	dim := src.Bounds().Dx()
	dst := image.NewGray(image.Rect(0, 0, dim*Scale, dim*Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("qrexport: %w", err)
	}
	return nil
}
