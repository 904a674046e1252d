package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"prism/src/physics/geometry"
)

// Format selects the encoding used by Encode.
type Format int

const (
	FormatPPM Format = iota
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat accepts a format name or file extension, with or without the
// leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "pnm":
		return FormatPPM, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatForPath picks the format from the extension of path.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes the canvas to w in format f. BMP and TIFF use the same
// clamping and rounding as the PPM serialization.
func Encode(w io.Writer, c *Canvas, f Format) error {
	var err error
	switch f {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatBMP:
		err = bmp.Encode(w, c.Image())
	case FormatTIFF:
		err = tiff.Encode(w, c.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("%v: %w", f, ErrUnknownFormat)
	}
	return newError(err)
}

// Image returns a read-only image.Image view of the canvas.
func (c *Canvas) Image() image.Image {
	return canvasImage{c}
}

// Scaled returns a new canvas enlarged factor times using nearest-neighbour
// sampling. Channels are quantized to 8 bits on the way.
func (c *Canvas) Scaled(factor int) (*Canvas, error) {
	if factor < 1 {
		return nil, newError(fmt.Errorf("scale factor %d: %w", factor, ErrInvalidScale))
	}
	dst := NewCanvas(c.width*factor, c.height*factor)
	di := canvasImage{dst}
	draw.NearestNeighbor.Scale(di, di.Bounds(), c.Image(), c.Image().Bounds(), draw.Src, nil)
	return dst, nil
}

// canvasImage adapts a Canvas to draw.Image.
type canvasImage struct {
	c *Canvas
}

func (ci canvasImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (ci canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ci.c.width, ci.c.height)
}

func (ci canvasImage) At(x, y int) color.Color {
	p, err := ci.c.PixelAt(x, y)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{
		R: channel(p.Red()),
		G: channel(p.Green()),
		B: channel(p.Blue()),
		A: 0xff,
	}
}

func (ci canvasImage) Set(x, y int, col color.Color) {
	r, g, b, _ := col.RGBA()
	// draw only writes inside Bounds, so WritePixel cannot fail.
	_ = ci.c.WritePixel(x, y, NewColor(
		geometry.Scalar(r>>8)/maxColorValue,
		geometry.Scalar(g>>8)/maxColorValue,
		geometry.Scalar(b>>8)/maxColorValue,
	))
}
