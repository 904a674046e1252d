// Package render holds colors, the pixel canvas and its image encodings.
package render

import (
	"fmt"

	"prism/src/physics/geometry"
)

// Canvas is a width x height grid of colors, row major with the origin in
// the top-left corner.
//
// A Canvas is not safe for concurrent use, except that goroutines may write
// disjoint pixels at the same time. Serialize only after every writer has
// returned.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// NewCanvas returns a canvas with every pixel set to Black.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0, fmt.Errorf("pixel (%d, %d) outside %dx%d canvas: %w",
			x, y, c.width, c.height, geometry.ErrIndexOutOfRange)
	}
	return y*c.width + x, nil
}

func (c *Canvas) PixelAt(x, y int) (Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return Color{}, newError(err)
	}
	return c.pixels[i], nil
}

func (c *Canvas) WritePixel(x, y int, color Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return newError(err)
	}
	c.pixels[i] = color
	return nil
}

// Fill sets every pixel to color.
func (c *Canvas) Fill(color Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}
