package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Shader computes the color of the pixel at (x, y). It may be called from
// several goroutines at once.
type Shader func(x, y int) (Color, error)

// Shade fills the canvas by calling shader for every pixel. Rows are shaded
// concurrently, at most workers at a time (unbounded when workers <= 0).
// Each row is written by exactly one goroutine and Shade returns only after
// all of them have finished, so the canvas is safe to serialize afterwards.
func (c *Canvas) Shade(ctx context.Context, workers int, shader Shader) error {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for y := 0; y < c.height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := c.pixels[y*c.width : (y+1)*c.width]
			for x := range row {
				col, err := shader(x, y)
				if err != nil {
					return fmt.Errorf("shade (%d, %d): %w", x, y, err)
				}
				row[x] = col
			}
			return nil
		})
	}
	return newError(g.Wait())
}
