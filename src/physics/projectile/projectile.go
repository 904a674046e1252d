// Package projectile steps a point mass through a constant environment and
// plots its trajectory onto a render.Canvas.
package projectile

import (
	"errors"
	"fmt"

	"prism/src/physics/geometry"
	"prism/src/render"
)

var ErrTickLimit = errors.New("projectile: tick limit reached")

// ground is the plane y = 0, facing up.
var ground = geometry.NewVector(0, 1, 0)

type Environment struct {
	Gravity geometry.Vector
	Wind    geometry.Vector
}

type Projectile struct {
	Position geometry.Point
	Velocity geometry.Vector
}

func (p Projectile) String() string {
	return fmt.Sprintf("(position: %s, velocity: %s)", p.Position, p.Velocity)
}

// Airborne reports whether the projectile is above the ground or still
// rising.
func (p Projectile) Airborne() bool {
	landed := geometry.AreVerticesBehindPlane(ground, 0, []geometry.Point{p.Position}, 0)
	return !landed || p.Velocity.Y() > 0
}

// Tick advances p by one step: the position moves by the velocity, then the
// velocity picks up gravity and wind.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.AddVector(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Simulate ticks p while it is airborne and calls visit after every tick.
// It returns the final state, or ErrTickLimit once maxTicks ticks have run
// without the projectile landing. A non-nil error from visit stops the run.
func Simulate(env Environment, p Projectile, maxTicks int, visit func(step int, p Projectile) error) (Projectile, error) {
	for step := 1; p.Airborne(); step++ {
		if step > maxTicks {
			return p, fmt.Errorf("after %d ticks at %s: %w", maxTicks, p.Position, ErrTickLimit)
		}
		p = Tick(env, p)
		if visit == nil {
			continue
		}
		if err := visit(step, p); err != nil {
			return p, err
		}
	}
	return p, nil
}

// canvasBounds returns the planes enclosing [0, width] x [0, height].
func canvasBounds(c *render.Canvas) ([]geometry.Vector, []geometry.Scalar) {
	normals := []geometry.Vector{
		geometry.NewVector(-1, 0, 0),
		geometry.NewVector(1, 0, 0),
		geometry.NewVector(0, -1, 0),
		geometry.NewVector(0, 1, 0),
	}
	distances := []geometry.Scalar{
		0,
		-geometry.Scalar(c.Width()),
		0,
		-geometry.Scalar(c.Height()),
	}
	return normals, distances
}

// Plot writes color at the canvas pixel under p, with y flipped so that
// larger heights are nearer the top. It reports whether the pixel was inside
// the canvas.
func Plot(c *render.Canvas, p Projectile, color render.Color) bool {
	normals, distances := canvasBounds(c)
	if !geometry.IsPointInsidePlanes(normals, distances, p.Position, 0) {
		return false
	}
	// the far edges of the bounds map one past the last pixel
	x := int(p.Position.X())
	y := c.Height() - int(p.Position.Y())
	return c.WritePixel(x, y, color) == nil
}
