// Command projectile fires a projectile through a constant environment and
// writes its trajectory to an image file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"prism/src/physics/geometry"
	"prism/src/physics/projectile"
	"prism/src/render"
)

// vectorFlag parses "x,y,z".
type vectorFlag struct {
	v geometry.Vector
}

func (f *vectorFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X(), f.v.Y(), f.v.Z())
}

func (f *vectorFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var a [3]geometry.Scalar
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return err
		}
		a[i] = geometry.Scalar(v)
	}
	f.v = geometry.VectorFromArray(a)
	return nil
}

type config struct {
	width, height int
	x, y          float64
	speed         float64
	velocity      vectorFlag
	gravity       vectorFlag
	wind          vectorFlag
	maxTicks      int
	scale         int
	sky           bool
	output        string
	verbose       bool
}

func main() {
	var cfg config
	cfg.velocity.v = geometry.NewVector(1, 1.8, 0)
	cfg.gravity.v = geometry.NewVector(0, -0.1, 0)
	cfg.wind.v = geometry.NewVector(-0.01, 0, 0)

	flag.IntVar(&cfg.width, "width", 900, "canvas width")
	flag.IntVar(&cfg.height, "height", 550, "canvas height")
	flag.Float64Var(&cfg.x, "x", 0, "start x")
	flag.Float64Var(&cfg.y, "y", 1, "start y")
	flag.Float64Var(&cfg.speed, "speed", 11.25, "magnitude of the initial velocity, 0 keeps it as given")
	flag.Var(&cfg.velocity, "velocity", "initial velocity direction x,y,z")
	flag.Var(&cfg.gravity, "gravity", "gravity x,y,z")
	flag.Var(&cfg.wind, "wind", "wind x,y,z")
	flag.IntVar(&cfg.maxTicks, "max-ticks", 100000, "give up after this many ticks")
	flag.IntVar(&cfg.scale, "scale", 1, "enlarge the output image by this factor")
	flag.BoolVar(&cfg.sky, "sky", false, "shade a sky gradient behind the trajectory")
	flag.StringVar(&cfg.output, "o", "projectile.ppm", "output file, format from the extension (.ppm, .bmp, .tiff)")
	flag.BoolVar(&cfg.verbose, "v", false, "log every tick")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("projectile: ")

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) (err error) {
	defer render.CheckError(&err)

	format, err := render.FormatForPath(cfg.output)
	if err != nil {
		return err
	}

	velocity := cfg.velocity.v
	if cfg.speed != 0 {
		velocity, err = velocity.Normalize()
		if err != nil {
			return fmt.Errorf("velocity: %w", err)
		}
		velocity = velocity.Mul(geometry.Scalar(cfg.speed))
	}

	env := projectile.Environment{Gravity: cfg.gravity.v, Wind: cfg.wind.v}
	p := projectile.Projectile{
		Position: geometry.NewPoint(geometry.Scalar(cfg.x), geometry.Scalar(cfg.y), 0),
		Velocity: velocity,
	}

	canvas := render.NewCanvas(cfg.width, cfg.height)
	if cfg.sky {
		render.OrPanic(canvas.Shade(context.Background(), runtime.NumCPU(), skyShader(cfg.height)))
	}

	trail := render.NewColor(1, 0.3, 0.2)
	plotted := 0
	last, err := projectile.Simulate(env, p, cfg.maxTicks, func(step int, p projectile.Projectile) error {
		if projectile.Plot(canvas, p, trail) {
			plotted++
		}
		if cfg.verbose {
			log.Printf("tick %d: %s", step, p)
		}
		return nil
	})
	if err != nil && !errors.Is(err, projectile.ErrTickLimit) {
		return err
	}
	if err != nil {
		log.Print(err)
	}
	log.Printf("landed at %s, %d points plotted", last.Position, plotted)

	if cfg.scale != 1 {
		canvas, err = canvas.Scaled(cfg.scale)
		if err != nil {
			return err
		}
	}

	if err := writeImage(cfg.output, canvas, format); err != nil {
		return err
	}
	log.Printf("wrote %dx%d %s image to %s", canvas.Width(), canvas.Height(), format, cfg.output)
	return nil
}

// encode is swapped out by tests.
var encode = render.Encode

// writeImage encodes canvas into path. A failed encode removes the partial
// file.
func writeImage(path string, canvas *render.Canvas, format render.Format) (err error) {
	defer render.CheckError(&err)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	render.OrPanic(encode(f, canvas, format), func() {
		f.Close()
		os.Remove(path)
	})
	return f.Close()
}

// skyShader fades from a pale blue horizon at the bottom to a deeper blue
// at the top.
func skyShader(height int) render.Shader {
	horizon := render.NewColor(0.85, 0.92, 1)
	zenith := render.NewColor(0.35, 0.55, 0.9)
	return func(x, y int) (render.Color, error) {
		t := geometry.Scalar(y) / geometry.Scalar(height)
		return zenith.Mul(1 - t).Add(horizon.Mul(t)), nil
	}
}
