package render

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"prism/src/physics/geometry"
)

const (
	ppmMagic      = "P3"
	maxColorValue = 255
	maxLineLength = 70

	// LineTerminator ends every line of a serialized canvas, the last one
	// included.
	LineTerminator = "\r"
)

// channel clamps s into [0, 1] and scales it to [0, 255], rounding half
// away from zero.
func channel(s geometry.Scalar) uint8 {
	v := float64(s)
	switch {
	case v < 0 || math.IsNaN(v):
		v = 0
	case v > 1:
		v = 1
	}
	return uint8(math.Round(v * maxColorValue))
}

// ToPPM serializes the canvas as a plain (P3) portable pixmap.
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = c.WritePPM(&sb)
	return sb.String()
}

// WritePPM streams the P3 serialization of the canvas to w. Pixel rows are
// wrapped so that no line exceeds 70 characters and no number is split.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	pw := ppmWriter{w: bw}

	pw.writeLine(ppmMagic)
	pw.writeLine(strconv.Itoa(c.width) + " " + strconv.Itoa(c.height))
	pw.writeLine(strconv.Itoa(maxColorValue))

	var scratch [3]byte
	line := make([]byte, 0, maxLineLength+4)
	for y := 0; y < c.height; y++ {
		line = line[:0]
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			for _, s := range [3]geometry.Scalar{p.Red(), p.Green(), p.Blue()} {
				token := strconv.AppendUint(scratch[:0], uint64(channel(s)), 10)
				if len(line)+len(token) >= maxLineLength {
					pw.writeLine(strings.TrimRight(string(line), " "))
					line = line[:0]
				}
				line = append(line, token...)
				line = append(line, ' ')
			}
		}
		pw.writeLine(strings.TrimRight(string(line), " "))
	}
	if pw.err != nil {
		return newError(pw.err)
	}
	if err := bw.Flush(); err != nil {
		return newError(err)
	}
	return nil
}

// ppmWriter remembers the first write error so the serialization loop can
// stay free of error checks.
type ppmWriter struct {
	w   *bufio.Writer
	err error
}

func (p *ppmWriter) writeLine(s string) {
	if p.err != nil {
		return
	}
	if _, p.err = p.w.WriteString(s); p.err != nil {
		return
	}
	_, p.err = p.w.WriteString(LineTerminator)
}
