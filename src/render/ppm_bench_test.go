package render

import (
	"io"
	"math/rand"
	"testing"
)

var benchPPMResult string

func BenchmarkToPPM(b *testing.B) {
	c := randomCanvas(rand.New(rand.NewSource(1)), 320, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchPPMResult = c.ToPPM()
	}
}

func BenchmarkWritePPM(b *testing.B) {
	c := randomCanvas(rand.New(rand.NewSource(1)), 320, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.WritePPM(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
