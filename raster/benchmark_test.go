package raster

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// BenchmarkRasterizer_FullScreenQuad measures fill rate for an opaque
// full-screen quad across buffer sizes.
func BenchmarkRasterizer_FullScreenQuad(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"320x240", 320, 240},
		{"640x480", 640, 480},
		{"1280x720", 1280, 720},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			r := New(size.width, size.height, Options{})
			defer r.Close()
			quad := fullScreenQuad(0.5)
			sh := solidShader{color: mgl32.Vec4{1, 0, 0, 1}}
			dst := make([]uint32, size.width*size.height)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.DrawMesh(quad, sh)
				if err := r.Resolve(dst); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.width * size.height * 4))
		})
	}
}

// BenchmarkRasterizer_Translucent measures the transparency path with
// four overlapping translucent layers per pixel.
func BenchmarkRasterizer_Translucent(b *testing.B) {
	const width, height = 640, 480
	r := New(width, height, Options{})
	defer r.Close()
	dst := make([]uint32, width*height)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for layer := 0; layer < 4; layer++ {
			z := 0.2 + 0.2*float32(layer)
			r.DrawMesh(fullScreenQuad(z), solidShader{color: mgl32.Vec4{1, 0, 0, 0.5}})
		}
		if err := r.Resolve(dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolve_Empty measures resolve throughput with nothing drawn.
func BenchmarkResolve_Empty(b *testing.B) {
	const width, height = 1280, 720
	r := New(width, height, Options{BackgroundColor: mgl32.Vec3{0.1, 0.2, 0.3}})
	defer r.Close()
	dst := make([]uint32, width*height)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := r.Resolve(dst); err != nil {
			b.Fatal(err)
		}
	}
	b.SetBytes(int64(width * height * 4))
}
