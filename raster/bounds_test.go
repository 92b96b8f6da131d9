package raster

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTriangleBounds(t *testing.T) {
	screen := bounds{minX: 0, minY: 0, maxX: 63, maxY: 63}

	tests := []struct {
		name string
		pts  [3]mgl32.Vec2
		clip bounds
		want bounds
		ok   bool
	}{
		{
			name: "interior triangle",
			pts:  [3]mgl32.Vec2{{10.5, 20.5}, {30.2, 20.5}, {20, 40.9}},
			clip: screen,
			want: bounds{minX: 10, minY: 20, maxX: 31, maxY: 41},
			ok:   true,
		},
		{
			name: "clamped to screen edges",
			pts:  [3]mgl32.Vec2{{-10, -10}, {100, 0}, {0, 100}},
			clip: screen,
			want: screen,
			ok:   true,
		},
		{
			name: "clamped to a band",
			pts:  [3]mgl32.Vec2{{5, 5}, {50, 5}, {25, 60}},
			clip: bounds{minX: 0, minY: 16, maxX: 63, maxY: 31},
			want: bounds{minX: 5, minY: 16, maxX: 50, maxY: 31},
			ok:   true,
		},
		{
			name: "entirely above the band",
			pts:  [3]mgl32.Vec2{{5, 0}, {10, 0}, {7, 4}},
			clip: bounds{minX: 0, minY: 16, maxX: 63, maxY: 31},
			ok:   false,
		},
		{
			name: "entirely offscreen",
			pts:  [3]mgl32.Vec2{{-30, -30}, {-10, -30}, {-20, -10}},
			clip: screen,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := triangleBounds(tt.pts, tt.clip)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}
