package softpipe

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/softpipe/softpipe/internal/parallel"
)

// PostProcessor applies the post-rasterization anti-aliasing pass to a
// resolved color buffer of packed 0xRRGGBB pixels.
//
// The pass detects high local luminance contrast in the 4-neighborhood
// and replaces such pixels with their unweighted 3×3 neighborhood
// average. The outermost row and column on every side pass through
// unchanged. Writes go to an internal scratch buffer to avoid
// read/write aliasing during the neighborhood scan, then copy back.
type PostProcessor struct {
	opts      PostProcessorOptions
	width     int
	height    int
	threshold float32

	scratch []uint32
	bands   []parallel.Band
	pool    *parallel.Pool
}

// NewPostProcessor creates a post-processor for a width×height buffer.
func NewPostProcessor(width, height int, opts PostProcessorOptions) *PostProcessor {
	threshold := opts.LumaThreshold
	if threshold == 0 {
		threshold = defaultLumaThreshold
	}

	pool := parallel.NewPool(0)
	return &PostProcessor{
		opts:      opts,
		width:     width,
		height:    height,
		threshold: threshold,
		scratch:   make([]uint32, width*height),
		bands:     parallel.Bands(height, pool.Workers()),
		pool:      pool,
	}
}

// Close shuts down the worker pool. The post-processor must not be
// used after Close.
func (p *PostProcessor) Close() {
	p.pool.Close()
}

// Process runs the configured passes over buf in place. buf must hold
// exactly width*height pixels. With FXAA disabled, buf is untouched.
func (p *PostProcessor) Process(buf []uint32) error {
	if len(buf) != p.width*p.height {
		return fmt.Errorf("softpipe: post-process buffer length %d does not match %d×%d pixels", len(buf), p.width, p.height)
	}
	if p.opts.FXAA {
		p.fxaa(buf)
	}
	return nil
}

// fxaa runs the smoothing pass. Workers read the full source buffer
// and write only their own rows of the scratch buffer.
func (p *PostProcessor) fxaa(buf []uint32) {
	p.pool.ForEach(len(p.bands), func(bi int) {
		band := p.bands[bi]
		for y := band.Start; y < band.End; y++ {
			row := y * p.width
			if y == 0 || y == p.height-1 {
				copy(p.scratch[row:row+p.width], buf[row:row+p.width])
				continue
			}
			for x := 0; x < p.width; x++ {
				if x == 0 || x == p.width-1 {
					p.scratch[row+x] = buf[row+x]
					continue
				}
				p.scratch[row+x] = p.fxaaPixel(buf, x, y)
			}
		}
	})

	copy(buf, p.scratch)
}

func (p *PostProcessor) fxaaPixel(src []uint32, x, y int) uint32 {
	i := y*p.width + x

	left := luminance(src[i-1])
	right := luminance(src[i+1])
	top := luminance(src[i-p.width])
	bottom := luminance(src[i+p.width])

	if math32.Abs(left-right)+math32.Abs(top-bottom) <= p.threshold {
		return src[i]
	}

	var rSum, gSum, bSum uint32
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px := src[(y+dy)*p.width+(x+dx)]
			rSum += px >> 16 & 0xff
			gSum += px >> 8 & 0xff
			bSum += px & 0xff
		}
	}
	return rSum/9<<16 | gSum/9<<8 | bSum/9
}

// luminance returns the Rec. 709 luma of a packed pixel, normalized to
// [0, 1].
func luminance(p uint32) float32 {
	r := float32(p >> 16 & 0xff)
	g := float32(p >> 8 & 0xff)
	b := float32(p & 0xff)
	return (0.2126*r + 0.7152*g + 0.0722*b) / 255
}
