package softpipe

import "github.com/softpipe/softpipe/raster"

// defaultLumaThreshold is the luminance contrast above which the FXAA
// pass smooths a pixel, used when PostProcessorOptions.LumaThreshold
// is zero.
const defaultLumaThreshold = 0.1

// PostProcessorOptions configure the post-processing stage. Immutable
// for the renderer's lifetime.
type PostProcessorOptions struct {
	// FXAA enables the edge-aware smoothing pass.
	FXAA bool

	// LumaThreshold is the 4-neighbor luminance contrast above which a
	// pixel is smoothed. Zero selects the default of 0.1. Tune per
	// deployment: lower values smooth more aggressively.
	LumaThreshold float32
}

// Options configure a Renderer. Immutable for its lifetime.
type Options struct {
	Raster raster.Options
	Post   PostProcessorOptions
}
