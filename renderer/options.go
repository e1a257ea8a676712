package renderer

import "runtime"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel.
	SamplesPerPixel uint32

	// Max number of indirect bounces per path.
	NumBounces uint32

	// Gamma correction exponent applied to the accumulated radiance
	// when building the output frame.
	Gamma float32

	// Intersect the object list linearly instead of building a BVH.
	NoBVH bool

	// Number of CPU tracers to attach. Zero selects one per logical
	// core. Never more than one tracer per frame row.
	NumWorkers int

	// Base seed for the per-pixel sample streams. Frames rendered with
	// the same seed and options are identical.
	Seed int64

	// Log row completion progress while rendering.
	ShowProgress bool
}

func (o Options) withDefaults() Options {
	if o.FrameW == 0 {
		o.FrameW = 960
	}
	if o.FrameH == 0 {
		o.FrameH = 540
	}
	if o.SamplesPerPixel == 0 {
		o.SamplesPerPixel = 100
	}
	if o.NumBounces == 0 {
		o.NumBounces = 50
	}
	if o.Gamma == 0 {
		o.Gamma = 0.5
	}
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if uint32(o.NumWorkers) > o.FrameH {
		o.NumWorkers = int(o.FrameH)
	}
	return o
}
