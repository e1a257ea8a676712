package tracer

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrBadAccumSize is returned by Setup when the accumulation buffer
	// does not match the frame dimensions.
	ErrBadAccumSize = errors.New("tracer: accumulation buffer does not match frame dimensions")

	// ErrNotSetup is returned by Trace before Setup attaches a frame.
	ErrNotSetup = errors.New("tracer: no frame attached")
)

// A unit of work that is processed by a tracer: a contiguous band of
// frame rows.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of samples per traced pixel.
	SamplesPerPixel uint32

	// The maximum number of path bounces.
	NumBounces uint32

	// Base seed for the per-pixel random number generators. Pixel
	// streams derive from the seed and the pixel coordinates only, so
	// the block assignment never changes the rendered output.
	Seed int64

	// A channel signalled with the number of completed rows.
	DoneChan chan<- uint32
}

// Tracer statistics.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time for rendering the last block.
	BlockTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Attach the tracer to a frame. The accumulation buffer stores
	// row-major RGB triples for the whole frame; block requests select
	// the rows the tracer writes.
	Setup(frameW, frameH uint32, accum []float32) error

	// Trace a block synchronously. The context is checked between rows.
	Trace(ctx context.Context, req BlockRequest) error

	// Retrieve last block statistics.
	Stats() *Stats

	// Shutdown and cleanup tracer.
	Close()
}
