package renderer

import "context"

// A Renderer turns a scene into frames. Implementations own their
// tracer pool; Close must be called to release it.
type Renderer interface {
	// Render blocks until the frame is complete or ctx is cancelled.
	Render(ctx context.Context) (*Frame, error)

	// Close shuts down the renderer and any attached tracers.
	Close()

	// Stats returns statistics for the last rendered frame.
	Stats() FrameStats
}
