package renderer

import "time"

// TracerStat captures how much of the frame a single tracer rendered
// and how long it took.
type TracerStat struct {
	Id string

	// Rows assigned to the tracer and the share of the frame they cover.
	BlockH       uint32
	FramePercent float32

	RenderTime time.Duration
}

// FrameStats aggregates per-tracer statistics for one rendered frame.
type FrameStats struct {
	Tracers []TracerStat

	// Wall-clock time for the whole frame.
	RenderTime time.Duration
}

// record appends the statistics for one tracer's block.
func (s *FrameStats) record(id string, blockH, frameH uint32, renderTime time.Duration) {
	s.Tracers = append(s.Tracers, TracerStat{
		Id:           id,
		BlockH:       blockH,
		FramePercent: float32(blockH) * 100.0 / float32(frameH),
		RenderTime:   renderTime,
	})
}
