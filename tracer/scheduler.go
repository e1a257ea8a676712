package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling
// algorithms. A scheduler splits a frame into one contiguous band of rows
// per tracer.
type BlockScheduler interface {
	// Schedule returns the block height assignment for each tracer in
	// the input list. The heights always sum to frameH.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

type naiveScheduler struct{}

// NaiveScheduler splits the frame evenly between tracers, assigning any
// remainder rows to the last one.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	assignment := make([]uint32, len(tracers))
	if len(tracers) == 0 {
		return assignment
	}

	rows := frameH / uint32(len(tracers))
	for idx := range assignment {
		assignment[idx] = rows
	}
	assignment[len(assignment)-1] += frameH - rows*uint32(len(tracers))
	return assignment
}

// The perfect scheduler assumes that the volume of tracing work between
// two subsequent frames is approximately the same and sizes each block by
// the tracer's measured row throughput. The first frame is split evenly.
type perfectScheduler struct {
	blockAssignment []uint32
}

func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	// First schedule, or the tracer pool changed.
	if len(sch.blockAssignment) != len(tracers) {
		sch.blockAssignment = NaiveScheduler().Schedule(tracers, frameH)
		return sch.blockAssignment
	}

	var total float64
	for _, tr := range tracers {
		stats := tr.Stats()
		if stats.BlockH == 0 || stats.BlockTime <= 0 {
			// No feedback yet; keep the previous assignment.
			return sch.blockAssignment
		}
		total += float64(stats.BlockH) / float64(stats.BlockTime)
	}

	scaler := float64(frameH) / total
	var scheduled uint32
	for idx, tr := range tracers {
		stats := tr.Stats()
		rows := uint32(math.Max(1, math.Floor(float64(stats.BlockH)/float64(stats.BlockTime)*scaler)))

		// Never overrun the frame; every tracer after this one still
		// needs at least one row.
		reserved := uint32(len(tracers) - idx - 1)
		if scheduled+rows+reserved > frameH {
			rows = frameH - scheduled - reserved
		}

		sch.blockAssignment[idx] = rows
		scheduled += rows
	}

	// Rows lost to flooring go to the first tracer.
	sch.blockAssignment[0] += frameH - scheduled
	return sch.blockAssignment
}
