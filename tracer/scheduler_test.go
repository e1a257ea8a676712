package tracer

import (
	"context"
	"testing"
	"time"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		tracers uint32
		frameH  uint32
		expRows []uint32
	}
	specs := []spec{
		{2, 10, []uint32{5, 5}},
		{3, 10, []uint32{3, 3, 4}},
		{1, 7, []uint32{7}},
		{4, 2, []uint32{0, 0, 0, 2}},
	}

	for index, s := range specs {
		tracers := make([]Tracer, s.tracers)
		for i := range tracers {
			tracers[i] = makeMockTracer("mock", 0, 0)
		}

		blockAssignment := NaiveScheduler().Schedule(tracers, s.frameH)

		var sum uint32
		for i, rows := range blockAssignment {
			if rows != s.expRows[i] {
				t.Fatalf("[spec %d] expected tracer %d to be assigned %d rows; got %d", index, i, s.expRows[i], rows)
			}
			sum += rows
		}
		if sum != s.frameH {
			t.Fatalf("[spec %d] expected assignments to sum to %d; got %d", index, s.frameH, sum)
		}
	}
}

func TestPerfectScheduler(t *testing.T) {
	tr1 := makeMockTracer("mock-1", 0, 0)
	tr2 := makeMockTracer("mock-2", 0, 0)
	tracers := []Tracer{tr1, tr2}

	sch := PerfectScheduler()

	// The first call has no feedback and behaves like the naive
	// scheduler.
	blockAssignment := sch.Schedule(tracers, 10)
	if blockAssignment[0] != 5 || blockAssignment[1] != 5 {
		t.Fatalf("expected even first assignment; got %v", blockAssignment)
	}

	// With feedback the faster tracer receives the larger block:
	// tracer 1 managed 1 row per time unit, tracer 2 managed 5.
	tr1.stats.BlockH, tr1.stats.BlockTime = 5, 5
	tr2.stats.BlockH, tr2.stats.BlockTime = 5, 1

	blockAssignment = sch.Schedule(tracers, 10)
	if blockAssignment[0] != 2 || blockAssignment[1] != 8 {
		t.Fatalf("expected assignment [2 8]; got %v", blockAssignment)
	}

	var sum uint32
	for _, rows := range blockAssignment {
		sum += rows
	}
	if sum != 10 {
		t.Fatalf("expected assignments to sum to 10; got %d", sum)
	}
}

type mockTracer struct {
	id    string
	stats *Stats
}

func makeMockTracer(id string, blockH uint32, blockTime time.Duration) *mockTracer {
	return &mockTracer{
		id:    id,
		stats: &Stats{BlockH: blockH, BlockTime: blockTime},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) Setup(_, _ uint32, _ []float32) error {
	return nil
}

func (mt *mockTracer) Trace(_ context.Context, _ BlockRequest) error {
	return nil
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}

func (mt *mockTracer) Close() {
}
