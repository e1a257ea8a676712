package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ritobanrc/firework/log"
	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/tracer"
	"github.com/ritobanrc/firework/tracer/cpu"
)

type defaultRenderer struct {
	logger log.Logger

	options   Options
	scheduler tracer.BlockScheduler

	// Shared frame accumulation buffer. Tracers own disjoint row
	// blocks so no synchronization is required while tracing.
	accum   []float32
	tracers []tracer.Tracer

	blockAssignments []uint32
	stats            FrameStats
}

// NewDefault creates a renderer that distributes frame blocks to a pool of
// CPU tracers using the supplied block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	opts = opts.withDefaults()

	cam, err := scene.NewCamera(sc.Camera, float32(opts.FrameW)/float32(opts.FrameH))
	if err != nil {
		return nil, err
	}
	root, err := sc.Root(!opts.NoBVH)
	if err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		options:   opts,
		scheduler: scheduler,
		accum:     make([]float32, opts.FrameW*opts.FrameH*3),
	}

	for i := 0; i < opts.NumWorkers; i++ {
		tr := cpu.NewTracer(fmt.Sprintf("cpu-%d", i), sc, root, cam)
		if err = tr.Setup(opts.FrameW, opts.FrameH, r.accum); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	r.logger.Debugf("attached %d tracers for a %dx%d frame", len(r.tracers), opts.FrameW, opts.FrameH)
	return r, nil
}

func (r *defaultRenderer) Render(ctx context.Context) (*Frame, error) {
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	start := time.Now()
	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)

	var (
		doneChan     chan uint32
		progressDone chan struct{}
	)
	if r.options.ShowProgress {
		doneChan = make(chan uint32, r.options.FrameH)
		progressDone = make(chan struct{})
		go r.trackProgress(doneChan, progressDone)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(r.tracers))

	var blockY uint32
	for i, tr := range r.tracers {
		req := tracer.BlockRequest{
			BlockY:          blockY,
			BlockH:          r.blockAssignments[i],
			SamplesPerPixel: r.options.SamplesPerPixel,
			NumBounces:      r.options.NumBounces,
			Seed:            r.options.Seed,
			DoneChan:        doneChan,
		}
		blockY += req.BlockH

		wg.Add(1)
		go func(tr tracer.Tracer, req tracer.BlockRequest) {
			defer wg.Done()
			if err := tr.Trace(ctx, req); err != nil {
				errChan <- err
			}
		}(tr, req)
	}
	wg.Wait()

	if doneChan != nil {
		close(doneChan)
		<-progressDone
	}

	select {
	case err := <-errChan:
		if err == context.Canceled || err == context.DeadlineExceeded {
			err = ErrInterrupted
		}
		return nil, err
	default:
	}

	r.collectStats(time.Since(start))
	return frameFromAccum(r.accum, r.options.FrameW, r.options.FrameH, r.options.Gamma), nil
}

func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) collectStats(renderTime time.Duration) {
	r.stats = FrameStats{RenderTime: renderTime}
	for i, tr := range r.tracers {
		r.stats.record(tr.Id(), r.blockAssignments[i], r.options.FrameH, tr.Stats().BlockTime)
	}
}

// trackProgress drains row completion counts and reports render progress
// in tenth-of-frame increments.
func (r *defaultRenderer) trackProgress(doneChan <-chan uint32, progressDone chan<- struct{}) {
	defer close(progressDone)

	total := r.options.FrameH
	step := total / 10
	if step == 0 {
		step = 1
	}

	var rows uint32
	next := step
	for n := range doneChan {
		rows += n
		for rows >= next {
			r.logger.Noticef("rendered %d%% (%d/%d rows)", rows*100/total, rows, total)
			next += step
		}
	}
}
