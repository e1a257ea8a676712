package cpu

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/ritobanrc/firework/log"
	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/tracer"
	"github.com/ritobanrc/firework/types"
)

// Tracer is a CPU path tracer. Each instance renders the frame rows its
// block requests select; several instances may share one accumulation
// buffer as long as their blocks do not overlap.
type Tracer struct {
	id     string
	logger log.Logger

	sc   *scene.Scene
	root scene.Object
	env  scene.Environment
	cam  *scene.Camera

	frameW uint32
	frameH uint32
	accum  []float32

	stats tracer.Stats
}

// NewTracer creates a tracer for the given scene. The root aggregate and
// camera are built once by the renderer and shared by all tracers.
func NewTracer(id string, sc *scene.Scene, root scene.Object, cam *scene.Camera) *Tracer {
	return &Tracer{
		id:     id,
		logger: log.New(id),
		sc:     sc,
		root:   root,
		env:    sc.Environment(),
		cam:    cam,
	}
}

func (t *Tracer) Id() string {
	return t.id
}

func (t *Tracer) Setup(frameW, frameH uint32, accum []float32) error {
	if uint32(len(accum)) != frameW*frameH*3 {
		return tracer.ErrBadAccumSize
	}

	t.frameW = frameW
	t.frameH = frameH
	t.accum = accum
	return nil
}

func (t *Tracer) Trace(ctx context.Context, req tracer.BlockRequest) error {
	if t.accum == nil {
		return tracer.ErrNotSetup
	}

	start := time.Now()
	for y := req.BlockY; y < req.BlockY+req.BlockH; y++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t.traceRow(y, req)
		if req.DoneChan != nil {
			req.DoneChan <- 1
		}
	}

	t.stats.BlockH = req.BlockH
	t.stats.BlockTime = time.Since(start)
	t.logger.Debugf("traced rows [%d, %d) in %d ms", req.BlockY, req.BlockY+req.BlockH, t.stats.BlockTime.Nanoseconds()/1e6)
	return nil
}

func (t *Tracer) Stats() *tracer.Stats {
	return &t.stats
}

func (t *Tracer) Close() {
	t.accum = nil
}

// traceRow renders one frame row. Every pixel owns a random stream seeded
// by the base seed and its coordinates, making the output independent of
// how rows were grouped into blocks.
func (t *Tracer) traceRow(y uint32, req tracer.BlockRequest) {
	for x := uint32(0); x < t.frameW; x++ {
		rng := rand.New(rand.NewSource(req.Seed + int64(y)*int64(t.frameW) + int64(x)))

		var color types.Vec3
		for s := uint32(0); s < req.SamplesPerPixel; s++ {
			u := (float32(x) + rng.Float32()) / float32(t.frameW)
			v := 1 - (float32(y)+rng.Float32())/float32(t.frameH)
			color = color.Add(t.radiance(t.cam.Ray(u, v, rng), req.NumBounces, rng))
		}
		color = color.Mul(1 / float32(req.SamplesPerPixel))

		base := (y*t.frameW + x) * 3
		t.accum[base] = color[0]
		t.accum[base+1] = color[1]
		t.accum[base+2] = color[2]
	}
}

// radiance returns the light arriving along r. Rays that escape sample
// the environment; paths that run out of bounces contribute nothing.
func (t *Tracer) radiance(r types.Ray, remaining uint32, rng *rand.Rand) types.Vec3 {
	hit, ok := t.root.Hit(r, 0.001, math.MaxFloat32, rng)
	if !ok {
		return t.env.Sample(r.Dir)
	}
	if remaining == 0 {
		return types.Vec3{}
	}

	mat := t.sc.GetMaterial(hit.Material)
	emitted := mat.Emitted(&hit)

	info, ok := mat.Scatter(r, &hit, rng)
	if !ok {
		return emitted
	}

	return emitted.Add(info.Attenuation.MulVec(t.radiance(info.Scattered, remaining-1, rng)))
}
