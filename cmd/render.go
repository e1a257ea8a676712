package cmd

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/ritobanrc/firework/renderer"
	"github.com/ritobanrc/firework/scene"
	"github.com/ritobanrc/firework/scene/preset"
	"github.com/ritobanrc/firework/scene/reader"
	"github.com/ritobanrc/firework/tracer"
	"github.com/urfave/cli"
)

// RenderFlags returns the flag set shared by the render and window
// commands.
func RenderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 960,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 540,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 100,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "num-bounces",
			Value: 50,
			Usage: "max bounces before paths are terminated",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Value: 0.5,
			Usage: "gamma correction exponent applied to the frame",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "base seed for the per-pixel samplers",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "number of cpu tracers; 0 attaches one per core",
		},
		cli.BoolFlag{
			Name:  "linear",
			Usage: "trace against the flat object list instead of a bvh",
		},
		cli.BoolFlag{
			Name:  "progress",
			Usage: "log render progress",
		},
		cli.StringFlag{
			Name:  "scene",
			Value: "simple",
			Usage: "preset scene to render (see the scenes command)",
		},
		cli.StringFlag{
			Name:  "scene-file",
			Usage: "render a json or obj scene file instead of a preset",
		},
	}
}

// RenderFrame renders a still frame and writes it out as a png image.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	frame, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	displayFrameStats(r.Stats())

	imgFile := ctx.String("out")
	start := time.Now()
	if err = renderer.WritePNG(frame, imgFile); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)

	return nil
}

// Load the scene selected by the command line: an explicit scene file if
// one is given, a preset otherwise.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if sceneFile := ctx.String("scene-file"); sceneFile != "" {
		return reader.ReadScene(sceneFile)
	}
	return preset.Build(ctx.String("scene"))
}

// sceneLabel names the scene selected by the command line.
func sceneLabel(ctx *cli.Context) string {
	if sceneFile := ctx.String("scene-file"); sceneFile != "" {
		return sceneFile
	}
	return ctx.String("scene")
}

func renderOptions(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		NumBounces:      uint32(ctx.Int("num-bounces")),
		Gamma:           float32(ctx.Float64("gamma")),
		NoBVH:           ctx.Bool("linear"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
		ShowProgress:    ctx.Bool("progress"),
	}
}

func setupRenderer(ctx *cli.Context) (renderer.Renderer, error) {
	sc, err := loadScene(ctx)
	if err != nil {
		return nil, err
	}
	return renderer.NewDefault(sc, tracer.NaiveScheduler(), renderOptions(ctx))
}

// Display per-tracer render stats.
func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
