package main

import (
	"os"

	"github.com/ritobanrc/firework/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "firework"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a frame to a png file",
			Description: `
Build the selected scene (a preset by default, or a JSON/OBJ scene document
when --scene-file is set), trace it with a pool of cpu tracers and write the
frame out as a png image.`,
			Flags: append(cmd.RenderFlags(), cli.StringFlag{
				Name:  "out, o",
				Value: "render.png",
				Usage: "image filename for the rendered frame",
			}),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "window",
			Usage: "render a frame and display it in a window",
			Description: `
Render a single frame and display it in an sdl window. Press s to save the
frame as a png image; escape or q closes the window.`,
			Flags:  cmd.RenderFlags(),
			Action: cmd.RenderToWindow,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in preset scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "info",
			Usage:  "print host cpu and memory information",
			Action: cmd.HostInfo,
		},
	}

	app.Run(os.Args)
}
