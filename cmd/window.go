package cmd

import (
	"context"
	"fmt"

	"github.com/ritobanrc/firework/renderer"
	"github.com/urfave/cli"
)

// RenderToWindow renders a still frame and displays it in an sdl window.
func RenderToWindow(ctx *cli.Context) error {
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

	win := renderer.Window{
		Title: fmt.Sprintf("firework - %s", sceneLabel(ctx)),
	}
	return win.Display(frame)
}
