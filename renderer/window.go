package renderer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ritobanrc/firework/log"
)

// Polling interval for the window event loop.
const eventPollDelayMs = 16

// Window presents a rendered frame in an SDL2 window. Display blocks until
// the window is closed and must run on the main goroutine as required by
// SDL; pressing s writes the frame to a timestamped PNG in the working
// directory.
type Window struct {
	// Window title. Defaults to "firework".
	Title string
}

func (w *Window) Display(frame *Frame) error {
	logger := log.New("window")

	title := w.Title
	if title == "" {
		title = "firework"
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("window: could not initialize SDL: %v", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(frame.W), int32(frame.H), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("window: could not create window: %v", err)
	}
	defer win.Destroy()

	surface, err := win.GetSurface()
	if err != nil {
		return fmt.Errorf("window: could not get window surface: %v", err)
	}

	img := frame.RGBA()
	for y := 0; y < int(frame.H); y++ {
		for x := 0; x < int(frame.W); x++ {
			surface.Set(x, y, img.RGBAAt(x, y))
		}
	}
	if err = win.UpdateSurface(); err != nil {
		return fmt.Errorf("window: could not update surface: %v", err)
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
					continue
				}
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					return nil
				case sdl.K_s:
					path := fmt.Sprintf("render-%d.png", time.Now().Unix())
					if err := WritePNG(frame, path); err != nil {
						logger.Errorf("could not save frame: %v", err)
						continue
					}
					logger.Noticef("saved frame to %s", path)
				}
			}
		}
		sdl.Delay(eventPollDelayMs)
	}
}
