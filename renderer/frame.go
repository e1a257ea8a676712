package renderer

import (
	"image"
	"image/png"
	"math"
	"os"
)

// Frame holds the gamma corrected output of a render. Pixels are stored
// row major with the top row first, three float32 channels per pixel.
type Frame struct {
	W, H uint32
	Pix  []float32
}

// frameFromAccum applies the gamma exponent to a linear accumulation
// buffer and wraps the result in a Frame.
func frameFromAccum(accum []float32, w, h uint32, gamma float32) *Frame {
	frame := &Frame{
		W:   w,
		H:   h,
		Pix: make([]float32, len(accum)),
	}
	for i, v := range accum {
		frame.Pix[i] = float32(math.Pow(float64(v), float64(gamma)))
	}
	return frame
}

// RGBA converts the frame into an 8-bit RGBA image. Channel values are
// clamped to [0, 1] before scaling so that 1.0 maps to 255.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.W), int(f.H)))
	for y := uint32(0); y < f.H; y++ {
		for x := uint32(0); x < f.W; x++ {
			src := (y*f.W + x) * 3
			dst := img.PixOffset(int(x), int(y))
			img.Pix[dst] = quantize(f.Pix[src])
			img.Pix[dst+1] = quantize(f.Pix[src+1])
			img.Pix[dst+2] = quantize(f.Pix[src+2])
			img.Pix[dst+3] = 0xff
		}
	}
	return img
}

func quantize(v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v * 255.99)
}

// WritePNG encodes the frame as a PNG file at the given path.
func WritePNG(frame *Frame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(file, frame.RGBA()); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
