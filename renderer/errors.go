package renderer

import "errors"

var (
	ErrNoTracers       = errors.New("renderer: no tracers available")
	ErrSceneNotDefined = errors.New("renderer: scene not defined")
	ErrInterrupted     = errors.New("renderer: render interrupted")
)
