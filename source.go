package ansitext

import (
	"fmt"

	"github.com/hnimtadd/ansitext/render/geom"
)

// Source is one log producer, typically a plugin or panel. The caller
// owns the collection of sources and passes it explicitly per render
// step; the engine never reaches into ambient global state.
type Source interface {
	Name() string

	// CollectLogs returns the buffers to render, in order. The view
	// reads them, it never mutates or retains them.
	CollectLogs() [][]byte
}

// RenderSources renders each source's buffers in sequence, chaining
// the pen from one buffer to the next, and returns the final pen.
func (v *View) RenderSources(sources []Source, origin geom.Point[float64]) (geom.Point[float64], error) {
	pen := origin
	for _, src := range sources {
		for _, buf := range src.CollectLogs() {
			var err error
			pen, err = v.RenderText(buf, pen)
			if err != nil {
				return pen, fmt.Errorf("render source %q: %w", src.Name(), err)
			}
		}
	}
	return pen, nil
}
