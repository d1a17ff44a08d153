package engine

import (
	"github.com/hnimtadd/ansitext/render/color"
	"github.com/hnimtadd/ansitext/render/geom"
)

// Run is a maximal span of literal text sharing one style, positioned
// on the canvas. Text aliases the input buffer, no copy is made; a run
// is only valid for the duration of the sink call and must not be
// mutated or retained.
type Run struct {
	Text []byte
	Pos  geom.Point[float64]
	Fg   color.RGB
	Bold bool
}

// Sink receives each run as it is laid out. The sink is responsible
// for actual drawing.
type Sink func(run Run)

// MeasureFunc returns the rendered width of text in the same units as
// pen coordinates.
type MeasureFunc func(text []byte) float64

// Metrics is the text measurement capability the engine consumes. It
// is supplied by the caller, never computed by the engine.
type Metrics struct {
	Measure    MeasureFunc
	LineHeight float64
}
