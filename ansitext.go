// Package ansitext converts byte buffers containing ANSI/VT100 escape
// sequences into positioned, styled text runs for rendering onto a 2D
// canvas.
package ansitext

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/ansitext/logger"
	"github.com/hnimtadd/ansitext/render/engine"
	"github.com/hnimtadd/ansitext/render/geom"
	dw "github.com/mattn/go-runewidth"
)

// View renders ANSI log text into runs delivered to a sink. It holds
// no mutable parse state between calls, a single View can serve any
// number of panels as long as each render is seeded with that panel's
// own origin.
type View struct {
	engine    *engine.Engine
	coalescer *engine.Coalescer
	logger    logger.Logger
}

type Options struct {
	// Metrics supplies text measurement and the line height, in the
	// units the sink draws in.
	Metrics engine.Metrics

	// Sink receives each laid-out run.
	Sink engine.Sink

	// Coalesce merges adjacent same-style runs before they reach the
	// sink.
	Coalesce bool

	Logger logger.Logger
}

func NewView(opts Options) *View {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}

	sink := opts.Sink
	var coalescer *engine.Coalescer
	if opts.Coalesce {
		coalescer = engine.NewCoalescer(sink, opts.Metrics.Measure)
		sink = coalescer.Emit
	}

	return &View{
		engine: engine.New(engine.Options{
			Metrics: opts.Metrics,
			Sink:    sink,
			Logger:  log,
		}),
		coalescer: coalescer,
		logger:    log,
	}
}

// RenderText parses buf from origin, emits runs to the sink and
// returns the final pen position for chaining subsequent layout.
//
// Panics from a misbehaving sink or measurer are recovered and
// returned as errors so one bad log buffer cannot take down the render
// loop.
func (v *View) RenderText(buf []byte, origin geom.Point[float64]) (end geom.Point[float64], err error) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("panic in RenderText", "recovered", r)
			fmt.Println(string(debug.Stack()))
			end = origin
			err = fmt.Errorf("panic in RenderText: %v", r)
		}
	}()
	end = v.engine.Render(buf, origin)
	if v.coalescer != nil {
		v.coalescer.Flush()
	}
	return end, nil
}

// Monospace builds a Metrics for fixed-cell rendering: every terminal
// cell is cellWidth units wide and widths follow go-runewidth cell
// counts. Suitable for terminal grids and fixed-pitch fonts.
func Monospace(cellWidth, lineHeight float64) engine.Metrics {
	return engine.Metrics{
		LineHeight: lineHeight,
		Measure: func(text []byte) float64 {
			return float64(dw.StringWidth(string(text))) * cellWidth
		},
	}
}
