package engine

import (
	"github.com/hnimtadd/ansitext/render/style"
)

// Coalescer is a sink adapter that merges adjacent runs sharing a
// style into one, cutting draw calls for callers that re-render a full
// log buffer every frame. Runs merge only when they sit on the same
// baseline and the second starts exactly where the first ended.
//
// The merged text may point at an internal scratch buffer that is
// reused between flushes, so the wrapped sink must not retain it. Call
// Flush after the render pass to deliver the last pending run.
type Coalescer struct {
	sink    Sink
	measure MeasureFunc

	pending Run
	scratch []byte
	active  bool
	merged  bool
	hash    uint64
	nextX   float64
}

func NewCoalescer(sink Sink, measure MeasureFunc) *Coalescer {
	return &Coalescer{
		sink:    sink,
		measure: measure,
	}
}

// Emit receives one run from the engine. Use this as the engine's
// Sink.
func (c *Coalescer) Emit(r Run) {
	if len(r.Text) == 0 {
		return
	}
	h := style.Style{Fg: r.Fg, Bold: r.Bold}.Hash()
	if c.active && h == c.hash && r.Pos.Y == c.pending.Pos.Y && r.Pos.X == c.nextX {
		if !c.merged {
			c.scratch = append(c.scratch[:0], c.pending.Text...)
			c.merged = true
		}
		c.scratch = append(c.scratch, r.Text...)
		c.pending.Text = c.scratch
		c.nextX += c.measure(r.Text)
		return
	}

	c.Flush()
	c.pending = r
	c.active = true
	c.merged = false
	c.hash = h
	c.nextX = r.Pos.X + c.measure(r.Text)
}

// Flush delivers the pending run, if any, to the wrapped sink.
func (c *Coalescer) Flush() {
	if !c.active {
		return
	}
	c.sink(c.pending)
	c.active = false
	c.merged = false
}
