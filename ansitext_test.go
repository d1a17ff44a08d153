package ansitext

import (
	"testing"

	"github.com/hnimtadd/ansitext/render/color"
	"github.com/hnimtadd/ansitext/render/engine"
	"github.com/hnimtadd/ansitext/render/geom"
	"github.com/stretchr/testify/assert"
)

type runRecorder struct {
	runs []engine.Run
}

func (r *runRecorder) sink(run engine.Run) {
	r.runs = append(r.runs, run)
}

func TestViewRenderText(t *testing.T) {
	rec := &runRecorder{}
	view := NewView(Options{
		Metrics: Monospace(10, 16),
		Sink:    rec.sink,
	})

	end, err := view.RenderText([]byte("\x1b[31mhi\x1b[0m!"), geom.Point[float64]{})

	assert.NoError(t, err)
	assert.Len(t, rec.runs, 2)
	assert.Equal(t, color.Default[1], rec.runs[0].Fg)
	assert.Equal(t, color.White, rec.runs[1].Fg)
	assert.Equal(t, geom.NewPoint(30.0, 0.0), end)
}

func TestViewRenderTextRecoversSinkPanic(t *testing.T) {
	view := NewView(Options{
		Metrics: Monospace(10, 16),
		Sink:    func(engine.Run) { panic("bad sink") },
	})

	origin := geom.NewPoint(2.0, 4.0)
	end, err := view.RenderText([]byte("boom"), origin)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad sink")
	assert.Equal(t, origin, end)
}

func TestViewCoalesce(t *testing.T) {
	rec := &runRecorder{}
	view := NewView(Options{
		Metrics:  Monospace(10, 16),
		Sink:     rec.sink,
		Coalesce: true,
	})

	// The trailing pending run must be flushed by RenderText itself.
	_, err := view.RenderText([]byte("ab\x01cd"), geom.Point[float64]{})

	assert.NoError(t, err)
	assert.Len(t, rec.runs, 1)
	assert.Equal(t, []byte("abcd"), rec.runs[0].Text)
}

type fakeSource struct {
	name string
	bufs [][]byte
}

func (f *fakeSource) Name() string          { return f.name }
func (f *fakeSource) CollectLogs() [][]byte { return f.bufs }

func TestViewRenderSources(t *testing.T) {
	rec := &runRecorder{}
	view := NewView(Options{
		Metrics: Monospace(10, 16),
		Sink:    rec.sink,
	})

	sources := []Source{
		&fakeSource{name: "plugin-a", bufs: [][]byte{[]byte("one\n")}},
		&fakeSource{name: "plugin-b", bufs: [][]byte{[]byte("two"), []byte("!")}},
	}

	end, err := view.RenderSources(sources, geom.Point[float64]{})

	assert.NoError(t, err)
	assert.Len(t, rec.runs, 3)
	// "one\n" ends with a bare newline, so the next source starts two
	// lines down (the trailing-newline fixup advances in addition to
	// the in-scan line feed).
	assert.Equal(t, geom.NewPoint(0.0, 32.0), rec.runs[1].Pos)
	// "!" chains directly after "two" on the same line.
	assert.Equal(t, geom.NewPoint(30.0, 32.0), rec.runs[2].Pos)
	assert.Equal(t, geom.NewPoint(40.0, 32.0), end)
}

func TestViewRenderSourcesPropagatesError(t *testing.T) {
	view := NewView(Options{
		Metrics: Monospace(10, 16),
		Sink:    func(engine.Run) { panic("sink down") },
	})

	sources := []Source{
		&fakeSource{name: "plugin-a", bufs: [][]byte{[]byte("x")}},
	}
	_, err := view.RenderSources(sources, geom.Point[float64]{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "plugin-a")
}
