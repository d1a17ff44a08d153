// Package engine lays out ANSI-colored text as positioned, styled runs.
//
// The engine walks the input once, left to right, splitting it into
// literal spans, control characters and SGR escape sequences. Literal
// spans are paired with the current style and handed to the sink at
// the current pen position; control characters move the pen. No state
// survives between calls and nothing in the input is copied.
package engine

import (
	"github.com/hnimtadd/ansitext/logger"
	"github.com/hnimtadd/ansitext/render/ansi"
	"github.com/hnimtadd/ansitext/render/color"
	"github.com/hnimtadd/ansitext/render/geom"
	"github.com/hnimtadd/ansitext/render/sgr"
	"github.com/hnimtadd/ansitext/render/style"
	"github.com/hnimtadd/ansitext/render/utils"
)

// MaxParams is the maximum number of numeric parameters one escape
// sequence may carry. Further parameters are ignored.
const MaxParams = 24

// refChar is the fixed reference character used for the tab and
// backspace advance width.
var refChar = []byte{'A'}

type parseState uint8

const (
	stateGround parseState = iota
	stateEscape
)

type Options struct {
	Metrics Metrics
	Sink    Sink

	// Palette resolves indexed colors. Defaults to color.Default.
	Palette *color.Palette

	Logger logger.Logger
}

type Engine struct {
	metrics Metrics
	sink    Sink
	palette *color.Palette
	logger  logger.Logger
}

func New(opts Options) *Engine {
	utils.Assert(opts.Metrics.Measure != nil, "engine needs a measure capability")
	utils.Assert(opts.Sink != nil, "engine needs a sink")
	palette := opts.Palette
	if palette == nil {
		palette = &color.Default
	}
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Engine{
		metrics: opts.Metrics,
		sink:    opts.Sink,
		palette: palette,
		logger:  log,
	}
}

// Render parses buf from the given origin, emitting runs to the sink,
// and returns the final pen position so the caller can chain the next
// layout from it.
//
// Each call is a fresh, self-contained parse: the style starts at the
// default and the escape state starts at ground. A zero-length buffer
// is a no-op.
func (e *Engine) Render(buf []byte, origin geom.Point[float64]) geom.Point[float64] {
	if len(buf) == 0 {
		return origin
	}

	cur := cursor{
		pen:        origin,
		lineStart:  origin.X,
		refWidth:   e.metrics.Measure(refChar),
		lineHeight: e.metrics.LineHeight,
	}
	st := style.Default()
	state := stateGround

	// escape-sequence accumulator
	var params [MaxParams]uint16
	paramsIdx := 0
	var acc uint16
	accDigits := 0

	start := 0 // first byte of the pending literal span
	i := 0
	for i < len(buf) {
		c := buf[i]
		switch state {
		case stateGround:
			switch {
			case c == ansi.ESC && i+1 < len(buf) && buf[i+1] == '[':
				e.flush(&cur, buf[start:i], &st)
				state = stateEscape
				paramsIdx, acc, accDigits = 0, 0, 0
				i += 2
				start = i
				continue
			case c == ansi.LF:
				e.flush(&cur, buf[start:i], &st)
				cur.lineFeed()
				start = i + 1
			case c == ansi.CR:
				e.flush(&cur, buf[start:i], &st)
				cur.carriageReturn()
				start = i + 1
			case c == ansi.HT:
				e.flush(&cur, buf[start:i], &st)
				cur.tab()
				start = i + 1
			case c == ansi.BS:
				e.flush(&cur, buf[start:i], &st)
				cur.backspace()
				start = i + 1
			case c <= ansi.US && c != ansi.ESC:
				// zero-width, invisible
				e.flush(&cur, buf[start:i], &st)
				e.logger.Debug("skipping control character", "char", ansi.Name(c))
				start = i + 1
			}
			// A lone ESC not followed by '[' stays in the literal
			// span and passes through to the sink.
			i++

		case stateEscape:
			switch {
			case c >= '0' && c <= '9':
				if accDigits == 0 {
					acc = uint16(c - '0')
				} else {
					acc = acc*10 + uint16(c-'0')
				}
				accDigits++
			case c == ';':
				// A parameter with no digits is code 0.
				if paramsIdx < MaxParams {
					params[paramsIdx] = acc
					paramsIdx++
				}
				acc, accDigits = 0, 0
			case c == 'm':
				if paramsIdx < MaxParams {
					params[paramsIdx] = acc
					paramsIdx++
				}
				e.applySGR(params[:paramsIdx], &st)
				state = stateGround
				start = i + 1
			default:
				// Consume stray bytes until 'm' or end of buffer.
			}
			i++
		}
	}

	if state == stateGround {
		e.flush(&cur, buf[start:], &st)
	} else {
		// Sequence truncated by the end of the buffer. Abandon it,
		// this is tolerated input, not an error.
		e.logger.Debug("abandoning truncated escape sequence")
	}

	// Cursor fixup when the buffer ends in a line break. A trailing
	// "\r\n" must not advance y a second time; a bare trailing "\r"
	// only resets x.
	switch buf[len(buf)-1] {
	case ansi.LF:
		cur.pen.X = cur.lineStart
		if len(buf) == 1 || buf[len(buf)-2] != ansi.CR {
			cur.pen.Y += cur.lineHeight
		}
	case ansi.CR:
		cur.pen.X = cur.lineStart
	}

	return cur.pen
}

// flush emits the pending literal span, if any, at the current pen
// position and advances the pen by its measured width.
func (e *Engine) flush(cur *cursor, text []byte, st *style.Style) {
	if len(text) == 0 {
		return
	}
	run := Run{
		Text: text,
		Pos:  cur.pen,
		Fg:   st.Fg,
		Bold: st.Bold,
	}
	cur.pen.X += e.metrics.Measure(text)
	e.sink(run)
}

// applySGR interprets the accumulated parameters of one completed
// sequence, attribute by attribute, in the order encountered.
func (e *Engine) applySGR(params []uint16, st *style.Style) {
	p := sgr.Parser{Params: params}
	for attr := range p.Iter() {
		if attr == nil {
			continue
		}
		switch attr.Type {
		case sgr.AttributeTypeUnknown:
			e.logger.Debug("ignoring unknown SGR attribute", "params", attr.Unknown)
		default:
			st.Apply(attr, e.palette)
		}
	}
}
