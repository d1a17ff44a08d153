package engine

import (
	"math"

	"github.com/hnimtadd/ansitext/render/geom"
)

// Default tabstop interval, in reference character widths.
const tabstopInterval = 8

// cursor is the layout pen for one render pass. lineStart is the x the
// pen returns to on CR/LF; pen.X never regresses below it.
type cursor struct {
	pen        geom.Point[float64]
	lineStart  float64
	refWidth   float64
	lineHeight float64
}

func (c *cursor) lineFeed() {
	c.pen.X = c.lineStart
	c.pen.Y += c.lineHeight
}

func (c *cursor) carriageReturn() {
	c.pen.X = c.lineStart
}

// tab advances the pen to the next multiple-of-interval tab stop,
// measured relative to the line start.
func (c *cursor) tab() {
	tabWidth := c.refWidth * tabstopInterval
	if tabWidth <= 0 {
		return
	}
	column := c.pen.X - c.lineStart
	next := (math.Floor(column/tabWidth) + 1) * tabWidth
	c.pen.X = c.lineStart + next
}

func (c *cursor) backspace() {
	c.pen.X = math.Max(c.lineStart, c.pen.X-c.refWidth)
}
