// SGR (Select Graphic Rendition) attribute parsing and types
//
// This is implemented based on: https://vt100.net/docs/vt510-rm/SGR.html
package sgr

import (
	"iter"
	"math"

	"github.com/hnimtadd/ansitext/render/color"
)

type AttributeType uint8

const (
	AttributeTypeUnset AttributeType = iota

	// Bold the text.
	AttributeTypeBold
	AttributeTypeResetBold

	// Fg from the 256 color palette.
	AttributeTypePaletteFg

	// Fg direct color.
	AttributeTypeDirectFg

	// Unknown
	AttributeTypeUnknown
)

type Attribute struct {
	Type      AttributeType
	PaletteFg uint8
	DirectFg  color.RGB

	// The raw parameters that produced an unknown attribute, for
	// logging.
	Unknown []uint16
}

// Parser interprets the numeric parameters of one `ESC [ ... m`
// sequence. Parameters that select an indexed or direct color consume
// their trailing arguments; everything this engine does not model
// surfaces as an unknown attribute.
type Parser struct {
	Params []uint16
	idx    int
}

// next returns a pull function yielding parsed attributes.
// Result of the pull function:
//   - attr: parsed value
//   - ok: whether another pull is available.
func (p *Parser) next() func() (attr *Attribute, ok bool) {
	p.idx = 0
	return func() (*Attribute, bool) {
		if p.idx >= len(p.Params) {
			// If we are at index zero we must have an empty list,
			// and an empty list implicitly means a full reset.
			if p.idx == 0 {
				p.idx++
				return &Attribute{Type: AttributeTypeUnset}, false
			}
			return nil, false
		}
		slice := p.Params[p.idx:]
		p.idx++

		// Based on: https://en.wikipedia.org/wiki/ANSI_escape_code
		switch slice[0] {
		case 0:
			return &Attribute{Type: AttributeTypeUnset}, true
		case 1:
			return &Attribute{Type: AttributeTypeBold}, true
		case 22:
			return &Attribute{Type: AttributeTypeResetBold}, true
		case 30, 31, 32, 33, 34, 35, 36, 37:
			return &Attribute{
				Type:      AttributeTypePaletteFg,
				PaletteFg: uint8(slice[0] - 30),
			}, true
		case 90, 91, 92, 93, 94, 95, 96, 97:
			return &Attribute{
				Type:      AttributeTypePaletteFg,
				PaletteFg: uint8(slice[0] - 90 + 8),
			}, true
		case 38:
			if len(slice) >= 3 && slice[1] == 5 {
				// indexed color
				p.idx += 2
				n := slice[2]
				if n > math.MaxUint8 {
					// The three palette bands only cover 0-255 so a
					// larger index selects nothing.
					return &Attribute{
						Type:    AttributeTypeUnknown,
						Unknown: slice[:3],
					}, true
				}
				return &Attribute{
					Type:      AttributeTypePaletteFg,
					PaletteFg: uint8(n),
				}, true
			}
			if len(slice) >= 5 && slice[1] == 2 {
				// direct-color (r, g, b)
				p.idx += 4
				// truncate, components must fit a uint8 and we don't
				// know the behavior of a term when they don't
				return &Attribute{
					Type: AttributeTypeDirectFg,
					DirectFg: color.RGB{
						R: uint8(min(math.MaxUint8, slice[2])),
						G: uint8(min(math.MaxUint8, slice[3])),
						B: uint8(min(math.MaxUint8, slice[4])),
					},
				}, true
			}
			// ill-formed color selector, surface whatever is left
			p.idx = len(p.Params)
			return &Attribute{
				Type:    AttributeTypeUnknown,
				Unknown: slice,
			}, true
		default:
			return &Attribute{
				Type:    AttributeTypeUnknown,
				Unknown: slice[:1],
			}, true
		}
	}
}

// Iter returns an iter.Seq[*Attribute] that yields the attributes.
func (p *Parser) Iter() iter.Seq[*Attribute] {
	next := p.next()
	return func(yield func(*Attribute) bool) {
		for {
			attr, ok := next()
			if !yield(attr) {
				return
			}
			if !ok {
				return
			}
		}
	}
}
