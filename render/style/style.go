package style

import (
	"fmt"

	"github.com/hnimtadd/ansitext/render/color"
	"github.com/hnimtadd/ansitext/render/sgr"
	"github.com/hnimtadd/ansitext/render/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Style is the rendition state for a run of text. Exactly one Style is
// current at any offset of a parse; escape sequences seen so far fully
// determine it.
type Style struct {
	Fg   color.RGB
	Bold bool
}

// Default returns the style in effect at the start of a parse: opaque
// white foreground, not bold.
func Default() Style {
	return Style{Fg: color.White}
}

func (s *Style) Reset() {
	*s = Default()
}

func (s *Style) IsDefault() bool {
	return *s == Default()
}

// Apply mutates the style according to one parsed SGR attribute.
// Unknown attributes leave the style untouched.
func (s *Style) Apply(attr *sgr.Attribute, palette *color.Palette) {
	switch attr.Type {
	case sgr.AttributeTypeUnset:
		s.Reset()
	case sgr.AttributeTypeBold:
		s.Bold = true
	case sgr.AttributeTypeResetBold:
		s.Bold = false
	case sgr.AttributeTypePaletteFg:
		s.Fg = palette[attr.PaletteFg]
	case sgr.AttributeTypeDirectFg:
		s.Fg = attr.DirectFg
	}
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}

func (s Style) Equals(other Style) bool {
	return s.Hash() == other.Hash()
}
