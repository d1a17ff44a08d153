package color

import "github.com/hnimtadd/ansitext/render/utils"

// RGB is a 24-bit color. Opacity is implicit and always full.
type RGB struct {
	R, G, B uint8
}

// White is the default foreground for a fresh parse.
var White = RGB{0xFF, 0xFF, 0xFF}

// Palette is the 256 color terminal palette.
type Palette [256]RGB

type ColorType uint8

const (
	ColorTypeBlack ColorType = iota
	ColorTypeRed
	ColorTypeGreen
	ColorTypeYellow
	ColorTypeBlue
	ColorTypeMagenta
	ColorTypeCyan
	ColorTypeWhite
	ColorTypeBrightBlack
	ColorTypeBrightRed
	ColorTypeBrightGreen
	ColorTypeBrightYellow
	ColorTypeBrightBlue
	ColorTypeBrightMagenta
	ColorTypeBrightCyan
	ColorTypeBrightWhite
)

// RGB returns the console hue for one of the 16 named colors. The
// values are tuned for distinctiveness on a dark log panel, they are
// not mandated by any protocol.
func (t ColorType) RGB() RGB {
	switch t {
	case ColorTypeBlack:
		return RGB{40, 40, 40}
	case ColorTypeRed:
		return RGB{220, 80, 80}
	case ColorTypeGreen:
		return RGB{80, 220, 80}
	case ColorTypeYellow:
		return RGB{220, 220, 80}
	case ColorTypeBlue:
		return RGB{80, 80, 220}
	case ColorTypeMagenta:
		return RGB{220, 80, 220}
	case ColorTypeCyan:
		return RGB{80, 220, 220}
	case ColorTypeWhite:
		return RGB{220, 220, 220}
	case ColorTypeBrightBlack:
		return RGB{160, 160, 160}
	case ColorTypeBrightRed:
		return RGB{255, 120, 120}
	case ColorTypeBrightGreen:
		return RGB{120, 255, 120}
	case ColorTypeBrightYellow:
		return RGB{255, 255, 120}
	case ColorTypeBrightBlue:
		return RGB{120, 120, 255}
	case ColorTypeBrightMagenta:
		return RGB{255, 120, 255}
	case ColorTypeBrightCyan:
		return RGB{120, 255, 255}
	case ColorTypeBrightWhite:
		return RGB{255, 255, 255}
	default:
		return RGB{0, 0, 0}
	}
}

// Default is the palette used to resolve indexed SGR colors. Built once
// at process start, never mutated afterwards.
//
// Layout: 0-15 named console colors, 16-231 a 6x6x6 cube with axis
// step 51, 232-255 a 24-step grayscale ramp starting at 8 with step 10.
var Default = func() Palette {
	var result Palette

	// Named values
	i := 0
	for ; i < 16; i++ {
		result[i] = ColorType(i).RGB()
	}

	// Cube
	utils.Assert(i == 16)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				result[i] = RGB{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
				}
				i++
			}
		}
	}

	// Gray ramp
	utils.Assert(i == 232) // 16+6*6*6
	for n := 0; i < len(result); i, n = i+1, n+1 {
		value := uint8(8 + n*10)
		result[i] = RGB{value, value, value}
	}

	return result
}()
