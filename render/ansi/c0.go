package ansi

// C0 (7-bit) control characters from ANSI.
//
// Only the characters the layout engine reacts to are named here;
// everything else below US is consumed as a zero-width byte.
//
// see chapter 3 of the VT100 user guide for the full set:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
const (
	NUL byte = 0x00 // Null (Caret: ^@, Char: \0)
	BEL byte = 0x07 // Bell (Caret: ^G, Char: \a)
	BS  byte = 0x08 // Backspace (Caret: ^H, Char: \b)
	HT  byte = 0x09 // Horizontal tab (Caret: ^I, Char: \t)
	LF  byte = 0x0A // Line feed (Caret: ^J, Char: \n)
	VT  byte = 0x0B // Vertical tab (Caret: ^K, Char: \v)
	FF  byte = 0x0C // Form feed (Caret: ^L, Char: \f)
	CR  byte = 0x0D // Carriage return (Caret: ^M, Char: \r)
	ESC byte = 0x1B // Escape (Caret: ^[)
	US  byte = 0x1F // Unit separator, the highest C0 code
)
