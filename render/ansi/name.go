package ansi

import "fmt"

// names maps C0 control characters to their mnemonic.
var names = map[byte]string{
	NUL:  "NUL", // Null
	0x01: "SOH", // Start of Heading
	0x02: "STX", // Start of Text
	0x03: "ETX", // End of Text
	0x04: "EOT", // End of Transmission
	0x05: "ENQ", // Enquiry
	0x06: "ACK", // Acknowledge
	BEL:  "BEL", // Bell
	BS:   "BS",  // Backspace
	HT:   "HT",  // Horizontal Tab
	LF:   "LF",  // Line Feed
	VT:   "VT",  // Vertical Tab
	FF:   "FF",  // Form Feed
	CR:   "CR",  // Carriage Return
	0x0E: "SO",  // Shift Out
	0x0F: "SI",  // Shift In
	0x10: "DLE", // Data Link Escape
	0x11: "DC1", // Device Control 1
	0x12: "DC2", // Device Control 2
	0x13: "DC3", // Device Control 3
	0x14: "DC4", // Device Control 4
	0x15: "NAK", // Negative Acknowledge
	0x16: "SYN", // Synchronous Idle
	0x17: "ETB", // End of Transmission Block
	0x18: "CAN", // Cancel
	0x19: "EM",  // End of Medium
	0x1A: "SUB", // Substitute
	ESC:  "ESC", // Escape
	0x1C: "FS",  // File Separator
	0x1D: "GS",  // Group Separator
	0x1E: "RS",  // Record Separator
	US:   "US",  // Unit Separator
	0x7F: "DEL", // Delete
}

// Name returns a readable representation of a control byte for debug
// logging.
func Name(c byte) string {
	if name, ok := names[c]; ok {
		return fmt.Sprintf("%s (0x%02X)", name, c)
	}
	return fmt.Sprintf("0x%02X (%q)", c, rune(c))
}
