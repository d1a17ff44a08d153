package ansitext

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// Normalize converts a log buffer to plain UTF-8. Log pipes on some
// platforms hand over UTF-16 with a byte order mark; the engine itself
// passes bytes through untouched, so decode those here first. Buffers
// without a BOM are returned as-is, unvalidated.
func Normalize(buf []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(buf, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		return dec.Bytes(buf)
	case bytes.HasPrefix(buf, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return dec.Bytes(buf)
	case bytes.HasPrefix(buf, bomUTF8):
		return buf[len(bomUTF8):], nil
	default:
		return buf, nil
	}
}
