package ansitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "plain UTF-8 passes through",
			input:    []byte("plain \x1b[31mred\x1b[0m"),
			expected: []byte("plain \x1b[31mred\x1b[0m"),
		},
		{
			name:     "UTF-8 BOM is stripped",
			input:    []byte{0xEF, 0xBB, 0xBF, 'h', 'i'},
			expected: []byte("hi"),
		},
		{
			name:     "UTF-16 LE with BOM",
			input:    []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
			expected: []byte("hi"),
		},
		{
			name:     "UTF-16 BE with BOM",
			input:    []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'},
			expected: []byte("hi"),
		},
		{
			name:     "UTF-16 LE escape sequence survives decoding",
			input:    []byte{0xFF, 0xFE, 0x1B, 0x00, '[', 0x00, 'm', 0x00},
			expected: []byte("\x1b[m"),
		},
		{
			name:     "empty input",
			input:    []byte{},
			expected: []byte{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNormalizePlainInputIsNotCopied(t *testing.T) {
	input := []byte("no bom here")
	got, err := Normalize(input)
	assert.NoError(t, err)
	assert.Same(t, &input[0], &got[0])
}
