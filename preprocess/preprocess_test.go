package preprocess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(input []rune) ([]rune, []string) {
	var out []rune
	var errs []string
	s := New(func(r rune) { out = append(out, r) }, func(code string) { errs = append(errs, code) })
	for _, r := range input {
		s.Push(r)
	}
	s.Close()
	return out, errs
}

func TestNewlineNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input []rune
		want  string
	}{
		{"LF", []rune("a\nb"), "a\nb"},
		{"CR", []rune("a\rb"), "a\nb"},
		{"CRLF", []rune("a\r\nb"), "a\nb"},
		{"trailing CR", []rune("a\r"), "a\n"},
		{"CRCR", []rune("a\r\rb"), "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := collect(tt.input)
			require.Equal(t, tt.want, string(out))
		})
	}
}

func TestSurrogateReported(t *testing.T) {
	_, errs := collect([]rune{0xD800})
	require.Equal(t, []string{"surrogate-in-input-stream"}, errs)
}

func TestNoncharacterReported(t *testing.T) {
	_, errs := collect([]rune{0xFFFE})
	require.Equal(t, []string{"noncharacter-in-input-stream"}, errs)
}

func TestAllowedWhitespaceControlsNotReported(t *testing.T) {
	_, errs := collect([]rune{'\t', '\n', '\f', ' '})
	require.Empty(t, errs)
}

func TestDisallowedControlReported(t *testing.T) {
	_, errs := collect([]rune{0x01})
	require.Equal(t, []string{"control-character-in-input-stream"}, errs)
}

func TestValidScalar(t *testing.T) {
	require.True(t, ValidScalar('a'))
	require.False(t, ValidScalar(0xD800))
}
