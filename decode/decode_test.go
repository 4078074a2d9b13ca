package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeAll(enc Encoding, input []byte) []rune {
	var out []rune
	d := NewDecoder(enc, func(r rune) { out = append(out, r) })
	for _, b := range input {
		d.PushByte(b)
	}
	d.PushEOF()
	return out
}

func TestUTF8BOMConsumedSilently(t *testing.T) {
	// EF BB BF (UTF-8 BOM) + U+3042 (あ) encoded as E3 81 82.
	got := decodeAll(UTF8, []byte{0xEF, 0xBB, 0xBF, 0xE3, 0x81, 0x82})
	require.Equal(t, []rune{0x3042}, got, "the BOM must be discarded")
}

func TestUTF16BEBOMSelectsUTF16BE(t *testing.T) {
	// FE FF BOM + 0041 ("A").
	got := decodeAll(UTF8, []byte{0xFE, 0xFF, 0x00, 0x41})
	require.Equal(t, []rune{'A'}, got)
}

func TestUTF16LEBOMSelectsUTF16LE(t *testing.T) {
	// FF FE BOM + 0041 ("A") little-endian.
	got := decodeAll(UTF8, []byte{0xFF, 0xFE, 0x41, 0x00})
	require.Equal(t, []rune{'A'}, got)
}

func TestNoBOMFallsBackToFallbackEncoding(t *testing.T) {
	got := decodeAll(UTF8, []byte("abc"))
	require.Equal(t, "abc", string(got))
}

func TestNoBOMFallsBackToConfiguredLegacyEncoding(t *testing.T) {
	// 0xE9 in windows-1252 is U+00E9 (é).
	got := decodeAll(Windows1252, []byte{0xE9})
	require.Equal(t, []rune{0xE9}, got)
}

func TestMalformedUTF8EmitsReplacementCharacter(t *testing.T) {
	got := decodeAll(UTF8, []byte{0xFF})
	require.Equal(t, []rune{0xFFFD}, got)
}

func TestShortMultiByteSequenceFlushedAsReplacementAtEOF(t *testing.T) {
	// A two-byte UTF-8 lead byte with no continuation byte before EOF.
	got := decodeAll(UTF8, []byte{0xC3})
	require.Equal(t, []rune{0xFFFD}, got, "a truncated sequence must flush as a single replacement character")
}

func TestXUserDefinedHighBytesMapToPrivateUseArea(t *testing.T) {
	got := decodeAll(XUserDefined, []byte{0x80, 0x41})
	require.Equal(t, []rune{0xF780, 'A'}, got)
}

func TestReplacementEncodingAlwaysYieldsOneFFFD(t *testing.T) {
	got := decodeAll(Replacement, []byte("anything at all"))
	require.Equal(t, []rune{0xFFFD}, got)
}
