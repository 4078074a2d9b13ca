// Package decode implements the byte-stream-to-scalar-value decode
// pipeline of spec §4.1: BOM sniffing, encoding dispatch, and the
// Replacement/Fatal error policies from the WHATWG Encoding Standard.
//
// The legacy single/multi-byte table lookups are delegated to
// golang.org/x/text/encoding and its subpackages — the module's "decode
// one byte, encode one scalar" collaborator (spec.md §1). This package
// owns only the BOM sniff, the encoding dispatch, and the streaming
// push-byte contract.
package decode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// Encoding names every legacy encoding spec.md §4.1 requires support for.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF16BE
	UTF16LE
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_10
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	Windows1250
	Windows1251
	Windows1252
	Windows1253
	Windows1254
	Windows1255
	Windows1256
	Windows1257
	Windows1258
	IBM866
	KOI8R
	KOI8U
	Macintosh
	XMacCyrillic
	Windows874
	GBK
	GB18030
	Big5
	EUCJP
	ISO2022JP
	ShiftJIS
	EUCKR
	Replacement
	XUserDefined
)

// xtextEncodings maps every legacy, table-driven Encoding to the
// golang.org/x/text/encoding value that performs its byte<->scalar
// conversion. UTF8, UTF16BE/LE, Replacement and XUserDefined (mostly) are
// handled directly below instead, since x/text models the first three as
// unicode.UTF8/UTF16 transforms with their own BOM behavior that would
// fight this package's own BOM sniff.
var xtextEncodings = map[Encoding]encoding.Encoding{
	ISO8859_2:    charmap.ISO8859_2,
	ISO8859_3:    charmap.ISO8859_3,
	ISO8859_4:    charmap.ISO8859_4,
	ISO8859_5:    charmap.ISO8859_5,
	ISO8859_6:    charmap.ISO8859_6,
	ISO8859_7:    charmap.ISO8859_7,
	ISO8859_8:    charmap.ISO8859_8,
	ISO8859_10:   charmap.ISO8859_10,
	ISO8859_13:   charmap.ISO8859_13,
	ISO8859_14:   charmap.ISO8859_14,
	ISO8859_15:   charmap.ISO8859_15,
	ISO8859_16:   charmap.ISO8859_16,
	Windows1250:  charmap.Windows1250,
	Windows1251:  charmap.Windows1251,
	Windows1252:  charmap.Windows1252,
	Windows1253:  charmap.Windows1253,
	Windows1254:  charmap.Windows1254,
	Windows1255:  charmap.Windows1255,
	Windows1256:  charmap.Windows1256,
	Windows1257:  charmap.Windows1257,
	Windows1258:  charmap.Windows1258,
	IBM866:       charmap.CodePage866,
	KOI8R:        charmap.KOI8R,
	KOI8U:        charmap.KOI8U,
	Macintosh:    charmap.Macintosh,
	XMacCyrillic: charmap.MacintoshCyrillic,
	Windows874:   charmap.Windows874,
	GBK:          simplifiedchinese.GBK,
	GB18030:      simplifiedchinese.GB18030,
	Big5:         traditionalchinese.Big5,
	EUCJP:        japanese.EUCJP,
	ISO2022JP:    japanese.ISO2022JP,
	ShiftJIS:     japanese.ShiftJIS,
	EUCKR:        korean.EUCKR,
}

// ErrorPolicy distinguishes decoder recovery (Replacement, non-fatal) from
// encoder recovery (Fatal), per spec §4.1 and §7.
type ErrorPolicy int

const (
	Replacement ErrorPolicy = iota
	Fatal
)

// Decoder turns a pushed byte stream into emitted Unicode scalar values.
// It begins in a BOM-sniffing sub-state, buffering up to three bytes
// before committing to an encoding.
type Decoder struct {
	emit func(rune)

	fallback Encoding
	chosen   Encoding
	chosenOK bool

	sniff    []byte
	sniffing bool

	xdec  transform.Transformer
	utf16 *utf16Decoder

	// buf accumulates undecoded bytes between Transform calls; x/text
	// transformers need enough source to decode a full multi-byte
	// sequence, and report ErrShortSrc when they don't have it yet.
	buf []byte
	tmp [256]byte

	// utf8buf accumulates a partial UTF-8 sequence between PushByte calls.
	utf8buf []byte

	replacementEmitted bool
}

// NewDecoder returns a Decoder that falls back to fallbackEnc if no BOM is
// present, emitting decoded scalars to emit.
func NewDecoder(fallbackEnc Encoding, emit func(rune)) *Decoder {
	return &Decoder{
		emit:     emit,
		fallback: fallbackEnc,
		sniffing: true,
		sniff:    make([]byte, 0, 3),
	}
}

// PushByte feeds one input byte through BOM sniffing (if still pending)
// and then through the chosen encoding's decoder.
func (d *Decoder) PushByte(b byte) {
	if d.sniffing {
		d.sniff = append(d.sniff, b)
		if d.trySniff() {
			return
		}
		if len(d.sniff) < 3 {
			return
		}
		// No BOM matched in three bytes: flush the buffered bytes
		// through the fallback encoding.
		d.commit(d.fallback)
		pending := d.sniff
		d.sniff = nil
		for _, pb := range pending {
			d.decodeByte(pb)
		}
		return
	}
	d.decodeByte(b)
}

// trySniff examines the buffered prefix and commits to an encoding as soon
// as it can decide. It returns true if sniffing is resolved (BOM found, or
// not enough bytes yet to know).
func (d *Decoder) trySniff() bool {
	s := d.sniff
	switch {
	case len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF:
		d.commit(UTF8)
		d.sniff = nil
		return true
	case len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF:
		d.commit(UTF16BE)
		rest := s[2:]
		d.sniff = nil
		for _, b := range rest {
			d.decodeByte(b)
		}
		return true
	case len(s) >= 2 && s[0] == 0xFF && s[1] == 0xFE:
		d.commit(UTF16LE)
		rest := s[2:]
		d.sniff = nil
		for _, b := range rest {
			d.decodeByte(b)
		}
		return true
	}
	return len(s) < 3
}

func (d *Decoder) commit(e Encoding) {
	d.chosen = e
	d.chosenOK = true
	d.sniffing = false
	switch e {
	case UTF16BE:
		d.utf16 = newUTF16Decoder(false)
	case UTF16LE:
		d.utf16 = newUTF16Decoder(true)
	case UTF8, Replacement, XUserDefined:
		// Handled directly in decodeByte.
	default:
		if xe, ok := xtextEncodings[e]; ok {
			d.xdec = xe.NewDecoder()
		}
	}
}

func (d *Decoder) decodeByte(b byte) {
	switch d.chosen {
	case UTF8:
		d.decodeUTF8Byte(b)
	case UTF16BE, UTF16LE:
		d.utf16.pushByte(b, d.emit)
	case Replacement:
		// The replacement encoding ignores all input and yields a single
		// U+FFFD, per the WHATWG Encoding Standard; nothing left to do
		// per byte once the marker has been emitted at PushEOF/first byte.
		if !d.replacementEmitted {
			d.emit(0xFFFD)
			d.replacementEmitted = true
		}
	case XUserDefined:
		if b < 0x80 {
			d.emit(rune(b))
		} else {
			d.emit(rune(0xF780 + rune(b) - 0x80))
		}
	default:
		d.buf = append(d.buf, b)
		d.drainXText(false)
	}
}

func (d *Decoder) drainXText(atEOF bool) {
	for {
		n, m, err := d.xdec.Transform(d.tmp[:], d.buf, atEOF)
		for i := 0; i < n; {
			r, size := utf8.DecodeRune(d.tmp[i:n])
			if r == utf8.RuneError && size <= 1 {
				d.emit(0xFFFD)
				i++
				continue
			}
			d.emit(r)
			i += size
		}
		d.buf = d.buf[m:]
		if err == transform.ErrShortDst {
			continue
		}
		if err == transform.ErrShortSrc && !atEOF {
			return
		}
		if len(d.buf) > 0 && atEOF {
			// Malformed trailing bytes: replace and stop.
			d.emit(0xFFFD)
			d.buf = nil
		}
		return
	}
}

// decodeUTF8Byte accumulates bytes of a UTF-8 sequence and emits a scalar
// (or U+FFFD on malformed input) once the sequence is complete.
func (d *Decoder) decodeUTF8Byte(b byte) {
	d.utf8buf = append(d.utf8buf, b)
	for len(d.utf8buf) > 0 {
		r, size := utf8.DecodeRune(d.utf8buf)
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(d.utf8buf) {
				// Still waiting for more continuation bytes.
				return
			}
			d.emit(0xFFFD)
			d.utf8buf = d.utf8buf[1:]
			continue
		}
		d.emit(r)
		d.utf8buf = d.utf8buf[size:]
	}
}

// PushEOF flushes any buffered partial sequence and finalizes decoding.
func (d *Decoder) PushEOF() {
	if d.sniffing {
		d.commit(d.fallback)
		pending := d.sniff
		d.sniff = nil
		for _, b := range pending {
			d.decodeByte(b)
		}
	}
	if d.xdec != nil {
		d.drainXText(true)
	}
	if d.utf16 != nil {
		d.utf16.close(d.emit)
	}
	if len(d.utf8buf) > 0 {
		d.emit(0xFFFD)
		d.utf8buf = nil
	}
}
