package tokenizer

import "github.com/corehtml/html5/namedref"

func (t *Tokenizer) stepCharacterReference(r rune) {
	t.charBuf = []rune{'&'}
	t.matcher.Reset()
	switch {
	case isASCIIAlpha(r) || isASCIIDigit(r):
		t.reconsumeIn(NamedCharacterReferenceState)
	case r == '#':
		t.charBuf = append(t.charBuf, '#')
		t.state = NumericCharacterReferenceState
	default:
		t.flushCharRefLiteral()
		t.reconsumeIn(t.returnState)
	}
}

// flushCharRefLiteral writes charBuf verbatim — either into the current
// attribute value or as character tokens, depending on where the reference
// was being consumed.
func (t *Tokenizer) flushCharRefLiteral() {
	if t.inAttr {
		t.curVal = append(t.curVal, t.charBuf...)
	} else {
		for _, c := range t.charBuf {
			t.emitChar(string(c))
		}
	}
}

func (t *Tokenizer) emitResolvedCharRef(cp1, cp2 rune, hasCP2 bool) {
	if t.inAttr {
		t.curVal = append(t.curVal, cp1)
		if hasCP2 {
			t.curVal = append(t.curVal, cp2)
		}
		return
	}
	t.emitChar(string(cp1))
	if hasCP2 {
		t.emitChar(string(cp2))
	}
}

func (t *Tokenizer) stepNamedCharacterReference(r rune) {
	if t.matcher.Advance(r) == namedref.Dead {
		t.finishNamedCharacterReference(r, true)
		return
	}
	// Alive or AliveAndMatched: keep consuming, the longest match wins.
}

// finishNamedCharacterReference runs once the trie can no longer be
// extended, or input ended mid-match. deadRune is the code point that
// caused the dead transition (not appended to the matcher's buffer);
// hasDeadRune is false when called from EOF, where there is no such rune.
func (t *Tokenizer) finishNamedCharacterReference(deadRune rune, hasDeadRune bool) {
	consumed, cp1, cp2, hasCP2, semicolon, ok := t.matcher.LongestMatch()
	full := t.matcher.Buffer()

	if !ok {
		t.charBuf = append(t.charBuf, full...)
		t.flushCharRefLiteral()
		t.inAttr = false
		if hasDeadRune {
			t.reconsumeReplay([]rune{deadRune})
		}
		return
	}

	matched := full[:consumed]
	extra := append([]rune{}, full[consumed:]...)
	if hasDeadRune {
		extra = append(extra, deadRune)
	}
	var next rune
	if len(extra) > 0 {
		next = extra[0]
	}

	t.charBuf = append(t.charBuf, matched...)
	if t.inAttr && namedref.RejectForAttribute(semicolon, next) {
		t.flushCharRefLiteral()
	} else {
		if !semicolon {
			t.errorf("missing-semicolon-after-character-reference")
		}
		t.emitResolvedCharRef(cp1, cp2, hasCP2)
	}
	t.inAttr = false
	t.reconsumeReplay(extra)
}

// reconsumeReplay switches to the return state and replays rs through it in
// order — the code points a sub-machine read but did not consume as part of
// its own construct.
func (t *Tokenizer) reconsumeReplay(rs []rune) {
	t.state = t.returnState
	for _, r := range rs {
		t.drive(r)
	}
}

func (t *Tokenizer) stepAmbiguousAmpersand(r rune) {
	switch {
	case isASCIIAlpha(r) || isASCIIDigit(r):
		if t.inAttr {
			t.curVal = append(t.curVal, r)
		} else {
			t.emitChar(string(r))
		}
	case r == ';':
		t.errorf("unknown-named-character-reference")
		t.inAttr = false
		t.reconsumeIn(t.returnState)
	default:
		t.inAttr = false
		t.reconsumeIn(t.returnState)
	}
}

func (t *Tokenizer) stepNumericCharacterReference(r rune) {
	t.charCode = 0
	switch r {
	case 'x', 'X':
		t.charBuf = append(t.charBuf, r)
		t.state = HexadecimalCharacterReferenceStartState
	default:
		t.reconsumeIn(DecimalCharacterReferenceStartState)
	}
}

func (t *Tokenizer) stepHexadecimalCharacterReferenceStart(r rune) {
	if isASCIIHexDigit(r) {
		t.reconsumeIn(HexadecimalCharacterReferenceState)
		return
	}
	t.errorf("absence-of-digits-in-numeric-character-reference")
	t.flushCharRefLiteral()
	t.inAttr = false
	t.reconsumeIn(t.returnState)
}

func (t *Tokenizer) stepDecimalCharacterReferenceStart(r rune) {
	if isASCIIDigit(r) {
		t.reconsumeIn(DecimalCharacterReferenceState)
		return
	}
	t.errorf("absence-of-digits-in-numeric-character-reference")
	t.flushCharRefLiteral()
	t.inAttr = false
	t.reconsumeIn(t.returnState)
}

const maxCharCode = 0x10FFFF + 1

func (t *Tokenizer) stepHexadecimalCharacterReference(r rune) {
	switch {
	case isASCIIDigit(r):
		t.charCode = t.charCode*16 + uint32(r-'0')
	case r >= 'a' && r <= 'f':
		t.charCode = t.charCode*16 + uint32(r-'a'+10)
	case r >= 'A' && r <= 'F':
		t.charCode = t.charCode*16 + uint32(r-'A'+10)
	case r == ';':
		t.state = NumericCharacterReferenceEndState
		return
	default:
		t.reconsumeIn(NumericCharacterReferenceEndState)
		return
	}
	if t.charCode > maxCharCode {
		t.charCode = maxCharCode
	}
}

func (t *Tokenizer) stepDecimalCharacterReference(r rune) {
	switch {
	case isASCIIDigit(r):
		t.charCode = t.charCode*10 + uint32(r-'0')
	case r == ';':
		t.state = NumericCharacterReferenceEndState
		return
	default:
		t.reconsumeIn(NumericCharacterReferenceEndState)
		return
	}
	if t.charCode > maxCharCode {
		t.charCode = maxCharCode
	}
}

func isNoncharacterCodePoint(cp uint32) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	switch cp & 0xFFFE {
	case 0xFFFE:
		return true
	}
	return false
}

func (t *Tokenizer) stepNumericCharacterReferenceEnd(r rune) {
	cp := t.charCode
	var result rune
	switch {
	case cp == 0:
		t.errorf("null-character-reference")
		result = '�'
	case cp > 0x10FFFF:
		t.errorf("character-reference-outside-unicode-range")
		result = '�'
	case cp >= 0xD800 && cp <= 0xDFFF:
		t.errorf("surrogate-character-reference")
		result = '�'
	case isNoncharacterCodePoint(cp):
		t.errorf("noncharacter-character-reference")
		result = rune(cp)
	case cp == 0x0D || (cp < 0x20 && cp != 0x09 && cp != 0x0A && cp != 0x0C) || (cp >= 0x7F && cp <= 0x9F):
		if remap, ok := numericRemap[cp]; ok {
			result = remap
		} else {
			t.errorf("control-character-reference")
			result = rune(cp)
		}
	default:
		result = rune(cp)
	}
	if t.inAttr {
		t.curVal = append(t.curVal, result)
	} else {
		t.emitChar(string(result))
	}
	t.inAttr = false
	t.reconsumeIn(t.returnState)
}
