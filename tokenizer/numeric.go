package tokenizer

// numericRemap is the windows-1252 range remap table from spec §6 item 5:
// certain numeric character references in the C1 control range are
// historically treated as windows-1252 code points instead of their literal
// Unicode values, per the WHATWG Encoding Standard's "numeric character
// reference end state" table.
var numericRemap = map[uint32]rune{
	0x80: '€', // EURO SIGN
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}

// illegalNumericReplacement reports whether a numeric character reference's
// resolved code point is entirely disallowed, returning U+FFFD as its
// replacement when it is (as opposed to remapped or
// merely reported as a parse error), per the numeric-character-reference
// end state's "any other code point" table plus noncharacter/surrogate
// handling.
func illegalNumericReplacement(cp uint32) (rune, bool) {
	switch {
	case cp == 0:
		return '�', true
	case cp > 0x10FFFF:
		return '�', true
	case cp >= 0xD800 && cp <= 0xDFFF:
		return '�', true
	}
	return 0, false
}
