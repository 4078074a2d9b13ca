package tokenizer

func (t *Tokenizer) stepDoctype(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeDoctypeNameState
	case r == '>':
		t.reconsumeIn(BeforeDoctypeNameState)
	default:
		t.errorf("missing-whitespace-before-doctype-name")
		t.reconsumeIn(BeforeDoctypeNameState)
	}
}

func (t *Tokenizer) stepBeforeDoctypeName(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case isASCIIUpper(r):
		t.startDoctype()
		t.doctypeHasName = true
		t.doctypeName = append(t.doctypeName, toLower(r))
		t.state = DoctypeNameState
	case r == 0:
		t.errorf("unexpected-null-character")
		t.startDoctype()
		t.doctypeHasName = true
		t.doctypeName = append(t.doctypeName, '�')
		t.state = DoctypeNameState
	case r == '>':
		t.errorf("missing-doctype-name")
		t.startDoctype()
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.startDoctype()
		t.doctypeHasName = true
		t.doctypeName = append(t.doctypeName, r)
		t.state = DoctypeNameState
	}
}

func (t *Tokenizer) stepDoctypeName(r rune) {
	switch {
	case isWhitespace(r):
		t.state = AfterDoctypeNameState
	case r == '>':
		t.state = DataState
		t.emitDoctype()
	case isASCIIUpper(r):
		t.doctypeName = append(t.doctypeName, toLower(r))
	case r == 0:
		t.errorf("unexpected-null-character")
		t.doctypeName = append(t.doctypeName, '�')
	default:
		t.doctypeName = append(t.doctypeName, r)
	}
}

// stepAfterDoctypeName recognizes the case-insensitive "PUBLIC"/"SYSTEM"
// keywords by accumulating lookahead into kwBuf across repeated calls while
// remaining in AfterDoctypeNameState, since input arrives one code point at
// a time rather than as a lookahead string.
func (t *Tokenizer) stepAfterDoctypeName(r rune) {
	if len(t.kwBuf) == 0 {
		switch {
		case isWhitespace(r):
			return
		case r == '>':
			t.state = DataState
			t.emitDoctype()
			return
		}
	}
	t.kwBuf = append(t.kwBuf, r)

	if ok, complete := runePrefixMatch(t.kwBuf, "PUBLIC", true); ok {
		if complete {
			t.kwBuf = nil
			t.state = AfterDoctypePublicKeywordState
		}
		return
	}
	if ok, complete := runePrefixMatch(t.kwBuf, "SYSTEM", true); ok {
		if complete {
			t.kwBuf = nil
			t.state = AfterDoctypeSystemKeywordState
		}
		return
	}
	t.errorf("invalid-character-sequence-after-doctype-name")
	t.kwBuf = nil
	t.forceQuirks = true
	t.reconsumeIn(BogusDoctypeState)
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeDoctypePublicIdentifierState
	case r == '"':
		t.errorf("missing-whitespace-after-doctype-public-keyword")
		t.doctypeHasPub = true
		t.doctypePublic = nil
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.errorf("missing-whitespace-after-doctype-public-keyword")
		t.doctypeHasPub = true
		t.doctypePublic = nil
		t.state = DoctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.errorf("missing-doctype-public-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.errorf("missing-quote-before-doctype-public-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.doctypeHasPub = true
		t.doctypePublic = nil
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.doctypeHasPub = true
		t.doctypePublic = nil
		t.state = DoctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.errorf("missing-doctype-public-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.errorf("missing-quote-before-doctype-public-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepDoctypePublicIdentifierQuoted(r rune, quote rune) {
	switch {
	case r == quote:
		t.state = AfterDoctypePublicIdentifierState
	case r == 0:
		t.errorf("unexpected-null-character")
		t.doctypePublic = append(t.doctypePublic, '�')
	case r == '>':
		t.errorf("abrupt-doctype-public-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.doctypePublic = append(t.doctypePublic, r)
	}
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BetweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.state = DataState
		t.emitDoctype()
	case r == '"':
		t.errorf("missing-whitespace-between-doctype-public-and-system-identifiers")
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.errorf("missing-whitespace-between-doctype-public-and-system-identifiers")
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierSingleQuotedState
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '>':
		t.state = DataState
		t.emitDoctype()
	case r == '"':
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierSingleQuotedState
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeDoctypeSystemIdentifierState
	case r == '"':
		t.errorf("missing-whitespace-after-doctype-system-keyword")
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.errorf("missing-whitespace-after-doctype-system-keyword")
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.errorf("missing-doctype-system-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.doctypeHasSys = true
		t.doctypeSystem = nil
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.errorf("missing-doctype-system-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.errorf("missing-quote-before-doctype-system-identifier")
		t.forceQuirks = true
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepDoctypeSystemIdentifierQuoted(r rune, quote rune) {
	switch {
	case r == quote:
		t.state = AfterDoctypeSystemIdentifierState
	case r == 0:
		t.errorf("unexpected-null-character")
		t.doctypeSystem = append(t.doctypeSystem, '�')
	case r == '>':
		t.errorf("abrupt-doctype-system-identifier")
		t.forceQuirks = true
		t.state = DataState
		t.emitDoctype()
	default:
		t.doctypeSystem = append(t.doctypeSystem, r)
	}
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '>':
		t.state = DataState
		t.emitDoctype()
	default:
		t.errorf("unexpected-character-after-doctype-system-identifier")
		t.reconsumeIn(BogusDoctypeState)
	}
}

func (t *Tokenizer) stepBogusDoctype(r rune) {
	switch r {
	case '>':
		t.state = DataState
		t.emitDoctype()
	case 0:
		t.errorf("unexpected-null-character")
	default:
		// ignore
	}
}
