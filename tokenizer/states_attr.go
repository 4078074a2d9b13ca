package tokenizer

func (t *Tokenizer) beginAttr() {
	t.finishAttr()
	t.curName = nil
	t.curVal = nil
	t.hasCurAttr = true
}

func (t *Tokenizer) stepBeforeAttributeName(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '/' || r == '>':
		t.reconsumeIn(AfterAttributeNameState)
	default:
		t.beginAttr()
		t.reconsumeIn(AttributeNameState)
	}
}

func (t *Tokenizer) stepAttributeName(r rune) {
	switch {
	case isWhitespace(r) || r == '/' || r == '>':
		t.reconsumeIn(AfterAttributeNameState)
	case r == '=':
		t.state = BeforeAttributeValueState
	case isASCIIUpper(r):
		t.curName = append(t.curName, toLower(r))
	case r == 0:
		t.errorf("unexpected-null-character")
		t.curName = append(t.curName, '�')
	case r == '"' || r == '\'' || r == '<':
		t.errorf("unexpected-character-in-attribute-name")
		t.curName = append(t.curName, r)
	default:
		t.curName = append(t.curName, r)
	}
}

func (t *Tokenizer) stepAfterAttributeName(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '/':
		t.state = SelfClosingStartTagState
	case r == '=':
		t.state = BeforeAttributeValueState
	case r == '>':
		t.state = DataState
		t.emitTag()
	default:
		t.beginAttr()
		t.reconsumeIn(AttributeNameState)
	}
}

func (t *Tokenizer) stepBeforeAttributeValue(r rune) {
	switch {
	case isWhitespace(r):
		// ignore
	case r == '"':
		t.state = AttributeValueDoubleQuotedState
	case r == '\'':
		t.state = AttributeValueSingleQuotedState
	case r == '>':
		t.errorf("missing-attribute-value")
		t.state = DataState
		t.emitTag()
	default:
		t.reconsumeIn(AttributeValueUnquotedState)
	}
}

func (t *Tokenizer) stepAttributeValueQuoted(r rune, quote rune) {
	switch r {
	case quote:
		t.state = AfterAttributeValueQuotedState
	case '&':
		t.inAttr = true
		t.returnState = t.state
		t.state = CharacterReferenceState
	case 0:
		t.errorf("unexpected-null-character")
		t.curVal = append(t.curVal, '�')
	default:
		t.curVal = append(t.curVal, r)
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeAttributeNameState
	case r == '&':
		t.inAttr = true
		t.returnState = AttributeValueUnquotedState
		t.state = CharacterReferenceState
	case r == '>':
		t.state = DataState
		t.emitTag()
	case r == 0:
		t.errorf("unexpected-null-character")
		t.curVal = append(t.curVal, '�')
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.errorf("unexpected-character-in-unquoted-attribute-value")
		t.curVal = append(t.curVal, r)
	default:
		t.curVal = append(t.curVal, r)
	}
}

func (t *Tokenizer) stepAfterAttributeValueQuoted(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeAttributeNameState
	case r == '/':
		t.state = SelfClosingStartTagState
	case r == '>':
		t.state = DataState
		t.emitTag()
	default:
		t.errorf("missing-whitespace-between-attributes")
		t.reconsumeIn(BeforeAttributeNameState)
	}
}

func (t *Tokenizer) stepSelfClosingStartTag(r rune) {
	switch r {
	case '>':
		t.selfClosing = true
		t.state = DataState
		t.emitTag()
	default:
		t.errorf("unexpected-solidus-in-tag")
		t.reconsumeIn(BeforeAttributeNameState)
	}
}
