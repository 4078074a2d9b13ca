package tokenizer

// step dispatches one code point to the handler for the current state.
func (t *Tokenizer) step(r rune) {
	switch t.state {
	case DataState:
		t.stepData(r)
	case RCDATAState:
		t.stepRCDATA(r)
	case RAWTEXTState:
		t.stepRAWTEXT(r)
	case ScriptDataState:
		t.stepScriptData(r)
	case PLAINTEXTState:
		t.stepPLAINTEXT(r)
	case TagOpenState:
		t.stepTagOpen(r)
	case EndTagOpenState:
		t.stepEndTagOpen(r)
	case TagNameState:
		t.stepTagName(r)
	case RCDATALessThanSignState:
		t.stepLessThanSign(r, RCDATAState, RCDATAEndTagOpenState)
	case RCDATAEndTagOpenState:
		t.stepEndTagOpenBuffered(r, RCDATAState, RCDATAEndTagNameState)
	case RCDATAEndTagNameState:
		t.stepEndTagNameBuffered(r, RCDATAState)
	case RAWTEXTLessThanSignState:
		t.stepLessThanSign(r, RAWTEXTState, RAWTEXTEndTagOpenState)
	case RAWTEXTEndTagOpenState:
		t.stepEndTagOpenBuffered(r, RAWTEXTState, RAWTEXTEndTagNameState)
	case RAWTEXTEndTagNameState:
		t.stepEndTagNameBuffered(r, RAWTEXTState)
	case ScriptDataLessThanSignState:
		t.stepScriptDataLessThanSign(r)
	case ScriptDataEndTagOpenState:
		t.stepEndTagOpenBuffered(r, ScriptDataState, ScriptDataEndTagNameState)
	case ScriptDataEndTagNameState:
		t.stepEndTagNameBuffered(r, ScriptDataState)
	case ScriptDataEscapeStartState:
		t.stepScriptDataEscapeStart(r)
	case ScriptDataEscapeStartDashState:
		t.stepScriptDataEscapeStartDash(r)
	case ScriptDataEscapedState:
		t.stepScriptDataEscaped(r)
	case ScriptDataEscapedDashState:
		t.stepScriptDataEscapedDash(r)
	case ScriptDataEscapedDashDashState:
		t.stepScriptDataEscapedDashDash(r)
	case ScriptDataEscapedLessThanSignState:
		t.stepScriptDataEscapedLessThanSign(r)
	case ScriptDataEscapedEndTagOpenState:
		t.stepEndTagOpenBuffered(r, ScriptDataEscapedState, ScriptDataEscapedEndTagNameState)
	case ScriptDataEscapedEndTagNameState:
		t.stepEndTagNameBuffered(r, ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		t.stepScriptDataDoubleEscapeStart(r)
	case ScriptDataDoubleEscapedState:
		t.stepScriptDataDoubleEscaped(r)
	case ScriptDataDoubleEscapedDashState:
		t.stepScriptDataDoubleEscapedDash(r)
	case ScriptDataDoubleEscapedDashDashState:
		t.stepScriptDataDoubleEscapedDashDash(r)
	case ScriptDataDoubleEscapedLessThanSignState:
		t.stepScriptDataDoubleEscapedLessThanSign(r)
	case ScriptDataDoubleEscapeEndState:
		t.stepScriptDataDoubleEscapeEnd(r)
	case BeforeAttributeNameState:
		t.stepBeforeAttributeName(r)
	case AttributeNameState:
		t.stepAttributeName(r)
	case AfterAttributeNameState:
		t.stepAfterAttributeName(r)
	case BeforeAttributeValueState:
		t.stepBeforeAttributeValue(r)
	case AttributeValueDoubleQuotedState:
		t.stepAttributeValueQuoted(r, '"')
	case AttributeValueSingleQuotedState:
		t.stepAttributeValueQuoted(r, '\'')
	case AttributeValueUnquotedState:
		t.stepAttributeValueUnquoted(r)
	case AfterAttributeValueQuotedState:
		t.stepAfterAttributeValueQuoted(r)
	case SelfClosingStartTagState:
		t.stepSelfClosingStartTag(r)
	case BogusCommentState:
		t.stepBogusComment(r)
	case MarkupDeclarationOpenState:
		t.stepMarkupDeclarationOpen(r)
	case CommentStartState:
		t.stepCommentStart(r)
	case CommentStartDashState:
		t.stepCommentStartDash(r)
	case CommentState:
		t.stepComment(r)
	case CommentLessThanSignState:
		t.stepCommentLessThanSign(r)
	case CommentLessThanSignBangState:
		t.stepCommentLessThanSignBang(r)
	case CommentLessThanSignBangDashState:
		t.stepCommentLessThanSignBangDash(r)
	case CommentLessThanSignBangDashDashState:
		t.stepCommentLessThanSignBangDashDash(r)
	case CommentEndDashState:
		t.stepCommentEndDash(r)
	case CommentEndState:
		t.stepCommentEnd(r)
	case CommentEndBangState:
		t.stepCommentEndBang(r)
	case DoctypeState:
		t.stepDoctype(r)
	case BeforeDoctypeNameState:
		t.stepBeforeDoctypeName(r)
	case DoctypeNameState:
		t.stepDoctypeName(r)
	case AfterDoctypeNameState:
		t.stepAfterDoctypeName(r)
	case AfterDoctypePublicKeywordState:
		t.stepAfterDoctypePublicKeyword(r)
	case BeforeDoctypePublicIdentifierState:
		t.stepBeforeDoctypePublicIdentifier(r)
	case DoctypePublicIdentifierDoubleQuotedState:
		t.stepDoctypePublicIdentifierQuoted(r, '"')
	case DoctypePublicIdentifierSingleQuotedState:
		t.stepDoctypePublicIdentifierQuoted(r, '\'')
	case AfterDoctypePublicIdentifierState:
		t.stepAfterDoctypePublicIdentifier(r)
	case BetweenDoctypePublicAndSystemIdentifiersState:
		t.stepBetweenDoctypePublicAndSystemIdentifiers(r)
	case AfterDoctypeSystemKeywordState:
		t.stepAfterDoctypeSystemKeyword(r)
	case BeforeDoctypeSystemIdentifierState:
		t.stepBeforeDoctypeSystemIdentifier(r)
	case DoctypeSystemIdentifierDoubleQuotedState:
		t.stepDoctypeSystemIdentifierQuoted(r, '"')
	case DoctypeSystemIdentifierSingleQuotedState:
		t.stepDoctypeSystemIdentifierQuoted(r, '\'')
	case AfterDoctypeSystemIdentifierState:
		t.stepAfterDoctypeSystemIdentifier(r)
	case BogusDoctypeState:
		t.stepBogusDoctype(r)
	case CDATASectionState:
		t.stepCDATASection(r)
	case CDATASectionBracketState:
		t.stepCDATASectionBracket(r)
	case CDATASectionEndState:
		t.stepCDATASectionEnd(r)
	case CharacterReferenceState:
		t.stepCharacterReference(r)
	case NamedCharacterReferenceState:
		t.stepNamedCharacterReference(r)
	case AmbiguousAmpersandState:
		t.stepAmbiguousAmpersand(r)
	case NumericCharacterReferenceState:
		t.stepNumericCharacterReference(r)
	case HexadecimalCharacterReferenceStartState:
		t.stepHexadecimalCharacterReferenceStart(r)
	case DecimalCharacterReferenceStartState:
		t.stepDecimalCharacterReferenceStart(r)
	case HexadecimalCharacterReferenceState:
		t.stepHexadecimalCharacterReference(r)
	case DecimalCharacterReferenceState:
		t.stepDecimalCharacterReference(r)
	case NumericCharacterReferenceEndState:
		t.stepNumericCharacterReferenceEnd(r)
	}
}

func (t *Tokenizer) stepData(r rune) {
	switch r {
	case '&':
		t.returnState = DataState
		t.state = CharacterReferenceState
	case '<':
		t.state = TagOpenState
	case 0:
		t.errorf("unexpected-null-character")
		t.emitChar(string(r))
	default:
		t.emitChar(string(r))
	}
}

func (t *Tokenizer) stepRCDATA(r rune) {
	switch r {
	case '&':
		t.returnState = RCDATAState
		t.state = CharacterReferenceState
	case '<':
		t.state = RCDATALessThanSignState
	case 0:
		t.errorf("unexpected-null-character")
		t.emitChar("�")
	default:
		t.emitChar(string(r))
	}
}

func (t *Tokenizer) stepRAWTEXT(r rune) {
	switch r {
	case '<':
		t.state = RAWTEXTLessThanSignState
	case 0:
		t.errorf("unexpected-null-character")
		t.emitChar("�")
	default:
		t.emitChar(string(r))
	}
}

func (t *Tokenizer) stepScriptData(r rune) {
	switch r {
	case '<':
		t.state = ScriptDataLessThanSignState
	case 0:
		t.errorf("unexpected-null-character")
		t.emitChar("�")
	default:
		t.emitChar(string(r))
	}
}

func (t *Tokenizer) stepPLAINTEXT(r rune) {
	if r == 0 {
		t.errorf("unexpected-null-character")
		t.emitChar("�")
		return
	}
	t.emitChar(string(r))
}

func (t *Tokenizer) stepTagOpen(r rune) {
	switch {
	case r == '!':
		t.state = MarkupDeclarationOpenState
	case r == '/':
		t.state = EndTagOpenState
	case isASCIIAlpha(r):
		t.startTagName(false)
		t.reconsumeIn(TagNameState)
	case r == '?':
		t.errorf("unexpected-question-mark-instead-of-tag-name")
		t.commentData = nil
		t.reconsumeIn(BogusCommentState)
	default:
		t.errorf("invalid-first-character-of-tag-name")
		t.emitChar("<")
		t.reconsumeIn(DataState)
	}
}

func (t *Tokenizer) stepEndTagOpen(r rune) {
	switch {
	case isASCIIAlpha(r):
		t.startTagName(true)
		t.reconsumeIn(TagNameState)
	case r == '>':
		t.errorf("missing-end-tag-name")
		t.state = DataState
	default:
		t.errorf("invalid-first-character-of-tag-name")
		t.commentData = nil
		t.reconsumeIn(BogusCommentState)
	}
}

func (t *Tokenizer) stepTagName(r rune) {
	switch {
	case isWhitespace(r):
		t.state = BeforeAttributeNameState
	case r == '/':
		t.state = SelfClosingStartTagState
	case r == '>':
		t.state = DataState
		t.emitTag()
	case isASCIIUpper(r):
		t.tagName = append(t.tagName, toLower(r))
	case r == 0:
		t.errorf("unexpected-null-character")
		t.tagName = append(t.tagName, '�')
	default:
		t.tagName = append(t.tagName, r)
	}
}

// stepLessThanSign implements the shared "<" handling for RCDATA/RAWTEXT:
// '/' begins a possible end tag, anything else is a literal '<'.
func (t *Tokenizer) stepLessThanSign(r rune, contentState, endTagOpenState State) {
	if r == '/' {
		t.tempBuf = nil
		t.state = endTagOpenState
		return
	}
	t.emitChar("<")
	t.reconsumeIn(contentState)
}

func (t *Tokenizer) stepScriptDataLessThanSign(r rune) {
	switch r {
	case '/':
		t.tempBuf = nil
		t.state = ScriptDataEndTagOpenState
	case '!':
		t.state = ScriptDataEscapeStartState
		t.emitChar("<")
		t.emitChar("!")
	default:
		t.emitChar("<")
		t.reconsumeIn(ScriptDataState)
	}
}

// stepEndTagOpenBuffered handles "</" immediately inside RCDATA/RAWTEXT/
// script-data: an ASCII alpha begins a tag name candidate buffered in
// tempBuf; anything else falls back to literal "</" text.
func (t *Tokenizer) stepEndTagOpenBuffered(r rune, contentState, nameState State) {
	if isASCIIAlpha(r) {
		t.startTagName(true)
		t.reconsumeIn(nameState)
		return
	}
	t.emitChar("<")
	t.emitChar("/")
	t.reconsumeIn(contentState)
}

// stepEndTagNameBuffered accumulates a candidate end-tag name; if it turns
// out not to be the appropriate end tag, the buffered literal text is
// emitted instead and the tokenizer falls back to contentState.
func (t *Tokenizer) stepEndTagNameBuffered(r rune, contentState State) {
	switch {
	case isWhitespace(r) && t.appropriateEndTag():
		t.state = BeforeAttributeNameState
		return
	case r == '/' && t.appropriateEndTag():
		t.state = SelfClosingStartTagState
		return
	case r == '>' && t.appropriateEndTag():
		t.state = DataState
		t.emitTag()
		return
	case isASCIIUpper(r):
		t.tagName = append(t.tagName, toLower(r))
		t.tempBuf = append(t.tempBuf, r)
		return
	case isASCIILower(r):
		t.tagName = append(t.tagName, r)
		t.tempBuf = append(t.tempBuf, r)
		return
	}
	t.emitChar("<")
	t.emitChar("/")
	for _, c := range t.tempBuf {
		t.emitChar(string(c))
	}
	t.reconsumeIn(contentState)
}
