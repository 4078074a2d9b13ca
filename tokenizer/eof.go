package tokenizer

// stepEOF flushes whatever token was in progress when the input ended, per
// each state's "EOF" row in spec §4.4. States with no special EOF handling
// simply produce the end-of-file token with no extra emission.
func (t *Tokenizer) stepEOF() {
	switch t.state {
	case TagOpenState:
		t.errorf("eof-before-tag-name")
		t.emitChar("<")
	case EndTagOpenState:
		t.errorf("eof-before-tag-name")
		t.emitChar("<")
		t.emitChar("/")
	case TagNameState,
		BeforeAttributeNameState, AttributeNameState, AfterAttributeNameState,
		BeforeAttributeValueState,
		AttributeValueDoubleQuotedState, AttributeValueSingleQuotedState, AttributeValueUnquotedState,
		AfterAttributeValueQuotedState, SelfClosingStartTagState:
		t.errorf("eof-in-tag")

	case RCDATAEndTagOpenState, RCDATAEndTagNameState,
		RAWTEXTEndTagOpenState, RAWTEXTEndTagNameState,
		ScriptDataEndTagOpenState, ScriptDataEndTagNameState,
		ScriptDataEscapedEndTagOpenState, ScriptDataEscapedEndTagNameState:
		t.emitChar("<")
		t.emitChar("/")
		for _, c := range t.tempBuf {
			t.emitChar(string(c))
		}

	case ScriptDataEscapedLessThanSignState, ScriptDataDoubleEscapedLessThanSignState:
		t.emitChar("<")

	case ScriptDataEscapedState, ScriptDataEscapedDashState, ScriptDataEscapedDashDashState:
		t.errorf("eof-in-script-html-comment-like-text")

	case CommentLessThanSignState, CommentLessThanSignBangState,
		CommentLessThanSignBangDashState, CommentLessThanSignBangDashDashState:
		t.errorf("eof-in-comment")
		t.emitComment()

	case BogusCommentState, CommentStartState, CommentStartDashState, CommentState,
		CommentEndDashState, CommentEndState, CommentEndBangState:
		if t.state != BogusCommentState {
			t.errorf("eof-in-comment")
		}
		t.emitComment()

	case MarkupDeclarationOpenState:
		t.errorf("incorrectly-opened-comment")
		t.commentData = t.mdBuf
		t.mdBuf = nil
		t.emitComment()

	case DoctypeState, BeforeDoctypeNameState:
		t.errorf("eof-in-doctype")
		t.startDoctype()
		t.forceQuirks = true
		t.emitDoctype()

	case DoctypeNameState, AfterDoctypeNameState,
		AfterDoctypePublicKeywordState, BeforeDoctypePublicIdentifierState,
		DoctypePublicIdentifierDoubleQuotedState, DoctypePublicIdentifierSingleQuotedState,
		AfterDoctypePublicIdentifierState, BetweenDoctypePublicAndSystemIdentifiersState,
		AfterDoctypeSystemKeywordState, BeforeDoctypeSystemIdentifierState,
		DoctypeSystemIdentifierDoubleQuotedState, DoctypeSystemIdentifierSingleQuotedState,
		AfterDoctypeSystemIdentifierState:
		t.errorf("eof-in-doctype")
		t.forceQuirks = true
		t.kwBuf = nil
		t.emitDoctype()

	case BogusDoctypeState:
		t.emitDoctype()

	case CDATASectionState, CDATASectionBracketState, CDATASectionEndState:
		t.errorf("eof-in-cdata")

	case CharacterReferenceState:
		t.flushCharRefLiteral()

	case NamedCharacterReferenceState:
		t.finishNamedCharacterReference(0, false)

	case NumericCharacterReferenceState,
		HexadecimalCharacterReferenceStartState, DecimalCharacterReferenceStartState:
		t.errorf("absence-of-digits-in-numeric-character-reference")
		t.flushCharRefLiteral()

	case HexadecimalCharacterReferenceState, DecimalCharacterReferenceState,
		NumericCharacterReferenceEndState:
		t.stepNumericCharacterReferenceEnd(0)
	}
}
