// Package tokenizer implements the HTML tokenizer of spec §4.4: an
// 80-state machine that turns the preprocessed scalar-value stream into
// doctype, start-tag, end-tag, comment, character and EOF tokens.
package tokenizer

import (
	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/namedref"
	"github.com/corehtml/html5/token"
)

// ErrorFunc reports a non-fatal parse error by its WHATWG error-name code
// (spec §6).
type ErrorFunc func(code string)

// Tokenizer drives the state machine described in spec §4.4. Tokens are
// delivered to Emit as soon as their terminator is consumed. Input is
// pushed in one scalar at a time through Feed, and FeedEOF ends it; the
// html5 facade wires the preprocessor's output to Feed and the tree
// constructor to Emit.
type Tokenizer struct {
	state       State
	returnState State

	Emit  func(token.Token)
	Error ErrorFunc

	// reconsume holds a code point that must be re-run through the (new)
	// current state before new input is accepted.
	reconsume   bool
	reconsumeCP rune

	// lastStartTag is the name of the last start tag emitted; gates
	// "appropriate end tag" recognition in RAWTEXT/RCDATA/script-data.
	lastStartTag string

	// allowCDATA gates recognition of "<![CDATA[" (see AllowCDATA). It
	// starts false and nothing in this module sets it, so the sequence
	// always becomes a bogus comment.
	allowCDATA bool
	// suppressRawText records a NextIsNotRawText call; nothing reads it,
	// since the tokenizer never switches state on a start tag by itself.
	suppressRawText bool

	// in-progress token state.
	tagIsEnd    bool
	tagName     []rune
	selfClosing bool
	attrs       []token.Attribute
	attrNames   map[string]bool
	curName     []rune
	curVal      []rune
	hasCurAttr  bool

	commentData []rune
	mdBuf       []rune // lookahead buffer for "<!" markup declaration dispatch
	kwBuf       []rune // lookahead buffer for PUBLIC/SYSTEM keyword matching

	doctypeName    []rune
	doctypeHasName bool
	doctypePublic  []rune
	doctypeHasPub  bool
	doctypeSystem  []rune
	doctypeHasSys  bool
	forceQuirks    bool

	// character reference sub-machine.
	charBuf   []rune // "&" + consumed chars, for reinsertion on failure
	matcher   *namedref.Matcher
	charCode  uint32
	inAttr    bool // whether the reference is being consumed in an attribute value

	// RCDATA/RAWTEXT/script-data end tag buffer (the "temporary buffer").
	tempBuf []rune

	scriptDoubleEscaped bool

	closed bool
}

// New returns a Tokenizer starting in the data state.
func New() *Tokenizer {
	return &Tokenizer{
		state:     DataState,
		attrNames: map[string]bool{},
		matcher:   namedref.New(),
	}
}

// SetState overrides the tokenizer's state — the tree constructor's half
// of the reverse side-channel from spec §2 (e.g. switching to RAWTEXT
// after <style>).
func (t *Tokenizer) SetState(s State) {
	t.state = s
}

// State returns the tokenizer's current state.
func (t *Tokenizer) State() State {
	return t.state
}

// SetReturnState sets the state to resume after a character-reference
// sub-machine run completes.
func (t *Tokenizer) SetReturnState(s State) {
	t.returnState = s
}

// LastStartTag returns the name of the last start tag token emitted.
func (t *Tokenizer) LastStartTag() string {
	return t.lastStartTag
}

// AllowCDATA toggles CDATA section recognition (only meaningful in foreign
// content, per spec §4.7).
func (t *Tokenizer) AllowCDATA(allow bool) {
	t.allowCDATA = allow
}

// NextIsNotRawText is called by the tree constructor for <noscript> with
// scripting disabled and for foreign start tags (spec §4.7). It only sets a
// flag: the tokenizer makes no RAWTEXT/RCDATA switch of its own (the tree
// constructor does that through SetState), so the call does not change
// tokenization.
func (t *Tokenizer) NextIsNotRawText() {
	t.suppressRawText = true
}

func (t *Tokenizer) errorf(code string) {
	if t.Error != nil {
		t.Error(code)
	}
}

func (t *Tokenizer) emit(tok token.Token) {
	if t.Emit != nil {
		t.Emit(tok)
	}
}

func (t *Tokenizer) emitChar(s string) {
	if s == "" {
		return
	}
	t.emit(token.Token{Type: token.Character, Data: s})
}

// Feed pushes one preprocessed scalar value through the state machine.
func (t *Tokenizer) Feed(r rune) {
	t.drive(r)
}

// drive runs r (and any reconsume requests it triggers) through step. It is
// also used to replay code points that a sub-machine (e.g. the character
// reference states) determined were not part of the construct it was
// matching and must be reprocessed in a new state.
func (t *Tokenizer) drive(r rune) {
	t.reconsume = true
	t.reconsumeCP = r
	for t.reconsume {
		t.reconsume = false
		t.step(t.reconsumeCP)
	}
}

// FeedEOF signals end of input and flushes any in-progress token per the
// EOF handling of each state.
func (t *Tokenizer) FeedEOF() {
	if t.closed {
		return
	}
	t.closed = true
	t.stepEOF()
	t.emit(token.Token{Type: token.EOF})
}

func (t *Tokenizer) reconsumeIn(s State) {
	t.state = s
	t.reconsume = true
}

const whitespace = " \t\n\f"

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}

func isASCIIUpper(r rune) bool   { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool   { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool   { return isASCIIUpper(r) || isASCIILower(r) }
func isASCIIDigit(r rune) bool   { return r >= '0' && r <= '9' }
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func toLower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}

func (t *Tokenizer) startTagName(isEnd bool) {
	t.tagIsEnd = isEnd
	t.tagName = t.tagName[:0]
	t.attrs = nil
	t.selfClosing = false
	t.attrNames = map[string]bool{}
	t.curName = nil
	t.curVal = nil
	t.hasCurAttr = false
}

func (t *Tokenizer) finishAttr() {
	if !t.hasCurAttr {
		return
	}
	name := string(t.curName)
	if t.attrNames[name] {
		t.errorf("duplicate-attribute")
	} else {
		t.attrNames[name] = true
		t.attrs = append(t.attrs, token.Attribute{
			Name: atom.LookupAttr(name),
			Val:  string(t.curVal),
		})
	}
	t.curName = nil
	t.curVal = nil
	t.hasCurAttr = false
}

func (t *Tokenizer) emitTag() {
	t.finishAttr()
	name := string(t.tagName)
	typ := token.StartTag
	if t.tagIsEnd {
		typ = token.EndTag
		if t.selfClosing {
			t.errorf("non-void-html-element-start-tag-with-trailing-solidus")
		}
		if len(t.attrs) > 0 {
			t.errorf("end-tag-with-attributes")
		}
		t.attrs = nil
	} else {
		t.lastStartTag = name
	}
	tok := token.Token{
		Type:        typ,
		TagAtom:     atom.LookupTag(name),
		TagName:     name,
		Attr:        t.attrs,
		SelfClosing: t.selfClosing,
	}
	t.emit(tok)
}

func (t *Tokenizer) emitComment() {
	t.emit(token.Token{Type: token.Comment, Data: string(t.commentData)})
}

func (t *Tokenizer) startDoctype() {
	t.doctypeName = nil
	t.doctypeHasName = false
	t.doctypePublic = nil
	t.doctypeHasPub = false
	t.doctypeSystem = nil
	t.doctypeHasSys = false
	t.forceQuirks = false
}

func (t *Tokenizer) emitDoctype() {
	t.emit(token.Token{
		Type: token.Doctype,
		Doctype: token.DoctypeData{
			Name:        string(t.doctypeName),
			NameSet:     t.doctypeHasName,
			Public:      string(t.doctypePublic),
			PublicSet:   t.doctypeHasPub,
			System:      string(t.doctypeSystem),
			SystemSet:   t.doctypeHasSys,
			ForceQuirks: t.forceQuirks,
		},
	})
}

// appropriateEndTag reports whether the in-progress end tag's name matches
// the last start tag emitted (spec §4.4's "appropriate end tag").
func (t *Tokenizer) appropriateEndTag() bool {
	return t.lastStartTag != "" && string(t.tempBuf) == t.lastStartTag
}

