// Package tree implements the tree-construction stage of spec §4.6: the
// open-elements stack, the active-formatting-elements list, the adoption
// agency algorithm, foster parenting and the 23 insertion modes that turn
// tokens into a dom.Arena tree — adapted from the teacher's
// golang.org/x/net/html-derived parser in chtml/html/parse.go, generalized
// from its pointer-based *html.Node/nodeStack model to NodeID-keyed arena
// operations.
package tree

import (
	"log/slog"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tokenizer"
)

// insertionMode is the state-transition function of spec §4.6.1: it
// updates the constructor given the current token and reports whether the
// token was consumed.
type insertionMode func(*Constructor) bool

// Constructor drives tree construction. It owns no input; tokens are
// delivered by calling ProcessToken (normally wired as the Tokenizer's Emit
// callback by the html5 facade).
type Constructor struct {
	Arena *dom.Arena
	Doc   dom.NodeID

	Tok *tokenizer.Tokenizer
	Log *slog.Logger

	tok                 token.Token
	hasSelfClosingToken bool

	oe  []dom.NodeID
	afe []afeEntry

	head dom.NodeID
	form dom.NodeID

	im         insertionMode
	originalIM insertionMode

	fosterParenting bool
	framesetOK      bool
	scriptingFlag   bool

	fragment        bool
	fragmentContext dom.NodeID

	quirks dom.Mode

	// templateStack is the "stack of template insertion modes" of spec
	// §4.6, distinct from im/originalIM: it tracks the mode to resume
	// each nested <template> under, pushed on <template> and popped on
	// </template> or EOF.
	templateStack []insertionMode

	// pendingTableChars and pendingTableNonWS back the "in table text"
	// insertion mode's pending character buffer (spec §4.6.1's
	// "pending table character tokens" list).
	pendingTableChars []byte
	pendingTableNonWS bool

	done bool
}

// New returns a Constructor ready to parse a full document.
func New(arena *dom.Arena, tok *tokenizer.Tokenizer, log *slog.Logger) *Constructor {
	if log == nil {
		log = slog.Default()
	}
	c := &Constructor{
		Arena:      arena,
		Tok:        tok,
		Log:        log,
		framesetOK: true,
	}
	c.Doc = arena.New(dom.DocumentNode)
	c.im = initialIM
	if tok != nil {
		tok.Emit = c.ProcessToken
	}
	return c
}

// NewFragment returns a Constructor configured for fragment parsing (spec
// §4.6's "fragment parsing algorithm"), rooted at a context element that is
// never itself part of the produced tree.
func NewFragment(arena *dom.Arena, tok *tokenizer.Tokenizer, log *slog.Logger, contextNS string, contextTag atom.Atom) *Constructor {
	c := New(arena, tok, log)
	c.fragment = true
	c.fragmentContext = arena.NewElement(contextNS, "", contextTag, nil)

	switch contextTag {
	case atom.Title, atom.Textarea:
		if tok != nil {
			tok.SetState(tokenizer.RCDATAState)
		}
	case atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		if tok != nil {
			tok.SetState(tokenizer.RAWTEXTState)
		}
	case atom.Script:
		if tok != nil {
			tok.SetState(tokenizer.ScriptDataState)
		}
	case atom.Plaintext:
		if tok != nil {
			tok.SetState(tokenizer.PLAINTEXTState)
		}
	}

	root := arena.NewElement("", "", atom.Html, nil)
	arena.AppendChild(c.Doc, root)
	c.oe = append(c.oe, root)

	if contextNS == "" && contextTag == atom.Form {
		c.form = c.fragmentContext
	}

	c.resetInsertionMode()
	return c
}

// Document returns the root #document node.
func (c *Constructor) Document() dom.NodeID { return c.Doc }

// SetScripting sets the "scripting flag" of spec §4.6 (true by default is
// the wrong default for a non-executing parser; callers that want
// <noscript> treated as if script were enabled call this explicitly).
func (c *Constructor) SetScripting(enabled bool) { c.scriptingFlag = enabled }

// FragmentRoot returns the synthetic <html> root used as the fragment
// parsing algorithm's starting point (0 if this is not a fragment parse).
func (c *Constructor) FragmentRoot() dom.NodeID {
	if !c.fragment || len(c.oe) == 0 {
		return 0
	}
	return c.oe[0]
}

// InForeignContent reports whether CDATA sections should currently be
// recognized by the tokenizer (spec §4.7): true when the current node is a
// foreign (SVG/MathML) element.
func (c *Constructor) InForeignContent() bool {
	n := c.currentNode()
	return n != 0 && c.Arena.Namespace(n) != ""
}

func (c *Constructor) errorf(format string, args ...any) {
	c.Log.Warn("parse error", append([]any{"detail", format}, args...)...)
}

func (c *Constructor) currentNode() dom.NodeID {
	if len(c.oe) == 0 {
		return 0
	}
	return c.oe[len(c.oe)-1]
}

// top is the adjusted current node fallback used throughout the teacher's
// algorithm: the top of the stack, or the document if the stack is empty.
func (c *Constructor) top() dom.NodeID {
	if n := c.currentNode(); n != 0 {
		return n
	}
	return c.Doc
}

// ProcessToken runs tok through tree construction until consumed, including
// the foreign-content dispatch of spec §4.7 — mirrors the teacher's
// parseCurrentToken/parse loop.
func (c *Constructor) ProcessToken(tok token.Token) {
	if c.done {
		return
	}
	if tok.Type == token.SelfClosing {
		tok.Type = token.StartTag
		c.hasSelfClosingToken = true
	} else if tok.Type == token.StartTag && tok.SelfClosing {
		c.hasSelfClosingToken = true
	}
	c.tok = tok

	for {
		var consumed bool
		if c.inForeignContentNow() {
			consumed = c.parseForeignContent()
		} else {
			consumed = c.im(c)
		}
		if consumed {
			break
		}
	}
	c.hasSelfClosingToken = false

	if tok.Type == token.EOF {
		c.done = true
	}
}

// parseImpliedToken processes a synthetic token as though it had appeared
// in the input (spec §4.6's "insert an HTML element for a synthesized
// token" family of steps).
func (c *Constructor) parseImpliedToken(typ token.Type, tagAtom atom.Atom, tagName string) {
	real, selfClosing := c.tok, c.hasSelfClosingToken
	c.tok = token.Token{Type: typ, TagAtom: tagAtom, TagName: tagName}
	c.hasSelfClosingToken = false
	for {
		var consumed bool
		if c.inForeignContentNow() {
			consumed = c.parseForeignContent()
		} else {
			consumed = c.im(c)
		}
		if consumed {
			break
		}
	}
	c.tok, c.hasSelfClosingToken = real, selfClosing
}

// --- insertion primitives (spec §4.6.2 "insert a ... element") ---

func (c *Constructor) addElement() dom.NodeID {
	n := c.Arena.NewElement("", "", c.tok.TagAtom, attrsToDOM(c.tok.Attr))
	c.addChildNode(n)
	c.oe = append(c.oe, n)
	return n
}

func attrsToDOM(a []token.Attribute) []dom.Attribute {
	if len(a) == 0 {
		return nil
	}
	out := make([]dom.Attribute, len(a))
	for i, at := range a {
		out[i] = dom.Attribute{Namespace: at.Namespace, Prefix: at.Prefix, Name: at.Name, Val: at.Val}
	}
	return out
}

// addChildNode appends n (already allocated, unattached) below the
// appropriate parent, applying foster parenting when required.
func (c *Constructor) addChildNode(n dom.NodeID) {
	if c.shouldFosterParent() {
		c.fosterParent(n)
		return
	}
	c.Arena.AppendChild(c.top(), n)
}

func (c *Constructor) addText(s string) {
	if s == "" {
		return
	}
	if c.shouldFosterParent() {
		c.fosterParentText(s)
		return
	}
	c.Arena.InsertCharacter(c.top(), 0, s)
}

func (c *Constructor) addComment(data string) {
	n := c.Arena.NewComment(data)
	c.addChildNode(n)
}

// shouldFosterParent implements spec §4.6.2's foster-parenting gate.
func (c *Constructor) shouldFosterParent() bool {
	if !c.fosterParenting {
		return false
	}
	switch c.Arena.Tag(c.top()) {
	case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
		return true
	}
	return false
}

// fosterParent implements spec §4.6.2's foster-parenting algorithm.
func (c *Constructor) fosterParent(n dom.NodeID) {
	var table, template dom.NodeID
	var tableIdx, templateIdx = -1, -1
	for i := len(c.oe) - 1; i >= 0; i-- {
		if table == 0 && c.Arena.Tag(c.oe[i]) == atom.Table {
			table, tableIdx = c.oe[i], i
		}
		if template == 0 && c.Arena.Tag(c.oe[i]) == atom.Template {
			template, templateIdx = c.oe[i], i
		}
	}

	if template != 0 && (table == 0 || templateIdx > tableIdx) {
		c.Arena.AppendChild(template, n)
		return
	}

	var parent dom.NodeID
	if table == 0 {
		parent = c.oe[0]
	} else {
		parent = c.Arena.Parent(table)
	}
	if parent == 0 {
		parent = c.oe[tableIdx-1]
	}
	c.Arena.InsertBefore(parent, n, table)
}

func (c *Constructor) fosterParentText(s string) {
	var table dom.NodeID
	var tableIdx = -1
	var template dom.NodeID
	var templateIdx = -1
	for i := len(c.oe) - 1; i >= 0; i-- {
		if table == 0 && c.Arena.Tag(c.oe[i]) == atom.Table {
			table, tableIdx = c.oe[i], i
		}
		if template == 0 && c.Arena.Tag(c.oe[i]) == atom.Template {
			template, templateIdx = c.oe[i], i
		}
	}
	if template != 0 && (table == 0 || templateIdx > tableIdx) {
		c.Arena.InsertCharacter(template, 0, s)
		return
	}
	var parent dom.NodeID
	if table == 0 {
		parent = c.oe[0]
	} else {
		parent = c.Arena.Parent(table)
	}
	if parent == 0 {
		parent = c.oe[tableIdx-1]
		c.Arena.InsertCharacter(parent, 0, s)
		return
	}
	c.Arena.InsertCharacter(parent, table, s)
}

// generateImpliedEndTags pops elements whose tag is in the implied-end-tag
// set off the open-elements stack, per spec §4.6.2, stopping early when the
// current node's tag is listed in except.
func (c *Constructor) generateImpliedEndTags(except ...atom.Atom) {
	for len(c.oe) > 0 {
		tag := c.Arena.Tag(c.currentNode())
		if !isImpliedEndTag(tag) {
			return
		}
		for _, e := range except {
			if atom.Equal(tag, e) {
				return
			}
		}
		c.oe = c.oe[:len(c.oe)-1]
	}
}

func isImpliedEndTag(tag atom.Atom) bool {
	switch tag {
	case atom.Dd, atom.Dt, atom.Li, atom.Optgroup, atom.Option, atom.P,
		atom.Rb, atom.Rp, atom.Rt, atom.Rtc:
		return true
	}
	return false
}

func (c *Constructor) acknowledgeSelfClosingTag() {
	c.hasSelfClosingToken = false
}
