package tree

import (
	"reflect"
	"strings"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
	"github.com/corehtml/html5/token"
	"github.com/corehtml/html5/tokenizer"
)

// This file implements the 23 insertion modes of spec §4.6.1, generalizing
// the teacher's single inBodyIM/textIM/afterBodyIM trio (chtml/html/parse.go
// only needed those three) back out to the full insertion-mode table its own
// doc comments reference, in the same per-mode function style.

func setOriginalIM(c *Constructor) {
	c.originalIM = c.im
}

// resetInsertionMode implements the "reset the insertion mode appropriately"
// algorithm (spec §4.6.1), used after popping in table/select contexts and
// to seed the initial mode of a fragment parse.
func (c *Constructor) resetInsertionMode() {
	for i := len(c.oe) - 1; i >= 0; i-- {
		n := c.oe[i]
		last := i == 0
		if last && c.fragment {
			n = c.fragmentContext
		}
		switch c.Arena.Tag(n) {
		case atom.Select:
			if !last {
				for j := i; j > 0; j-- {
					switch c.Arena.Tag(c.oe[j-1]) {
					case atom.Template:
						c.im = inSelectIM
						return
					case atom.Table:
						c.im = inSelectInTableIM
						return
					}
				}
			}
			c.im = inSelectIM
			return
		case atom.Td, atom.Th:
			if !last {
				c.im = inCellIM
				return
			}
		case atom.Tr:
			c.im = inRowIM
			return
		case atom.Tbody, atom.Thead, atom.Tfoot:
			c.im = inTableBodyIM
			return
		case atom.Caption:
			c.im = inCaptionIM
			return
		case atom.Colgroup:
			c.im = inColumnGroupIM
			return
		case atom.Table:
			c.im = inTableIM
			return
		case atom.Template:
			c.im = c.templateStack[len(c.templateStack)-1]
			return
		case atom.Head:
			if !last {
				c.im = inHeadIM
				return
			}
		case atom.Body:
			c.im = inBodyIM
			return
		case atom.Frameset:
			c.im = inFramesetIM
			return
		case atom.Html:
			if c.head == 0 {
				c.im = beforeHeadIM
			} else {
				c.im = afterHeadIM
			}
			return
		}
		if last {
			c.im = inBodyIM
			return
		}
	}
}

// parseGenericRawTextElement implements spec §4.6.2's "generic raw text/
// RCDATA element parsing algorithm": switches the tokenizer to the given
// state, pushes the element, and stashes the insertion mode to resume in
// "text" mode once its end tag closes it out.
func (c *Constructor) parseGenericRawTextElement(state tokenizer.State) {
	c.addElement()
	if c.Tok != nil {
		c.Tok.SetState(state)
	}
	setOriginalIM(c)
	c.im = textIM
}

// --- 12.2.6.4.1 "initial" ---

func initialIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		if allWhitespace(c.tok.Data) {
			return true
		}
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Doctype:
		name := c.tok.Doctype.Name
		pub, sys := c.tok.Doctype.Public, c.tok.Doctype.System
		n := c.Arena.NewDoctype(name, pub, sys)
		c.Arena.AppendChild(c.Doc, n)
		verdict := classifyQuirks(name, pub, sys, c.tok.Doctype.ForceQuirks)
		switch verdict {
		case quirksYes:
			c.quirks = dom.Quirks
		case quirksLimited:
			c.quirks = dom.LimitedQuirks
		default:
			c.quirks = dom.NoQuirks
		}
		c.Arena.SetDocMode(c.Doc, c.quirks)
		c.im = beforeHTMLIM
		return true
	}
	c.quirks = dom.Quirks
	c.Arena.SetDocMode(c.Doc, c.quirks)
	c.im = beforeHTMLIM
	return false
}

// --- 12.2.6.4.2 "before html" ---

func beforeHTMLIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Doctype:
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Character:
		if allWhitespace(c.tok.Data) {
			return true
		}
	case token.StartTag:
		if atom.Equal(c.tok.TagAtom, atom.Html) {
			c.addElement()
			c.im = beforeHeadIM
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Head, atom.Body, atom.Html, atom.Br:
		default:
			return true
		}
	}
	c.parseImpliedToken(token.StartTag, atom.Html, "html")
	return false
}

// --- 12.2.6.4.3 "before head" ---

func beforeHeadIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		if allWhitespace(c.tok.Data) {
			return true
		}
	case token.Doctype:
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Head:
			c.head = c.addElement()
			c.im = inHeadIM
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Head, atom.Body, atom.Html, atom.Br:
		default:
			return true
		}
	}
	c.parseImpliedToken(token.StartTag, atom.Head, "head")
	return false
}

// --- 12.2.6.4.4 "in head" ---

func inHeadIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s != c.tok.Data {
			c.addText(c.tok.Data[:len(c.tok.Data)-len(s)])
			if s == "" {
				return true
			}
			c.tok.Data = s
		}
	case token.Doctype:
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Base, atom.Basefont, atom.Bgsound, atom.Link, atom.Meta:
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			return true
		case atom.Noscript:
			if c.scriptingFlag {
				c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
				return true
			}
			c.addElement()
			c.im = inHeadNoscriptIM
			return true
		case atom.Script:
			c.parseGenericRawTextElement(tokenizer.ScriptDataState)
			return true
		case atom.Title:
			c.parseGenericRawTextElement(tokenizer.RCDATAState)
			return true
		case atom.Noframes, atom.Style:
			c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
			return true
		case atom.Head:
			return true
		case atom.Template:
			c.addElement()
			c.pushFormattingMarker()
			c.framesetOK = false
			c.templateStack = append(c.templateStack, inTemplateIM)
			c.im = inTemplateIM
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Head:
			c.oe = c.oe[:len(c.oe)-1]
			c.im = afterHeadIM
			return true
		case atom.Body, atom.Html, atom.Br:
			c.oe = c.oe[:len(c.oe)-1]
			c.im = afterHeadIM
			return false
		case atom.Template:
			if !c.oeContains(atom.Template) {
				return true
			}
			c.generateImpliedEndTags()
			for len(c.oe) > 0 && !atom.Equal(c.Arena.Tag(c.currentNode()), atom.Template) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			if len(c.oe) > 0 {
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.clearActiveFormattingElements()
			c.popTemplateInsertionMode()
			c.resetInsertionMode()
			return true
		default:
			return true
		}
	}
	c.oe = c.oe[:len(c.oe)-1]
	c.im = afterHeadIM
	return false
}

// --- 12.2.6.4.5 "in head noscript" ---

func inHeadNoscriptIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Doctype:
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Basefont, atom.Bgsound, atom.Link, atom.Meta, atom.Noframes, atom.Style:
			return inHeadIM(c)
		case atom.Head, atom.Noscript:
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Noscript:
			c.oe = c.oe[:len(c.oe)-1]
			c.im = inHeadIM
			return true
		case atom.Br:
		default:
			return true
		}
	case token.Character:
		if allWhitespace(c.tok.Data) {
			return inHeadIM(c)
		}
	case token.Comment:
		return inHeadIM(c)
	}
	c.oe = c.oe[:len(c.oe)-1]
	c.im = inHeadIM
	return false
}

// --- 12.2.6.4.6 "after head" ---

func afterHeadIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s != c.tok.Data {
			c.addText(c.tok.Data[:len(c.tok.Data)-len(s)])
			if s == "" {
				return true
			}
			c.tok.Data = s
		}
	case token.Doctype:
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Body:
			c.addElement()
			c.framesetOK = false
			c.im = inBodyIM
			return true
		case atom.Frameset:
			c.addElement()
			c.im = inFramesetIM
			return true
		case atom.Base, atom.Basefont, atom.Bgsound, atom.Link, atom.Meta,
			atom.Noframes, atom.Script, atom.Style, atom.Template, atom.Title:
			c.oe = append(c.oe, c.head)
			defer func() {
				c.oeRemove(c.head)
			}()
			return inHeadIM(c)
		case atom.Head:
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Body, atom.Html, atom.Br:
		case atom.Template:
			return inHeadIM(c)
		default:
			return true
		}
	}
	c.parseImpliedToken(token.StartTag, atom.Body, "body")
	c.framesetOK = true
	return false
}

// --- 12.2.6.4.7 "in body" ---

func inBodyIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Doctype:
		return true
	case token.Character:
		d := c.tok.Data
		switch c.Arena.Tag(c.top()) {
		case atom.Pre, atom.Listing:
			if c.Arena.FirstChild(c.top()) == 0 {
				if d != "" && d[0] == '\r' {
					d = d[1:]
				}
				if d != "" && d[0] == '\n' {
					d = d[1:]
				}
			}
		}
		d = strings.ReplaceAll(d, "\x00", "")
		if d == "" {
			return true
		}
		c.reconstructActiveFormattingElements()
		c.addText(d)
		if !allWhitespace(d) {
			c.framesetOK = false
		}
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			if c.oeContains(atom.Template) {
				return true
			}
			if len(c.oe) > 0 {
				mergeAttrsInto(c.Arena, c.oe[0], c.tok.Attr)
			}
			return true
		case atom.Base, atom.Basefont, atom.Bgsound, atom.Link, atom.Meta,
			atom.Noframes, atom.Script, atom.Style, atom.Template, atom.Title:
			return inHeadIM(c)
		case atom.Body:
			if len(c.oe) < 2 || !atom.Equal(c.Arena.Tag(c.oe[1]), atom.Body) || c.oeContains(atom.Template) {
				return true
			}
			c.framesetOK = false
			mergeAttrsInto(c.Arena, c.oe[1], c.tok.Attr)
		case atom.Frameset:
			if !c.framesetOK || len(c.oe) < 2 || !atom.Equal(c.Arena.Tag(c.oe[1]), atom.Body) {
				return true
			}
			body := c.oe[1]
			if p := c.Arena.Parent(body); p != 0 {
				c.Arena.RemoveChild(body)
			}
			c.oe = c.oe[:1]
			c.addElement()
			c.im = inFramesetIM
			return true
		case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Center,
			atom.Details, atom.Dialog, atom.Dir, atom.Div, atom.Dl, atom.Fieldset,
			atom.Figcaption, atom.Figure, atom.Footer, atom.Header, atom.Hgroup,
			atom.Main, atom.Menu, atom.Nav, atom.Ol, atom.P, atom.Section,
			atom.Summary, atom.Ul:
			c.popUntil(buttonScope, atom.P)
			c.addElement()
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			c.popUntil(buttonScope, atom.P)
			switch c.Arena.Tag(c.top()) {
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.addElement()
		case atom.Pre, atom.Listing:
			c.popUntil(buttonScope, atom.P)
			c.addElement()
			c.framesetOK = false
		case atom.Form:
			if c.form != 0 && !c.oeContains(atom.Template) {
				return true
			}
			c.popUntil(buttonScope, atom.P)
			c.addElement()
			if !c.oeContains(atom.Template) {
				c.form = c.top()
			}
		case atom.Li:
			for i := len(c.oe) - 1; i >= 0; i-- {
				n := c.oe[i]
				switch c.Arena.Tag(n) {
				case atom.Li:
					c.oe = c.oe[:i]
				case atom.Address, atom.Div, atom.P:
					continue
				default:
					if !c.isSpecialElement(n) {
						continue
					}
				}
				break
			}
			c.popUntil(buttonScope, atom.P)
			c.addElement()
		case atom.Dd, atom.Dt:
			for i := len(c.oe) - 1; i >= 0; i-- {
				n := c.oe[i]
				switch c.Arena.Tag(n) {
				case atom.Dd, atom.Dt:
					c.oe = c.oe[:i]
				case atom.Address, atom.Div, atom.P:
					continue
				default:
					if !c.isSpecialElement(n) {
						continue
					}
				}
				break
			}
			c.popUntil(buttonScope, atom.P)
			c.addElement()
		case atom.Plaintext:
			c.popUntil(buttonScope, atom.P)
			c.addElement()
			if c.Tok != nil {
				c.Tok.SetState(tokenizer.PLAINTEXTState)
			}
		case atom.Button:
			c.popUntil(defaultScope, atom.Button)
			c.reconstructActiveFormattingElements()
			c.addElement()
			c.framesetOK = false
		case atom.A:
			for i := len(c.afe) - 1; i >= 0 && !c.afe[i].marker; i-- {
				if n := c.afe[i].node; n != 0 && atom.Equal(c.Arena.Tag(n), atom.A) {
					c.adoptionAgency(atom.A, "a")
					c.oeRemove(n)
					c.afeRemove(n)
					break
				}
			}
			c.reconstructActiveFormattingElements()
			c.addFormattingElement()
		case atom.B, atom.Big, atom.Code, atom.Em, atom.Font, atom.I, atom.S,
			atom.Small, atom.Strike, atom.Strong, atom.Tt, atom.U:
			c.reconstructActiveFormattingElements()
			c.addFormattingElement()
		case atom.Nobr:
			c.reconstructActiveFormattingElements()
			if c.elementInScope(defaultScope, atom.Nobr) {
				c.adoptionAgency(atom.Nobr, "nobr")
				c.reconstructActiveFormattingElements()
			}
			c.addFormattingElement()
		case atom.Applet, atom.Marquee, atom.Object:
			c.reconstructActiveFormattingElements()
			c.addElement()
			c.pushFormattingMarker()
			c.framesetOK = false
		case atom.Table:
			if c.quirks != dom.Quirks {
				c.popUntil(buttonScope, atom.P)
			}
			c.addElement()
			c.framesetOK = false
			c.im = inTableIM
			return true
		case atom.Area, atom.Br, atom.Embed, atom.Img, atom.Keygen, atom.Wbr:
			c.reconstructActiveFormattingElements()
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			c.framesetOK = false
		case atom.Input:
			c.reconstructActiveFormattingElements()
			n := c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			if v, ok := c.Arena.AttrVal(n, atom.Type); !ok || !strings.EqualFold(v, "hidden") {
				c.framesetOK = false
			}
		case atom.Param, atom.Source, atom.Track:
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
		case atom.Hr:
			c.popUntil(buttonScope, atom.P)
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			c.framesetOK = false
		case atom.Image:
			c.tok.TagAtom = atom.Img
			c.tok.TagName = "img"
			return false
		case atom.Textarea:
			c.framesetOK = false
			c.parseGenericRawTextElement(tokenizer.RCDATAState)
		case atom.Xmp:
			c.popUntil(buttonScope, atom.P)
			c.reconstructActiveFormattingElements()
			c.framesetOK = false
			c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
		case atom.Iframe:
			c.framesetOK = false
			c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
		case atom.Noembed:
			c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
		case atom.Noscript:
			if c.scriptingFlag {
				c.parseGenericRawTextElement(tokenizer.RAWTEXTState)
				return true
			}
			c.reconstructActiveFormattingElements()
			c.addElement()
			if c.Tok != nil {
				c.Tok.NextIsNotRawText()
			}
		case atom.Select:
			c.reconstructActiveFormattingElements()
			c.addElement()
			c.framesetOK = false
			switch c.im2Name() {
			case "inTable", "inCaption", "inTableBody", "inRow", "inCell":
				c.im = inSelectInTableIM
			default:
				c.im = inSelectIM
			}
			return true
		case atom.Optgroup, atom.Option:
			if atom.Equal(c.Arena.Tag(c.top()), atom.Option) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.reconstructActiveFormattingElements()
			c.addElement()
		case atom.Rb, atom.Rtc:
			if c.elementInScope(defaultScope, atom.Ruby) {
				c.generateImpliedEndTags()
			}
			c.addElement()
		case atom.Rp, atom.Rt:
			if c.elementInScope(defaultScope, atom.Ruby) {
				c.generateImpliedEndTags(atom.Rtc)
			}
			c.addElement()
		case atom.Math, atom.Svg:
			c.reconstructActiveFormattingElements()
			if atom.Equal(c.tok.TagAtom, atom.Math) {
				adjustAttributeNames(c.tok.Attr, mathMLAttributeAdjustments)
			} else {
				c.tok.TagName = adjustSVGTagName(c.tok.TagName)
				c.tok.TagAtom = atom.LookupTag(c.tok.TagName)
				adjustAttributeNames(c.tok.Attr, svgAttributeAdjustments)
			}
			adjustForeignAttributes(c.tok.Attr)
			n := c.addElement()
			if atom.Equal(c.tok.TagAtom, atom.Math) {
				c.Arena.SetNamespace(n, "math")
			} else {
				c.Arena.SetNamespace(n, "svg")
			}
			if c.hasSelfClosingToken {
				c.oe = c.oe[:len(c.oe)-1]
				c.acknowledgeSelfClosingTag()
			}
			return true
		case atom.Caption, atom.Col, atom.Colgroup, atom.Frame, atom.Head,
			atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead, atom.Tr:
			return true
		default:
			c.reconstructActiveFormattingElements()
			c.addElement()
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Body:
			if c.elementInScope(defaultScope, atom.Body) {
				c.im = afterBodyIM
			}
		case atom.Html:
			if c.elementInScope(defaultScope, atom.Body) {
				c.parseImpliedToken(token.EndTag, atom.Body, "body")
				return false
			}
			return true
		case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Button,
			atom.Center, atom.Details, atom.Dialog, atom.Dir, atom.Div, atom.Dl,
			atom.Fieldset, atom.Figcaption, atom.Figure, atom.Footer, atom.Header,
			atom.Hgroup, atom.Listing, atom.Main, atom.Menu, atom.Nav, atom.Ol,
			atom.Pre, atom.Section, atom.Summary, atom.Ul:
			c.popUntil(defaultScope, c.tok.TagAtom)
		case atom.Form:
			if c.oeContains(atom.Template) {
				i := c.indexInScope(defaultScope, atom.Form)
				if i == -1 {
					return true
				}
				c.generateImpliedEndTags()
				if !atom.Equal(c.Arena.Tag(c.oe[i]), atom.Form) {
					return true
				}
				c.popUntil(defaultScope, atom.Form)
			} else {
				n := c.form
				c.form = 0
				i := c.indexInScope(defaultScope, atom.Form)
				if n == 0 || i == -1 || c.oe[i] != n {
					return true
				}
				c.generateImpliedEndTags()
				c.oeRemove(n)
			}
		case atom.P:
			if !c.elementInScope(buttonScope, atom.P) {
				c.parseImpliedToken(token.StartTag, atom.P, "p")
			}
			c.popUntil(buttonScope, atom.P)
		case atom.Li:
			c.popUntil(listItemScope, atom.Li)
		case atom.Dd, atom.Dt:
			c.popUntil(defaultScope, c.tok.TagAtom)
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			c.popUntil(defaultScope, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6)
		case atom.A, atom.B, atom.Big, atom.Code, atom.Em, atom.Font, atom.I,
			atom.Nobr, atom.S, atom.Small, atom.Strike, atom.Strong, atom.Tt, atom.U:
			c.adoptionAgency(c.tok.TagAtom, c.tok.TagName)
		case atom.Applet, atom.Marquee, atom.Object:
			if c.popUntil(defaultScope, c.tok.TagAtom) {
				c.clearActiveFormattingElements()
			}
		case atom.Template:
			return inHeadIM(c)
		case atom.Br:
			c.tok.Type = token.StartTag
			return false
		default:
			c.adoptionAgencyOtherEndTag(c.tok.TagAtom, c.tok.TagName)
		}
	case token.Comment:
		c.addComment(c.tok.Data)
	case token.EOF:
		if len(c.templateStack) > 0 {
			return inTemplateIM(c)
		}
		return true
	}
	return true
}

// --- 12.2.6.4.8 "text" ---

func textIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.EOF:
		c.oe = c.oe[:len(c.oe)-1]
	case token.Character:
		d := c.tok.Data
		if n := c.top(); atom.Equal(c.Arena.Tag(n), atom.Textarea) && c.Arena.FirstChild(n) == 0 {
			if d != "" && d[0] == '\r' {
				d = d[1:]
			}
			if d != "" && d[0] == '\n' {
				d = d[1:]
			}
		}
		if d == "" {
			return true
		}
		c.addText(d)
		return true
	case token.EndTag:
		if atom.Equal(c.tok.TagAtom, atom.Script) {
			// Script execution is out of this module's scope (spec.md
			// Non-goals); just pop the element.
		}
		c.oe = c.oe[:len(c.oe)-1]
	}
	c.im = c.originalIM
	c.originalIM = nil
	return c.tok.Type == token.EndTag
}

// --- 12.2.6.4.9 "in table" ---

func inTableIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		switch c.Arena.Tag(c.top()) {
		case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			c.pendingTableChars = c.pendingTableChars[:0]
			c.pendingTableNonWS = false
			setOriginalIM(c)
			c.im = inTableTextIM
			return false
		}
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Doctype:
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Caption:
			c.clearStackToTableContext()
			c.pushFormattingMarker()
			c.addElement()
			c.im = inCaptionIM
			return true
		case atom.Colgroup:
			c.clearStackToTableContext()
			c.addElement()
			c.im = inColumnGroupIM
			return true
		case atom.Col:
			c.clearStackToTableContext()
			c.parseImpliedToken(token.StartTag, atom.Colgroup, "colgroup")
			return false
		case atom.Tbody, atom.Tfoot, atom.Thead:
			c.clearStackToTableContext()
			c.addElement()
			c.im = inTableBodyIM
			return true
		case atom.Td, atom.Th, atom.Tr:
			c.clearStackToTableContext()
			c.parseImpliedToken(token.StartTag, atom.Tbody, "tbody")
			return false
		case atom.Table:
			if c.popUntil(tableScope, atom.Table) {
				c.resetInsertionMode()
				return false
			}
			return true
		case atom.Style, atom.Script, atom.Template:
			return inHeadIM(c)
		case atom.Input:
			if v, ok := firstAttrVal(c.tok.Attr, atom.Type); !ok || !strings.EqualFold(v, "hidden") {
				break
			}
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			return true
		case atom.Form:
			if c.oeContains(atom.Template) || c.form != 0 {
				return true
			}
			c.addElement()
			c.form = c.top()
			c.oe = c.oe[:len(c.oe)-1]
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Table:
			if c.popUntil(tableScope, atom.Table) {
				c.resetInsertionMode()
			}
			return true
		case atom.Body, atom.Caption, atom.Col, atom.Colgroup, atom.Html,
			atom.Tbody, atom.Td, atom.Tfoot, atom.Th, atom.Thead, atom.Tr:
			return true
		case atom.Template:
			return inHeadIM(c)
		}
	case token.EOF:
		return inBodyIM(c)
	}
	c.fosterParenting = true
	defer func() { c.fosterParenting = false }()
	return inBodyIM(c)
}

// --- 12.2.6.4.10 "in table text" ---

func inTableTextIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		s := strings.ReplaceAll(c.tok.Data, "\x00", "")
		if s == "" {
			return true
		}
		c.pendingTableChars = append(c.pendingTableChars, s...)
		if !allWhitespace(s) {
			c.pendingTableNonWS = true
		}
		return true
	}
	if c.pendingTableNonWS {
		// "any other character token" case: insert as foster-parented
		// individual characters, as if in table insertion mode.
		save := c.fosterParenting
		c.fosterParenting = true
		c.reconstructActiveFormattingElements()
		c.addText(string(c.pendingTableChars))
		c.fosterParenting = save
	} else {
		c.addText(string(c.pendingTableChars))
	}
	c.pendingTableChars = c.pendingTableChars[:0]
	c.im = c.originalIM
	c.originalIM = nil
	return false
}

// --- 12.2.6.4.11 "in caption" ---

func inCaptionIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Caption:
			return c.endCaption()
		case atom.Table:
			if c.endCaption() {
				return false
			}
			return true
		case atom.Body, atom.Col, atom.Colgroup, atom.Html, atom.Tbody,
			atom.Td, atom.Tfoot, atom.Th, atom.Thead, atom.Tr:
			return true
		}
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Caption, atom.Col, atom.Colgroup, atom.Tbody, atom.Td,
			atom.Tfoot, atom.Th, atom.Thead, atom.Tr:
			if c.endCaption() {
				return false
			}
			return true
		}
	}
	return inBodyIM(c)
}

func (c *Constructor) endCaption() bool {
	if !c.popUntil(tableScope, atom.Caption) {
		return false
	}
	c.clearActiveFormattingElements()
	c.im = inTableIM
	return true
}

// --- 12.2.6.4.12 "in column group" ---

func inColumnGroupIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s != c.tok.Data {
			c.addText(c.tok.Data[:len(c.tok.Data)-len(s)])
			if s == "" {
				return true
			}
			c.tok.Data = s
		}
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Doctype:
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Col:
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			return true
		case atom.Template:
			return inHeadIM(c)
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Colgroup:
			if atom.Equal(c.Arena.Tag(c.top()), atom.Colgroup) {
				c.oe = c.oe[:len(c.oe)-1]
				c.im = inTableIM
			}
			return true
		case atom.Col:
			return true
		case atom.Template:
			return inHeadIM(c)
		}
	case token.EOF:
		return inBodyIM(c)
	}
	if !atom.Equal(c.Arena.Tag(c.top()), atom.Colgroup) {
		return true
	}
	c.oe = c.oe[:len(c.oe)-1]
	c.im = inTableIM
	return false
}

// --- 12.2.6.4.13 "in table body" ---

func inTableBodyIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Tr:
			c.clearStackToTableBodyContext()
			c.addElement()
			c.im = inRowIM
			return true
		case atom.Td, atom.Th:
			c.clearStackToTableBodyContext()
			c.parseImpliedToken(token.StartTag, atom.Tr, "tr")
			return false
		case atom.Caption, atom.Col, atom.Colgroup, atom.Tbody, atom.Tfoot, atom.Thead:
			if !c.elementInScope(tableScope, atom.Tbody, atom.Thead, atom.Tfoot) {
				return true
			}
			c.clearStackToTableBodyContext()
			c.oe = c.oe[:len(c.oe)-1]
			c.im = inTableIM
			return false
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Tbody, atom.Tfoot, atom.Thead:
			if c.elementInScope(tableScope, c.tok.TagAtom) {
				c.clearStackToTableBodyContext()
				c.oe = c.oe[:len(c.oe)-1]
				c.im = inTableIM
			}
			return true
		case atom.Table:
			if !c.elementInScope(tableScope, atom.Tbody, atom.Thead, atom.Tfoot) {
				return true
			}
			c.clearStackToTableBodyContext()
			c.oe = c.oe[:len(c.oe)-1]
			c.im = inTableIM
			return false
		case atom.Body, atom.Caption, atom.Col, atom.Colgroup, atom.Html, atom.Td, atom.Th, atom.Tr:
			return true
		}
	}
	return inTableIM(c)
}

func (c *Constructor) clearStackToTableBodyContext() {
	for i := len(c.oe) - 1; i >= 0; i-- {
		switch c.Arena.Tag(c.oe[i]) {
		case atom.Tbody, atom.Tfoot, atom.Thead, atom.Template, atom.Html:
			c.oe = c.oe[:i+1]
			return
		}
	}
}

func (c *Constructor) clearStackToTableContext() {
	for i := len(c.oe) - 1; i >= 0; i-- {
		switch c.Arena.Tag(c.oe[i]) {
		case atom.Table, atom.Template, atom.Html:
			c.oe = c.oe[:i+1]
			return
		}
	}
}

// --- 12.2.6.4.14 "in row" ---

func inRowIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Td, atom.Th:
			c.clearStackToRowContext()
			c.addElement()
			c.im = inCellIM
			c.pushFormattingMarker()
			return true
		case atom.Caption, atom.Col, atom.Colgroup, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			if !c.popUntil(tableScope, atom.Tr) {
				return true
			}
			c.im = inTableBodyIM
			return false
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Tr:
			if !c.popUntil(tableScope, atom.Tr) {
				return true
			}
			c.im = inTableBodyIM
			return true
		case atom.Table:
			if !c.popUntil(tableScope, atom.Tr) {
				return true
			}
			c.im = inTableBodyIM
			return false
		case atom.Tbody, atom.Tfoot, atom.Thead:
			if !c.elementInScope(tableScope, c.tok.TagAtom) {
				return true
			}
			c.popUntil(tableScope, atom.Tr)
			c.im = inTableBodyIM
			return false
		case atom.Body, atom.Caption, atom.Col, atom.Colgroup, atom.Html, atom.Td, atom.Th:
			return true
		}
	}
	return inTableIM(c)
}

func (c *Constructor) clearStackToRowContext() {
	for i := len(c.oe) - 1; i >= 0; i-- {
		switch c.Arena.Tag(c.oe[i]) {
		case atom.Tr, atom.Template, atom.Html:
			c.oe = c.oe[:i+1]
			return
		}
	}
}

// --- 12.2.6.4.15 "in cell" ---

func inCellIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Caption, atom.Col, atom.Colgroup, atom.Tbody, atom.Td,
			atom.Tfoot, atom.Th, atom.Thead, atom.Tr:
			if !c.elementInScope(tableScope, atom.Td, atom.Th) {
				return true
			}
			c.closeCell()
			return false
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Td, atom.Th:
			if !c.elementInScope(tableScope, c.tok.TagAtom) {
				return true
			}
			c.popUntil(tableScope, c.tok.TagAtom)
			c.clearActiveFormattingElements()
			c.im = inRowIM
			return true
		case atom.Body, atom.Caption, atom.Col, atom.Colgroup, atom.Html:
			return true
		case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			if !c.elementInScope(tableScope, c.tok.TagAtom) {
				return true
			}
			c.closeCell()
			return false
		}
	}
	return inBodyIM(c)
}

func (c *Constructor) closeCell() {
	if c.popUntil(tableScope, atom.Td) || c.popUntil(tableScope, atom.Th) {
		c.clearActiveFormattingElements()
		c.im = inRowIM
	}
}

// --- 12.2.6.4.16 "in select" ---

func inSelectIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		c.tok.Data = strings.ReplaceAll(c.tok.Data, "\x00", "")
		if c.tok.Data == "" {
			return true
		}
		c.addText(c.tok.Data)
	case token.Comment:
		c.addComment(c.tok.Data)
	case token.Doctype:
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Option:
			if atom.Equal(c.Arena.Tag(c.top()), atom.Option) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.addElement()
		case atom.Optgroup:
			if atom.Equal(c.Arena.Tag(c.top()), atom.Option) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			if atom.Equal(c.Arena.Tag(c.top()), atom.Optgroup) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.addElement()
		case atom.Select:
			c.popUntil(selectScope, atom.Select)
			c.resetInsertionMode()
		case atom.Input, atom.Keygen, atom.Textarea:
			if !c.elementInScope(selectScope, atom.Select) {
				return true
			}
			c.popUntil(selectScope, atom.Select)
			c.resetInsertionMode()
			return false
		case atom.Script, atom.Template:
			return inHeadIM(c)
		default:
			return true
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Optgroup:
			i := len(c.oe) - 1
			if atom.Equal(c.Arena.Tag(c.currentNode()), atom.Option) && i > 0 && atom.Equal(c.Arena.Tag(c.oe[i-1]), atom.Optgroup) {
				c.oe = c.oe[:len(c.oe)-1]
			}
			if atom.Equal(c.Arena.Tag(c.currentNode()), atom.Optgroup) {
				c.oe = c.oe[:len(c.oe)-1]
			}
		case atom.Option:
			if atom.Equal(c.Arena.Tag(c.currentNode()), atom.Option) {
				c.oe = c.oe[:len(c.oe)-1]
			}
		case atom.Select:
			if !c.elementInScope(selectScope, atom.Select) {
				return true
			}
			c.popUntil(selectScope, atom.Select)
			c.resetInsertionMode()
		case atom.Template:
			return inHeadIM(c)
		default:
			return true
		}
	case token.EOF:
		return inBodyIM(c)
	}
	return true
}

// --- 12.2.6.4.17 "in select in table" ---

func inSelectInTableIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.StartTag, token.EndTag:
		switch c.tok.TagAtom {
		case atom.Caption, atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr, atom.Td, atom.Th:
			if c.tok.Type == token.EndTag && !c.elementInScope(tableScope, c.tok.TagAtom) {
				return true
			}
			c.popUntil(selectScope, atom.Select)
			c.resetInsertionMode()
			return false
		}
	}
	return inSelectIM(c)
}

// --- 12.2.6.4.18 "in template" ---

func inTemplateIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character, token.Comment, token.Doctype:
		return inBodyIM(c)
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Base, atom.Basefont, atom.Bgsound, atom.Link, atom.Meta,
			atom.Noframes, atom.Script, atom.Style, atom.Template, atom.Title:
			return inHeadIM(c)
		case atom.Caption, atom.Colgroup, atom.Tbody, atom.Tfoot, atom.Thead:
			c.popTemplateInsertionMode()
			c.templateStack = append(c.templateStack, inTableIM)
			c.im = inTableIM
			return false
		case atom.Col:
			c.popTemplateInsertionMode()
			c.templateStack = append(c.templateStack, inColumnGroupIM)
			c.im = inColumnGroupIM
			return false
		case atom.Tr:
			c.popTemplateInsertionMode()
			c.templateStack = append(c.templateStack, inTableBodyIM)
			c.im = inTableBodyIM
			return false
		case atom.Td, atom.Th:
			c.popTemplateInsertionMode()
			c.templateStack = append(c.templateStack, inRowIM)
			c.im = inRowIM
			return false
		default:
			c.popTemplateInsertionMode()
			c.templateStack = append(c.templateStack, inBodyIM)
			c.im = inBodyIM
			return false
		}
	case token.EndTag:
		switch c.tok.TagAtom {
		case atom.Template:
			return inHeadIM(c)
		default:
			return true
		}
	case token.EOF:
		if !c.oeContains(atom.Template) {
			return true
		}
		c.generateImpliedEndTags()
		for len(c.oe) > 0 && !atom.Equal(c.Arena.Tag(c.currentNode()), atom.Template) {
			c.oe = c.oe[:len(c.oe)-1]
		}
		if len(c.oe) > 0 {
			c.oe = c.oe[:len(c.oe)-1]
		}
		c.clearActiveFormattingElements()
		c.popTemplateInsertionMode()
		c.resetInsertionMode()
		return false
	}
	return true
}

// popTemplateInsertionMode pops the template insertion-modes stack (spec
// §4.6's per-constructor side stack, distinct from c.im/c.originalIM), used
// when a </template> or EOF closes out the current template context.
func (c *Constructor) popTemplateInsertionMode() {
	if len(c.templateStack) > 0 {
		c.templateStack = c.templateStack[:len(c.templateStack)-1]
	}
}

// --- 12.2.6.4.19 "after body" ---

func afterBodyIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.EOF:
		return true
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s == "" {
			return inBodyIM(c)
		}
	case token.StartTag:
		if atom.Equal(c.tok.TagAtom, atom.Html) {
			return inBodyIM(c)
		}
	case token.EndTag:
		if atom.Equal(c.tok.TagAtom, atom.Html) {
			c.im = afterAfterBodyIM
			return true
		}
	case token.Comment:
		if len(c.oe) < 1 {
			return true
		}
		n := c.Arena.NewComment(c.tok.Data)
		c.Arena.AppendChild(c.oe[0], n)
		return true
	case token.Doctype:
		return true
	}
	c.im = inBodyIM
	return false
}

// --- 12.2.6.4.20 "in frameset" ---

func inFramesetIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		if allWhitespace(c.tok.Data) {
			c.addText(c.tok.Data)
		}
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Doctype:
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Frameset:
			c.addElement()
			return true
		case atom.Frame:
			c.addElement()
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
			return true
		case atom.Noframes:
			return inHeadIM(c)
		}
	case token.EndTag:
		if atom.Equal(c.tok.TagAtom, atom.Frameset) {
			if len(c.oe) > 1 {
				c.oe = c.oe[:len(c.oe)-1]
			}
			if len(c.oe) > 0 && !atom.Equal(c.Arena.Tag(c.currentNode()), atom.Frameset) {
				c.im = afterFramesetIM
			}
			return true
		}
	case token.EOF:
		return true
	}
	return true
}

// --- 12.2.6.4.21 "after frameset" ---

func afterFramesetIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Character:
		if allWhitespace(c.tok.Data) {
			c.addText(c.tok.Data)
		}
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.Doctype:
		return true
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Noframes:
			return inHeadIM(c)
		}
	case token.EndTag:
		if atom.Equal(c.tok.TagAtom, atom.Html) {
			c.im = afterAfterFramesetIM
			return true
		}
	case token.EOF:
		return true
	}
	return true
}

// --- 12.2.6.4.22 "after after body" ---

func afterAfterBodyIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Comment:
		n := c.Arena.NewComment(c.tok.Data)
		c.Arena.AppendChild(c.Doc, n)
		return true
	case token.Doctype:
		return inBodyIM(c)
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s == "" {
			return inBodyIM(c)
		}
	case token.StartTag:
		if atom.Equal(c.tok.TagAtom, atom.Html) {
			return inBodyIM(c)
		}
	case token.EOF:
		return true
	}
	c.im = inBodyIM
	return false
}

// --- 12.2.6.4.23 "after after frameset" ---

func afterAfterFramesetIM(c *Constructor) bool {
	switch c.tok.Type {
	case token.Comment:
		n := c.Arena.NewComment(c.tok.Data)
		c.Arena.AppendChild(c.Doc, n)
		return true
	case token.Doctype:
		return inBodyIM(c)
	case token.Character:
		s := trimLeadingWhitespace(c.tok.Data)
		if s == "" {
			return inBodyIM(c)
		}
	case token.StartTag:
		switch c.tok.TagAtom {
		case atom.Html:
			return inBodyIM(c)
		case atom.Noframes:
			return inHeadIM(c)
		}
	case token.EOF:
		return true
	}
	return true
}

// --- shared helpers ---

func allWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

func trimLeadingWhitespace(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
			i++
		default:
			return s[i:]
		}
	}
	return s[i:]
}

func (c *Constructor) oeContains(tag atom.Atom) bool {
	for _, n := range c.oe {
		if atom.Equal(c.Arena.Tag(n), tag) {
			return true
		}
	}
	return false
}

func firstAttrVal(attrs []token.Attribute, name atom.Atom) (string, bool) {
	for _, a := range attrs {
		if atom.Equal(a.Name, name) {
			return a.Val, true
		}
	}
	return "", false
}

// mergeAttrsInto implements the "for each attribute... if it is not already
// present, add it" merge spec.md's <html>/<body> reprocessing steps call
// for (used when a second <html> or <body> start tag is seen).
func mergeAttrsInto(arena *dom.Arena, n dom.NodeID, attrs []token.Attribute) {
	existing := arena.Attr(n)
	for _, a := range attrs {
		found := false
		for _, e := range existing {
			if atom.Equal(e.Name, a.Name) && e.Namespace == a.Namespace {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, dom.Attribute{Namespace: a.Namespace, Prefix: a.Prefix, Name: a.Name, Val: a.Val})
		}
	}
	arena.SetAttr(n, existing)
}

// im2Name identifies the current insertion mode by name for the spot
// ("in body"'s start-tag branch for <select>) that needs
// to branch on which table-context mode is in effect without exposing
// function identity comparisons throughout the package.
func (c *Constructor) im2Name() string {
	switch {
	case sameIM(c.im, inTableIM):
		return "inTable"
	case sameIM(c.im, inCaptionIM):
		return "inCaption"
	case sameIM(c.im, inTableBodyIM):
		return "inTableBody"
	case sameIM(c.im, inRowIM):
		return "inRow"
	case sameIM(c.im, inCellIM):
		return "inCell"
	}
	return ""
}

// sameIM compares two insertion-mode functions by entry point. Go func
// values aren't comparable with ==, so this goes through reflect — used
// only by im2Name, which needs to recognize "are we in one of the table
// family modes" without threading an extra name field through every
// mode transition.
func sameIM(a, b insertionMode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
