// Package token defines the tagged-union token the tokenizer emits and the
// tree constructor consumes, per spec §3.
package token

import "github.com/corehtml/html5/atom"

// Type identifies which arm of the token union a Token holds.
type Type uint8

const (
	// Error is the zero value; the tokenizer never emits it (end of
	// input is signalled with an EOF token).
	Error Type = iota
	Doctype
	StartTag
	EndTag
	// SelfClosing is a StartTag with its self-closing flag set; the tree
	// constructor folds it back into StartTag immediately and reads the
	// flag off Token.SelfClosing, matching the teacher's
	// p.tok.Type == SelfClosingTagToken handling in parseCurrentToken.
	SelfClosing
	Comment
	Character
	EOF
)

func (t Type) String() string {
	switch t {
	case Error:
		return "Error"
	case Doctype:
		return "Doctype"
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case SelfClosing:
		return "SelfClosing"
	case Comment:
		return "Comment"
	case Character:
		return "Character"
	case EOF:
		return "EOF"
	}
	return "Invalid"
}

// Attribute is the quadruple spec §3 defines: namespace, prefix, local
// name (as an atom for cheap comparison) and string value. Duplicate
// detection ignores Value.
type Attribute struct {
	Namespace string
	Prefix    string
	Name      atom.Atom
	Val       string
}

// DoctypeData carries the three optional doctype fields plus the force-quirks
// flag, per spec §3.
type DoctypeData struct {
	Name      string
	NameSet   bool
	Public    string
	PublicSet bool
	System    string
	SystemSet bool
	ForceQuirks bool
}

// Token is the tagged union spec.md §3 calls for. Only the fields relevant
// to Type are meaningful.
type Token struct {
	Type Type

	// Doctype fields.
	Doctype DoctypeData

	// Start/end tag fields. TagAtom has code 0 for custom elements; TagName
	// preserves the ASCII-lowercased name (tag names are always
	// lowercased as consumed — spec §4.4).
	TagAtom      atom.Atom
	TagName      string
	Attr         []Attribute
	SelfClosing  bool

	// Comment and Character share the Data field: the comment text, or a
	// single scalar value encoded as a string (spec.md models Character
	// as "one scalar" per token; the tokenizer emits one Character token
	// per scalar and does not coalesce runs).
	Data string
}

// String renders a debug form of the token; it is not used for
// serialization (see the serialize package for that).
func (t Token) String() string {
	switch t.Type {
	case StartTag, SelfClosing:
		return "<" + t.TagName + ">"
	case EndTag:
		return "</" + t.TagName + ">"
	case Comment:
		return "<!--" + t.Data + "-->"
	case Doctype:
		return "<!DOCTYPE " + t.Doctype.Name + ">"
	case Character:
		return t.Data
	case EOF:
		return ""
	}
	return ""
}
