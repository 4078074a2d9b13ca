package tree

import (
	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

// scope enumerates the five scope kinds of spec §4.6.1.2 that gate
// "has an element in ... scope" checks.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// defaultScopeStopTags are the per-namespace boundary tags shared by the
// default, list-item and button scopes (spec §4.6.1.2).
var defaultScopeStopTags = map[string][]atom.Atom{
	"": {atom.Applet, atom.Caption, atom.Html, atom.Table, atom.Td, atom.Th,
		atom.Marquee, atom.Object, atom.Template},
	"math": {atom.Annotation_Xml, atom.Mi, atom.Mn, atom.Mo, atom.Ms, atom.Mtext},
	"svg":  {atom.Desc, atom.ForeignObject, atom.Title},
}

// indexInScope returns the index on the open-elements stack of the highest
// element whose tag is in matchTags and which is in the given scope, or -1.
func (c *Constructor) indexInScope(s scope, matchTags ...atom.Atom) int {
	for i := len(c.oe) - 1; i >= 0; i-- {
		n := c.oe[i]
		tag := c.Arena.Tag(n)
		ns := c.Arena.Namespace(n)
		if ns == "" {
			for _, t := range matchTags {
				if atom.Equal(t, tag) {
					return i
				}
			}
			switch s {
			case listItemScope:
				if atom.Equal(tag, atom.Ol) || atom.Equal(tag, atom.Ul) {
					return -1
				}
			case buttonScope:
				if atom.Equal(tag, atom.Button) {
					return -1
				}
			case tableScope:
				if atom.Equal(tag, atom.Html) || atom.Equal(tag, atom.Table) || atom.Equal(tag, atom.Template) {
					return -1
				}
			case selectScope:
				if !atom.Equal(tag, atom.Optgroup) && !atom.Equal(tag, atom.Option) {
					return -1
				}
			}
		}
		switch s {
		case defaultScope, listItemScope, buttonScope:
			for _, t := range defaultScopeStopTags[ns] {
				if atom.Equal(t, tag) {
					return -1
				}
			}
		}
	}
	return -1
}

func (c *Constructor) elementInScope(s scope, matchTags ...atom.Atom) bool {
	return c.indexInScope(s, matchTags...) != -1
}

// popUntil pops the stack down through and including the highest matching,
// in-scope element; it reports whether such an element existed.
func (c *Constructor) popUntil(s scope, matchTags ...atom.Atom) bool {
	if i := c.indexInScope(s, matchTags...); i != -1 {
		c.oe = c.oe[:i]
		return true
	}
	return false
}

// oeIndex returns n's index on the open-elements stack, or -1.
func (c *Constructor) oeIndex(n dom.NodeID) int {
	for i := len(c.oe) - 1; i >= 0; i-- {
		if c.oe[i] == n {
			return i
		}
	}
	return -1
}

// oeRemove deletes n from the open-elements stack, preserving order.
func (c *Constructor) oeRemove(n dom.NodeID) {
	i := c.oeIndex(n)
	if i == -1 {
		return
	}
	c.oe = append(c.oe[:i], c.oe[i+1:]...)
}

// oeInsert inserts n at position i on the open-elements stack.
func (c *Constructor) oeInsert(i int, n dom.NodeID) {
	c.oe = append(c.oe, 0)
	copy(c.oe[i+1:], c.oe[i:])
	c.oe[i] = n
}
