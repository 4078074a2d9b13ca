package tree

import (
	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

// adoptionAgency implements spec §4.6.1.4's "adoption agency algorithm",
// adapted from the teacher's inBodyEndTagFormatting: up to 8 outer-loop
// iterations each run up to 3 inner-loop iterations (per the bookmark's
// Noah's-ark-style bound), reparenting across the open-elements stack and
// active-formatting-elements list.
func (c *Constructor) adoptionAgency(tagAtom atom.Atom, tagName string) {
	if cur := c.currentNode(); c.nodeMatchesTag(cur, tagAtom, tagName) && c.afeIndex(cur) == -1 {
		c.oe = c.oe[:len(c.oe)-1]
		return
	}

	for i := 0; i < 8; i++ {
		var formatting dom.NodeID
		for j := len(c.afe) - 1; j >= 0; j-- {
			if c.afe[j].marker {
				break
			}
			if atom.Equal(c.Arena.Tag(c.afe[j].node), tagAtom) {
				formatting = c.afe[j].node
				break
			}
		}
		if formatting == 0 {
			c.adoptionAgencyOtherEndTag(tagAtom, tagName)
			return
		}

		feIndex := c.oeIndex(formatting)
		if feIndex == -1 {
			c.afeRemove(formatting)
			return
		}
		if !c.elementInScope(defaultScope, tagAtom) {
			return
		}

		var furthestBlock dom.NodeID
		for _, e := range c.oe[feIndex:] {
			if c.isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == 0 {
			e := c.currentNode()
			c.oe = c.oe[:len(c.oe)-1]
			for e != formatting {
				e = c.currentNode()
				c.oe = c.oe[:len(c.oe)-1]
			}
			c.afeRemove(formatting)
			return
		}

		commonAncestor := c.Doc
		if feIndex > 0 {
			commonAncestor = c.oe[feIndex-1]
		}
		bookmark := c.afeIndex(formatting)

		lastNode := furthestBlock
		node := furthestBlock
		x := c.oeIndex(node)
		j := 0
		for {
			j++
			x--
			node = c.oe[x]
			if node == formatting {
				break
			}
			if ni := c.afeIndex(node); j > 3 && ni > -1 {
				c.afeRemove(node)
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if c.afeIndex(node) == -1 {
				c.oeRemove(node)
				continue
			}
			clone := c.Arena.CloneElementForAdoption(node)
			c.afe[c.afeIndex(node)] = afeEntry{node: clone}
			c.oe[c.oeIndex(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = c.afeIndex(node) + 1
			}
			if c.Arena.Parent(lastNode) != 0 {
				c.Arena.RemoveChild(lastNode)
			}
			c.Arena.AppendChild(node, lastNode)
			lastNode = node
		}

		if c.Arena.Parent(lastNode) != 0 {
			c.Arena.RemoveChild(lastNode)
		}
		switch c.Arena.Tag(commonAncestor) {
		case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			c.fosterParent(lastNode)
		default:
			c.Arena.AppendChild(commonAncestor, lastNode)
		}

		clone := c.Arena.CloneElementForAdoption(formatting)
		c.Arena.MoveChildren(clone, furthestBlock)
		c.Arena.AppendChild(furthestBlock, clone)

		if oldLoc := c.afeIndex(formatting); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		c.afeRemove(formatting)
		c.afeInsert(bookmark, clone)

		c.oeRemove(formatting)
		c.oeInsert(c.oeIndex(furthestBlock)+1, clone)
	}
}

// adoptionAgencyOtherEndTag is the "any other end tag" fallback of spec
// §4.6.1.4, shared with the plain in-body end-tag handling.
func (c *Constructor) adoptionAgencyOtherEndTag(tagAtom atom.Atom, tagName string) {
	for i := len(c.oe) - 1; i >= 0; i-- {
		if c.nodeMatchesTag(c.oe[i], tagAtom, tagName) {
			c.oe = c.oe[:i]
			break
		}
		if c.isSpecialElement(c.oe[i]) {
			break
		}
	}
}

func (c *Constructor) nodeMatchesTag(n dom.NodeID, tagAtom atom.Atom, tagName string) bool {
	t := c.Arena.Tag(n)
	if tagAtom.Code() != 0 || t.Code() != 0 {
		return atom.Equal(t, tagAtom)
	}
	return t.String() == tagName
}

// isSpecialElement reports whether n's (namespace, tag) pair is in the
// "special" category of spec §4.6.1.1 (the furthest-block search and the
// "any other end tag" stop condition both key off it).
func (c *Constructor) isSpecialElement(n dom.NodeID) bool {
	return atom.IsSpecial(c.Arena.Tag(n), c.Arena.Namespace(n))
}
