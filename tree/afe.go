package tree

import (
	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

// afeEntry is one slot in the active-formatting-elements list of spec
// §4.6.1.3: either a scope marker or a live element reference.
type afeEntry struct {
	marker bool
	node   dom.NodeID
}

// afeIndex returns n's index in the active-formatting-elements list, or -1.
func (c *Constructor) afeIndex(n dom.NodeID) int {
	for i := len(c.afe) - 1; i >= 0; i-- {
		if !c.afe[i].marker && c.afe[i].node == n {
			return i
		}
	}
	return -1
}

func (c *Constructor) afeRemove(n dom.NodeID) {
	i := c.afeIndex(n)
	if i == -1 {
		return
	}
	c.afe = append(c.afe[:i], c.afe[i+1:]...)
}

func (c *Constructor) afeInsert(i int, n dom.NodeID) {
	c.afe = append(c.afe, afeEntry{})
	copy(c.afe[i+1:], c.afe[i:])
	c.afe[i] = afeEntry{node: n}
}

func (c *Constructor) afeTop() dom.NodeID {
	if len(c.afe) == 0 {
		return 0
	}
	e := c.afe[len(c.afe)-1]
	if e.marker {
		return 0
	}
	return e.node
}

// pushFormattingMarker appends a scope marker (spec §4.6.1.3, used at the start of
// <table>/<template>/<object>/... boundaries).
func (c *Constructor) pushFormattingMarker() {
	c.afe = append(c.afe, afeEntry{marker: true})
}

// clearActiveFormattingElements implements the "clear the list of active
// formatting elements up to the last marker" algorithm.
func (c *Constructor) clearActiveFormattingElements() {
	for len(c.afe) > 0 {
		e := c.afe[len(c.afe)-1]
		c.afe = c.afe[:len(c.afe)-1]
		if e.marker {
			return
		}
	}
}

// addFormattingElement implements spec §4.6.1.3's "push onto the list of
// active formatting elements", including the Noah's ark clause (at most
// three near-identical entries survive since the last marker).
func (c *Constructor) addFormattingElement() {
	tag, attr := c.tok.TagAtom, c.tok.Attr
	c.addElement()
	n := c.currentNode()

	identical := 0
findIdentical:
	for i := len(c.afe) - 1; i >= 0; i-- {
		e := c.afe[i]
		if e.marker {
			break
		}
		if c.Arena.Namespace(e.node) != "" {
			continue
		}
		if !atom.Equal(c.Arena.Tag(e.node), tag) {
			continue
		}
		existing := c.Arena.Attr(e.node)
		if len(existing) != len(attr) {
			continue
		}
		for _, a := range existing {
			found := false
			for _, b := range attr {
				if atom.Equal(a.Name, b.Name) && a.Namespace == b.Namespace && a.Val == b.Val {
					found = true
					break
				}
			}
			if !found {
				continue findIdentical
			}
		}
		identical++
		if identical >= 3 {
			c.afeRemove(e.node)
		}
	}

	c.afe = append(c.afe, afeEntry{node: n})
}

// reconstructActiveFormattingElements implements spec §4.6.1.3's
// reconstruction algorithm, re-inserting formatting elements that fell out
// of the open-elements stack (e.g. across a misnested block).
func (c *Constructor) reconstructActiveFormattingElements() {
	if len(c.afe) == 0 {
		return
	}
	n := c.afe[len(c.afe)-1]
	if n.marker || c.oeIndex(n.node) != -1 {
		return
	}
	i := len(c.afe) - 1
	for {
		if i == 0 {
			i = -1
			break
		}
		i--
		n = c.afe[i]
		if n.marker || c.oeIndex(n.node) != -1 {
			break
		}
	}
	for {
		i++
		clone := c.Arena.CloneElementForAdoption(c.afe[i].node)
		c.addChildNode(clone)
		c.oe = append(c.oe, clone)
		c.afe[i] = afeEntry{node: clone}
		if i == len(c.afe)-1 {
			break
		}
	}
}
