package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

func newTestConstructor() (*Constructor, *dom.Arena) {
	arena := dom.NewArena()
	c := New(arena, nil, nil)
	return c, arena
}

func pushElement(c *Constructor, arena *dom.Arena, tag atom.Atom) dom.NodeID {
	n := arena.NewElement("", "", tag, nil)
	c.oe = append(c.oe, n)
	return n
}

func TestHasInScopeStopsAtTableBoundary(t *testing.T) {
	c, arena := newTestConstructor()
	pushElement(c, arena, atom.Html)
	pushElement(c, arena, atom.Body)
	pushElement(c, arena, atom.Table)
	pushElement(c, arena, atom.Td)
	pushElement(c, arena, atom.P)

	require.True(t, c.elementInScope(defaultScope, atom.P), "nothing blocks between td and p")

	// A <p> above the table boundary must not be visible once a <td> has
	// been pushed: a bare scan would find it, but the table-cell boundary
	// must stop the search first. Rebuild without the enclosing td.
	c2, arena2 := newTestConstructor()
	pushElement(c2, arena2, atom.Html)
	pushElement(c2, arena2, atom.Body)
	pushElement(c2, arena2, atom.P)
	pushElement(c2, arena2, atom.Table)
	pushElement(c2, arena2, atom.Div)
	require.False(t, c2.elementInScope(defaultScope, atom.P), "a p above a table boundary must not be in scope")
}

func TestHasInListItemScopeStopsAtOlUl(t *testing.T) {
	c, arena := newTestConstructor()
	pushElement(c, arena, atom.Html)
	pushElement(c, arena, atom.Body)
	pushElement(c, arena, atom.Li)
	pushElement(c, arena, atom.Ul)
	pushElement(c, arena, atom.Li)

	require.True(t, c.elementInScope(listItemScope, atom.Li), "the innermost li must be in list-item scope")
	// Pop only the innermost li: the ul now sits above the outer li and
	// stops the scan before it is reached.
	c.oe = c.oe[:4] // html, body, li, ul
	require.False(t, c.elementInScope(listItemScope, atom.Li), "a ul between the top and the outer li must stop the list-item scope scan")
	// Pop the innermost li and its ul; the outer li is now the target and
	// must still be found.
	c.oe = c.oe[:3] // html, body, li
	require.True(t, c.elementInScope(listItemScope, atom.Li), "the outer li must be in list-item scope once the nested ul/li are popped")
}

func TestHasInButtonScopeStopsAtButton(t *testing.T) {
	c, arena := newTestConstructor()
	pushElement(c, arena, atom.Html)
	pushElement(c, arena, atom.Body)
	pushElement(c, arena, atom.P)
	pushElement(c, arena, atom.Button)

	require.False(t, c.elementInScope(buttonScope, atom.P), "a p enclosing the current button must not be in button scope")
}

func TestPopUntilRemovesThroughMatchingElement(t *testing.T) {
	c, arena := newTestConstructor()
	pushElement(c, arena, atom.Html)
	pushElement(c, arena, atom.Body)
	pushElement(c, arena, atom.P)
	pushElement(c, arena, atom.Span)

	ok := c.popUntil(defaultScope, atom.P)
	require.True(t, ok)
	require.Len(t, c.oe, 2, "html, body should remain after popping through p")
}

func TestOeIndexAndRemove(t *testing.T) {
	c, arena := newTestConstructor()
	pushElement(c, arena, atom.Html)
	body := pushElement(c, arena, atom.Body)
	pushElement(c, arena, atom.P)

	require.Equal(t, 1, c.oeIndex(body))
	c.oeRemove(body)
	require.Equal(t, -1, c.oeIndex(body), "body must be gone from the stack after oeRemove")
	require.Len(t, c.oe, 2, "html, p should remain after removing the middle entry")
}
