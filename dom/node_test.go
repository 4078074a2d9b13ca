package dom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/atom"
)

func TestAppendChildAndChildren(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	e1 := a.NewElement("", "", atom.LookupTag("p"), nil)
	e2 := a.NewElement("", "", atom.LookupTag("span"), nil)
	a.AppendChild(root, e1)
	a.AppendChild(root, e2)

	require.Equal(t, []NodeID{e1, e2}, a.Children(root))
	require.Equal(t, root, a.Parent(e1))
	require.Equal(t, root, a.Parent(e2))
	require.Equal(t, e1, a.FirstChild(root))
	require.Equal(t, e2, a.LastChild(root))
}

func TestInsertBeforeOrdering(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	e1 := a.NewElement("", "", atom.LookupTag("a"), nil)
	e2 := a.NewElement("", "", atom.LookupTag("b"), nil)
	e3 := a.NewElement("", "", atom.LookupTag("c"), nil)
	a.AppendChild(root, e1)
	a.AppendChild(root, e3)
	a.InsertBefore(root, e2, e3)

	require.Equal(t, []NodeID{e1, e2, e3}, a.Children(root))
}

func TestRemoveChildDetachesButKeepsSubtree(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	parent := a.NewElement("", "", atom.LookupTag("div"), nil)
	child := a.NewText("hello")
	a.AppendChild(root, parent)
	a.AppendChild(parent, child)

	a.RemoveChild(parent)
	require.Zero(t, a.Parent(parent), "RemoveChild must clear the node's parent link")
	require.Empty(t, a.Children(root), "root must have no children after its only child is removed")
	require.Equal(t, child, a.FirstChild(parent), "RemoveChild must not disturb the removed node's own subtree")
}

func TestMoveChildrenReparentsInOrder(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	src := a.NewElement("", "", atom.LookupTag("div"), nil)
	dst := a.NewElement("", "", atom.LookupTag("span"), nil)
	a.AppendChild(root, src)
	a.AppendChild(root, dst)

	c1 := a.NewText("1")
	c2 := a.NewText("2")
	a.AppendChild(src, c1)
	a.AppendChild(src, c2)

	a.MoveChildren(dst, src)

	require.Empty(t, a.Children(src), "src must be empty after MoveChildren")
	require.Equal(t, []NodeID{c1, c2}, a.Children(dst), "dst children must be in source order")
}

func TestInsertCharacterCoalescesAdjacentTextNode(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	a.InsertCharacter(root, 0, "foo")
	a.InsertCharacter(root, 0, "bar")

	children := a.Children(root)
	require.Len(t, children, 1, "InsertCharacter must coalesce into a single Text node")
	require.Equal(t, "foobar", a.Data(children[0]))
}

func TestInsertCharacterDoesNotCoalesceAcrossElement(t *testing.T) {
	a := NewArena()
	root := a.New(DocumentNode)
	a.InsertCharacter(root, 0, "foo")
	el := a.NewElement("", "", atom.LookupTag("br"), nil)
	a.AppendChild(root, el)
	a.InsertCharacter(root, 0, "bar")

	children := a.Children(root)
	require.Len(t, children, 3, "expected text/element/text")
	require.Equal(t, TextNode, a.Type(children[0]))
	require.Equal(t, TextNode, a.Type(children[2]))
}

func TestCloneElementForAdoptionCopiesAttributes(t *testing.T) {
	a := NewArena()
	attrs := []Attribute{{Name: atom.Href, Val: "a"}}
	orig := a.NewElement("", "", atom.LookupTag("a"), attrs)

	clone := a.CloneElementForAdoption(orig)
	require.NotEqual(t, orig, clone, "clone must be a distinct node")
	require.True(t, atom.Equal(a.Tag(clone), a.Tag(orig)), "clone must share the original's tag")

	cloneAttrs := a.Attr(clone)
	require.Len(t, cloneAttrs, 1)
	require.Equal(t, "a", cloneAttrs[0].Val)

	// Mutating the clone's attribute slice must not affect the original.
	cloneAttrs[0].Val = "b"
	a.SetAttr(clone, cloneAttrs)
	v, _ := a.AttrVal(orig, atom.Href)
	require.Equal(t, "a", v, "mutating the clone's attributes must not affect the original")
}

func TestFreeAndReuseSlot(t *testing.T) {
	a := NewArena()
	n1 := a.NewText("x")
	a.Free(n1)
	n2 := a.NewText("y")
	require.Equal(t, n1, n2, "Free must make its slot available for reuse")
	require.Equal(t, "y", a.Data(n2), "reused slot must be freshly initialized")
}
