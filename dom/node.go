// Package dom implements the arena-based node model of spec §3: an
// index-keyed slice arena owning every node, with an intrusive free list
// for reuse on deletion. Node identity for the adoption agency ("the same
// element after being re-parented") is the stability of a NodeID across
// moves — re-architected from the teacher's pointer-based html.Node per
// spec §9's design note.
package dom

import "github.com/corehtml/html5/atom"

// NodeType is the tagged-union discriminant of spec §3's Node type.
type NodeType uint8

const (
	ErrorNode NodeType = iota
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	ElementNode
	TextNode
	CommentNode
	ProcessingInstructionNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "#document"
	case DocumentTypeNode:
		return "#doctype"
	case DocumentFragmentNode:
		return "#document-fragment"
	case ElementNode:
		return "#element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case ProcessingInstructionNode:
		return "#processing-instruction"
	}
	return "#error"
}

// Mode is the document quirks-mode flag from spec §3.
type Mode uint8

const (
	NoQuirks Mode = iota
	Quirks
	LimitedQuirks
)

// NodeID identifies a node inside an Arena. The zero value denotes
// absence, per spec §3's "index 0 denotes absence" rule.
type NodeID uint32

// Attribute is the (namespace, prefix, local-name atom, value) quadruple of
// spec §3. Default namespace is HTML (empty string here), default prefix
// is empty.
type Attribute struct {
	Namespace string
	Prefix    string
	Name      atom.Atom
	Val       string
}

// node is the arena's internal storage for one slot; free slots reuse it
// via freeNext.
type node struct {
	used   bool
	typ    NodeType
	parent, prev, next, firstChild, lastChild NodeID
	freeNext NodeID

	// Element fields.
	namespace string // "" (HTML), "math" (MathML), or "svg" (SVG)
	prefix    string
	tag       atom.Atom
	attr      []Attribute

	// Text/Comment/ProcessingInstruction data, or DocumentType name.
	data string

	// DocumentType-only.
	publicID, systemID string

	// Document-only.
	mode Mode
}

// Arena owns every node in one parsed tree; it is never shared between
// parse sessions (spec §5).
type Arena struct {
	nodes    []node
	freeHead NodeID
}

// NewArena returns an empty arena. Index 0 is reserved as the nil ID.
func NewArena() *Arena {
	return &Arena{nodes: make([]node, 1)}
}

// New allocates a node of the given type, reusing a freed slot if one is
// available.
func (a *Arena) New(typ NodeType) NodeID {
	if a.freeHead != 0 {
		id := a.freeHead
		n := &a.nodes[id]
		a.freeHead = n.freeNext
		*n = node{used: true, typ: typ}
		return id
	}
	a.nodes = append(a.nodes, node{used: true, typ: typ})
	return NodeID(len(a.nodes) - 1)
}

// NewElement allocates an element node with the given namespace, prefix,
// tag atom and attributes — spec §4.5's create-element primitive.
func (a *Arena) NewElement(namespace, prefix string, tag atom.Atom, attr []Attribute) NodeID {
	id := a.New(ElementNode)
	n := a.at(id)
	n.namespace = namespace
	n.prefix = prefix
	n.tag = tag
	n.attr = attr
	return id
}

// NewText allocates a text node.
func (a *Arena) NewText(data string) NodeID {
	id := a.New(TextNode)
	a.at(id).data = data
	return id
}

// NewComment allocates a comment node.
func (a *Arena) NewComment(data string) NodeID {
	id := a.New(CommentNode)
	a.at(id).data = data
	return id
}

// NewDoctype allocates a DocumentType node.
func (a *Arena) NewDoctype(name, publicID, systemID string) NodeID {
	id := a.New(DocumentTypeNode)
	n := a.at(id)
	n.data = name
	n.publicID = publicID
	n.systemID = systemID
	return id
}

// Free releases a node's slot back to the free list. The caller must have
// already detached the node from any tree (spec §3 invariant: a node
// appears in at most one tree).
func (a *Arena) Free(id NodeID) {
	if id == 0 {
		return
	}
	n := &a.nodes[id]
	*n = node{freeNext: a.freeHead}
	a.freeHead = id
}

func (a *Arena) at(id NodeID) *node {
	return &a.nodes[id]
}

// --- accessors ---

func (a *Arena) Type(id NodeID) NodeType       { return a.at(id).typ }
func (a *Arena) Parent(id NodeID) NodeID       { return a.at(id).parent }
func (a *Arena) PrevSibling(id NodeID) NodeID  { return a.at(id).prev }
func (a *Arena) NextSibling(id NodeID) NodeID  { return a.at(id).next }
func (a *Arena) FirstChild(id NodeID) NodeID   { return a.at(id).firstChild }
func (a *Arena) LastChild(id NodeID) NodeID    { return a.at(id).lastChild }
func (a *Arena) Namespace(id NodeID) string    { return a.at(id).namespace }
func (a *Arena) SetNamespace(id NodeID, ns string) { a.at(id).namespace = ns }
func (a *Arena) Prefix(id NodeID) string       { return a.at(id).prefix }
func (a *Arena) Tag(id NodeID) atom.Atom       { return a.at(id).tag }
func (a *Arena) Data(id NodeID) string         { return a.at(id).data }
func (a *Arena) SetData(id NodeID, s string)   { a.at(id).data = s }
func (a *Arena) PublicID(id NodeID) string     { return a.at(id).publicID }
func (a *Arena) SystemID(id NodeID) string     { return a.at(id).systemID }
func (a *Arena) DocMode(id NodeID) Mode        { return a.at(id).mode }
func (a *Arena) SetDocMode(id NodeID, m Mode)  { a.at(id).mode = m }

// Attr returns the node's attribute list. Callers must not mutate the
// returned slice's backing array in place; use SetAttr.
func (a *Arena) Attr(id NodeID) []Attribute { return a.at(id).attr }
func (a *Arena) SetAttr(id NodeID, attr []Attribute) { a.at(id).attr = attr }

// AttrVal returns the value of the first attribute with the given local
// name in the default (empty) namespace, and whether it was present.
func (a *Arena) AttrVal(id NodeID, name atom.Atom) (string, bool) {
	for _, at := range a.at(id).attr {
		if at.Namespace == "" && atom.Equal(at.Name, name) {
			return at.Val, true
		}
	}
	return "", false
}

// Children returns the ordered list of child NodeIDs. It allocates; use
// FirstChild/NextSibling to walk without allocating in hot paths.
func (a *Arena) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := a.FirstChild(id); c != 0; c = a.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// --- tree mutation primitives (spec §4.5) ---

// AppendChild inserts n as the last child of parent. n must currently be a
// root (no parent).
func (a *Arena) AppendChild(parent, n NodeID) {
	a.InsertBefore(parent, n, 0)
}

// InsertBefore inserts n as a child of parent, immediately before
// beforeChild (or at the end, if beforeChild is 0).
func (a *Arena) InsertBefore(parent, n, beforeChild NodeID) {
	if cur := a.at(n).parent; cur != 0 {
		panic("dom: node already has a parent")
	}
	pn := a.at(parent)
	nn := a.at(n)
	nn.parent = parent

	if beforeChild == 0 {
		prev := pn.lastChild
		nn.prev = prev
		nn.next = 0
		if prev != 0 {
			a.at(prev).next = n
		} else {
			pn.firstChild = n
		}
		pn.lastChild = n
		return
	}

	bc := a.at(beforeChild)
	prev := bc.prev
	nn.prev = prev
	nn.next = beforeChild
	bc.prev = n
	if prev != 0 {
		a.at(prev).next = n
	} else {
		pn.firstChild = n
	}
}

// RemoveChild detaches n from its parent. n keeps its own subtree intact;
// only its position among siblings is cleared.
func (a *Arena) RemoveChild(n NodeID) {
	nn := a.at(n)
	parent := nn.parent
	if parent == 0 {
		return
	}
	pn := a.at(parent)
	if nn.prev != 0 {
		a.at(nn.prev).next = nn.next
	} else {
		pn.firstChild = nn.next
	}
	if nn.next != 0 {
		a.at(nn.next).prev = nn.prev
	} else {
		pn.lastChild = nn.prev
	}
	nn.parent, nn.prev, nn.next = 0, 0, 0
}

// MoveChildren reparents every child of src onto dst, in order, per spec
// §4.5.
func (a *Arena) MoveChildren(dst, src NodeID) {
	for {
		c := a.FirstChild(src)
		if c == 0 {
			break
		}
		a.RemoveChild(c)
		a.AppendChild(dst, c)
	}
}

// CloneElementForAdoption returns a fresh element with the same namespace,
// prefix, tag and a copy of attr — used by the adoption agency to
// re-create a formatting element with identical attributes (spec §4.5).
func (a *Arena) CloneElementForAdoption(id NodeID) NodeID {
	n := a.at(id)
	attrCopy := make([]Attribute, len(n.attr))
	copy(attrCopy, n.attr)
	return a.NewElement(n.namespace, n.prefix, n.tag, attrCopy)
}

// InsertCharacter appends scalar c to the Text node ending at the
// insertion position (parent, beforeChild), creating one if none is
// adjacent — spec §4.5.
func (a *Arena) InsertCharacter(parent, beforeChild NodeID, c string) {
	var candidate NodeID
	if beforeChild == 0 {
		candidate = a.LastChild(parent)
	} else {
		candidate = a.PrevSibling(beforeChild)
	}
	if candidate != 0 && a.Type(candidate) == TextNode {
		a.at(candidate).data += c
		return
	}
	t := a.NewText(c)
	a.InsertBefore(parent, t, beforeChild)
}
