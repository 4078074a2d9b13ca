// Package serialize implements spec §4.8: walking a dom.Arena tree back
// into HTML text, following the WHATWG "HTML fragment serialization
// algorithm". There is no third-party collaborator for this in the
// corpus — the teacher's own render.go (chtml/render.go) renders a
// template-expression tree into a cloned golang.org/x/net/html.Node tree,
// not text, and delegates actual text output to x/net/html.Render, which
// this module does not import. See DESIGN.md for why this stays
// hand-written.
package serialize

import (
	"bufio"
	"io"
	"strings"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

// rawTextElements never have their children's text escaped: the tokenizer
// never interprets markup inside them, so the serializer must not invent
// any by escaping "<" or "&".
var rawTextElements = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// Render writes node and its descendants as HTML text to w. If node is a
// #document or #document-fragment, only its children are serialized (the
// node itself has no markup form); otherwise node's own start/end tags are
// included.
func Render(w io.Writer, arena *dom.Arena, node dom.NodeID) error {
	bw := bufio.NewWriter(w)
	s := &serializer{arena: arena, w: bw}
	switch arena.Type(node) {
	case dom.DocumentNode, dom.DocumentFragmentNode:
		s.renderChildren(node, false)
	default:
		s.renderNode(node, false)
	}
	if s.err != nil {
		return s.err
	}
	return bw.Flush()
}

// RenderString is a convenience wrapper around Render for callers that want
// the serialized text directly.
func RenderString(arena *dom.Arena, node dom.NodeID) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, arena, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type serializer struct {
	arena *dom.Arena
	w     *bufio.Writer
	err   error
}

func (s *serializer) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(str)
}

func (s *serializer) renderChildren(n dom.NodeID, raw bool) {
	for c := s.arena.FirstChild(n); c != 0; c = s.arena.NextSibling(c) {
		if s.err != nil {
			return
		}
		s.renderNode(c, raw)
	}
}

func (s *serializer) renderNode(n dom.NodeID, parentRaw bool) {
	switch s.arena.Type(n) {
	case dom.ElementNode:
		s.renderElement(n)
	case dom.TextNode:
		s.renderText(s.arena.Data(n), parentRaw)
	case dom.CommentNode:
		s.writeString("<!--")
		s.writeString(s.arena.Data(n))
		s.writeString("-->")
	case dom.DocumentTypeNode:
		s.writeString("<!DOCTYPE ")
		s.writeString(s.arena.Data(n))
		s.writeString(">")
	case dom.DocumentFragmentNode:
		s.renderChildren(n, parentRaw)
	}
}

func (s *serializer) renderElement(n dom.NodeID) {
	tag := s.arena.Tag(n)
	name := tag.String()

	s.writeString("<")
	s.writeString(name)
	for _, a := range s.arena.Attr(n) {
		s.writeString(" ")
		s.writeString(a.Name.String())
		s.writeString(`="`)
		s.writeString(escapeAttrValue(a.Val))
		s.writeString(`"`)
	}
	s.writeString(">")

	if atom.IsVoid(tag) && s.arena.Namespace(n) == "" {
		return
	}

	raw := s.arena.Namespace(n) == "" && rawTextElements[strings.ToLower(name)]
	s.renderChildren(n, raw)

	s.writeString("</")
	s.writeString(name)
	s.writeString(">")
}

func (s *serializer) renderText(data string, raw bool) {
	if raw {
		s.writeString(data)
		return
	}
	s.writeString(escapeText(data))
}

// escapeText implements the fragment serialization algorithm's text-node
// escaping: "&" before "amp;" candidates, literal U+00A0 as "&nbsp;", and
// "<"/">" so re-parsing the output never produces new elements.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttrValue additionally escapes the quote the value is wrapped in;
// "<"/">" are left alone inside attribute values per the algorithm.
func escapeAttrValue(s string) string {
	return attrEscaper.Replace(s)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	" ", "&nbsp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	" ", "&nbsp;",
	`"`, "&quot;",
)
