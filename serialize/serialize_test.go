package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
)

func TestRenderVoidElementHasNoEndTag(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	br := a.NewElement("", "", atom.Br, nil)
	a.AppendChild(root, br)

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, "<br>", got)
}

func TestRenderEscapesTextAndAttributes(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	p := a.NewElement("", "", atom.P, []dom.Attribute{{Name: atom.Class, Val: `a"b`}})
	a.AppendChild(root, p)
	txt := a.NewText("<b> & \"c\"")
	a.AppendChild(p, txt)

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, `<p class="a&quot;b">&lt;b&gt; &amp; "c"</p>`, got)
}

func TestRenderScriptContentIsRaw(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	script := a.NewElement("", "", atom.Script, nil)
	a.AppendChild(root, script)
	txt := a.NewText("if (a < b && c) {}")
	a.AppendChild(script, txt)

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, "<script>if (a < b && c) {}</script>", got, "script content must not be escaped")
}

func TestRenderComment(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	a.AppendChild(root, a.NewComment("42"))

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, "<!--42-->", got)
}

func TestRenderDoctype(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	a.AppendChild(root, a.NewDoctype("html", "", ""))

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, "<!DOCTYPE html>", got)
}

func TestRenderNestedElements(t *testing.T) {
	a := dom.NewArena()
	root := a.New(dom.DocumentNode)
	div := a.NewElement("", "", atom.Div, nil)
	a.AppendChild(root, div)
	span := a.NewElement("", "", atom.Span, nil)
	a.AppendChild(div, span)
	a.AppendChild(span, a.NewText("hi"))

	got, err := RenderString(a, root)
	require.NoError(t, err)
	require.Equal(t, "<div><span>hi</span></div>", got)
}
