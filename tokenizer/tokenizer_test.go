package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corehtml/html5/token"
)

func run(s string) []token.Token {
	var toks []token.Token
	tok := New()
	tok.Emit = func(t token.Token) { toks = append(toks, t) }
	for _, r := range s {
		tok.Feed(r)
	}
	tok.FeedEOF()
	return toks
}

func TestTagNameIsLowercased(t *testing.T) {
	toks := run("<DIV>")
	require.NotEmpty(t, toks)
	require.Equal(t, token.StartTag, toks[0].Type)
	require.Equal(t, "div", toks[0].TagName, "tag names are always lowercased")
}

func TestAppropriateEndTagExitsRAWTEXT(t *testing.T) {
	// The tokenizer only exits RAWTEXT on an "appropriate" end tag — one
	// whose name matches the last start tag emitted (spec §4.4). A "</b>"
	// embedded in the raw text must not be treated as markup.
	var toks []token.Token
	tok := New()
	tok.Emit = func(t token.Token) { toks = append(toks, t) }
	for _, r := range "<style>" {
		tok.Feed(r)
	}
	tok.SetState(RAWTEXTState)
	for _, r := range "a</b>b</style>after" {
		tok.Feed(r)
	}
	tok.FeedEOF()

	var data string
	var sawEndStyle bool
	for _, tk := range toks {
		if tk.Type == token.Character {
			data += tk.Data
		}
		if tk.Type == token.EndTag && tk.TagName == "style" {
			sawEndStyle = true
		}
	}
	require.True(t, sawEndStyle, "want an end tag for style")
	require.Equal(t, "a</b>bafter", data, "</b> is not an appropriate end tag inside <style>, so it's literal text")
}

func TestAttributeParsing(t *testing.T) {
	toks := run(`<a href="x" class='y' disabled>`)
	require.NotEmpty(t, toks)
	require.Equal(t, token.StartTag, toks[0].Type)
	attrs := toks[0].Attr
	require.Len(t, attrs, 3)
	want := map[string]string{"href": "x", "class": "y", "disabled": ""}
	for _, a := range attrs {
		wv, ok := want[a.Name.String()]
		require.True(t, ok, "unexpected attribute %q", a.Name.String())
		require.Equal(t, wv, a.Val, "attribute %q", a.Name.String())
	}
}

func TestDuplicateAttributeDiscardedAfterFirst(t *testing.T) {
	var errs []string
	tok := New()
	tok.Error = func(code string) { errs = append(errs, code) }
	var toks []token.Token
	tok.Emit = func(t token.Token) { toks = append(toks, t) }
	for _, r := range `<a href="first" href="second">` {
		tok.Feed(r)
	}
	tok.FeedEOF()

	require.NotEmpty(t, toks)
	require.Len(t, toks[0].Attr, 1, "only the first occurrence is kept")
	require.Equal(t, "first", toks[0].Attr[0].Val)
	require.Contains(t, errs, "duplicate-attribute")
}

func TestSelfClosingEndTagReportsParseError(t *testing.T) {
	var errs []string
	tok := New()
	tok.Error = func(code string) { errs = append(errs, code) }
	tok.Emit = func(token.Token) {}
	for _, r := range "</div/>" {
		tok.Feed(r)
	}
	tok.FeedEOF()

	require.Contains(t, errs, "non-void-html-element-start-tag-with-trailing-solidus")
}

func TestNullCharacterInDataStateIsEmittedLiterallyWithParseError(t *testing.T) {
	// The data state is the one exception to the "null becomes U+FFFD"
	// rule (spec §4.4): it reports the parse error but emits the literal
	// NUL character, unlike RCDATA/RAWTEXT/script-data/PLAINTEXT.
	var errs []string
	tok := New()
	tok.Error = func(code string) { errs = append(errs, code) }
	var toks []token.Token
	tok.Emit = func(t token.Token) { toks = append(toks, t) }
	for _, r := range "a\x00b" {
		tok.Feed(r)
	}
	tok.FeedEOF()

	var data string
	for _, tk := range toks {
		if tk.Type == token.Character {
			data += tk.Data
		}
	}
	require.Equal(t, "a\x00b", data)
	require.Contains(t, errs, "unexpected-null-character")
}

func TestNullCharacterReplacedInRAWTEXTState(t *testing.T) {
	// The tokenizer itself never switches into RAWTEXT on seeing <style>;
	// that's the tree constructor's job via SetState (spec §2's reverse
	// side-channel). Drive the switch manually, as the tree constructor
	// would immediately after inserting the <style> element.
	var toks []token.Token
	tok := New()
	tok.Emit = func(t token.Token) { toks = append(toks, t) }
	for _, r := range "<style>" {
		tok.Feed(r)
	}
	tok.SetState(RAWTEXTState)
	for _, r := range "a\x00b</style>" {
		tok.Feed(r)
	}
	tok.FeedEOF()

	var data string
	for _, tk := range toks {
		if tk.Type == token.Character {
			data += tk.Data
		}
	}
	require.Equal(t, "a�b", data, "RAWTEXT replaces NUL with U+FFFD")
}

func TestCommentTokenized(t *testing.T) {
	toks := run("<!--hello-->")
	require.NotEmpty(t, toks)
	require.Equal(t, token.Comment, toks[0].Type)
	require.Equal(t, "hello", toks[0].Data)
}

func TestDoctypeTokenized(t *testing.T) {
	toks := run("<!DOCTYPE html>")
	require.NotEmpty(t, toks)
	require.Equal(t, token.Doctype, toks[0].Type)
	require.Equal(t, "html", toks[0].Doctype.Name)
}

func TestNamedCharacterReferenceInData(t *testing.T) {
	toks := run("a&amp;b")
	var data string
	for _, tk := range toks {
		if tk.Type == token.Character {
			data += tk.Data
		}
	}
	require.Equal(t, "a&b", data)
}

func TestEOFEmitted(t *testing.T) {
	toks := run("x")
	require.NotEmpty(t, toks)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type)
}
