package atom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualKnownAtoms(t *testing.T) {
	a := LookupTag("div")
	b := LookupTag("div")
	require.True(t, Equal(a, b), "Equal(div, div) must be true")
	require.NotZero(t, a.Code(), "LookupTag(div).Code() must be nonzero")
}

func TestEqualUnknownAtomsFallBackToString(t *testing.T) {
	a := LookupTag("x-custom-widget")
	b := LookupTag("x-custom-widget")
	require.Zero(t, a.Code(), "a name outside the closed set must carry code 0")
	require.True(t, Equal(a, b), "Equal(x-custom-widget, x-custom-widget) must be true")
	require.False(t, Equal(a, LookupTag("x-other-widget")))
}

func TestEqualKnownVsUnknownNeverEqual(t *testing.T) {
	known := LookupTag("div")
	unknown := Atom{s: "div"} // same string, but not looked up through the table
	require.False(t, Equal(known, unknown), "a known atom must never equal an unknown atom sharing its string")
}

func TestIsVoid(t *testing.T) {
	for _, name := range []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"} {
		require.True(t, IsVoid(LookupTag(name)), "IsVoid(%s) must be true", name)
	}
	require.False(t, IsVoid(LookupTag("div")))
}

func TestIsSpecialHTMLVsForeign(t *testing.T) {
	require.True(t, IsSpecial(LookupTag("table"), ""), "table should be special in the HTML namespace")
	require.False(t, IsSpecial(LookupTag("span"), ""), "span should not be special in the HTML namespace")
	require.True(t, IsSpecial(Mi, "math"), "mi should be special inside MathML")
}

func TestCaseInsensitiveLookupIsCallerResponsibility(t *testing.T) {
	// The atom table is keyed by the already-lowercased string; tag-name
	// case folding happens in the tokenizer (spec §4.4), not here.
	lower := LookupTag("div")
	upper := LookupTag("DIV")
	require.NotEqual(t, upper.Code(), lower.Code(), "atom table must not itself lowercase")
}
