package namedref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestMatchPrefersLongerEntry(t *testing.T) {
	m := New()
	// "amp" and "amp;" are both entries; feeding "amp;" should leave the
	// matcher reporting the semicolon-terminated (longer) match.
	for _, c := range "amp" {
		require.NotEqual(t, Dead, m.Advance(c), "Advance(%q) must stay alive", c)
	}
	consumed, cp1, _, _, semi, ok := m.LongestMatch()
	require.True(t, ok)
	require.Equal(t, 3, consumed)
	require.Equal(t, rune('&'), cp1)
	require.False(t, semi)

	require.Equal(t, AliveAndMatched, m.Advance(';'))

	consumed, cp1, _, _, semi, ok = m.LongestMatch()
	require.True(t, ok)
	require.Equal(t, 4, consumed)
	require.Equal(t, rune('&'), cp1)
	require.True(t, semi)
}

func TestDeadOnUnknownExtension(t *testing.T) {
	m := New()
	m.Advance('a')
	m.Advance('m')
	m.Advance('p')
	require.Equal(t, Dead, m.Advance('z'), "no entry is named \"ampz\"")

	// The longest match recorded before the dead edge must still be "amp".
	consumed, _, _, _, _, ok := m.LongestMatch()
	require.True(t, ok)
	require.Equal(t, 3, consumed)
}

func TestResetReturnsToRoot(t *testing.T) {
	m := New()
	m.Advance('a')
	m.Advance('m')
	m.Advance('p')
	m.Reset()
	require.Empty(t, m.Buffer())

	_, _, _, _, _, ok := m.LongestMatch()
	require.False(t, ok, "LongestMatch after Reset must report no match")

	require.Equal(t, Alive, m.Advance('l'), "start of \"lt\"")
}

func TestFullIndexCoversNamesBeyondTheCoreSubset(t *testing.T) {
	// These live far outside the handful of markup/Latin-1 entries every
	// parser needs for the spec.md §8 scenarios (check is Dingbats, boxDR
	// is Box Drawing, planck is Letterlike Symbols) — regression coverage
	// for the full ~2231-entry WHATWG index, not just the common subset.
	cases := []struct {
		name string
		want rune
	}{
		{"check;", '✓'},
		{"boxDR;", '╔'},
		{"planck;", 'ℏ'},
		{"alefsym;", 'ℵ'},
		{"block;", '█'},
	}
	for _, tc := range cases {
		m := New()
		var status Status
		for _, c := range tc.name {
			status = m.Advance(c)
		}
		require.Equal(t, AliveAndMatched, status, "%q must resolve", tc.name)
		_, cp1, _, _, _, ok := m.LongestMatch()
		require.True(t, ok)
		require.Equal(t, tc.want, cp1, "%q", tc.name)
	}
}

func TestRejectForAttributeExceptionOnlyAppliesWithoutSemicolon(t *testing.T) {
	require.False(t, RejectForAttribute(true, '='), "a semicolon-terminated match must never be rejected")
	require.True(t, RejectForAttribute(false, '='), "a non-semicolon match followed by '=' must be rejected in attribute context")
	require.True(t, RejectForAttribute(false, 'x'), "a non-semicolon match followed by an alphanumeric must be rejected in attribute context")
	require.False(t, RejectForAttribute(false, ' '), "a non-semicolon match followed by a non-alphanumeric, non-'=' character must not be rejected")
}
