// Package atom provides integer codes (also known as atoms) for a fixed set
// of frequently occurring HTML, SVG and MathML strings: tag names,
// attribute names, and namespace URIs.
//
// Sharing an atom's integer code between two occurrences of the same string
// means that string comparisons can degenerate to integer comparisons,
// which is much faster to compute than a byte-by-byte check. The original
// string is still carried alongside the code so that unknown names and
// case-preserving serialization both keep working.
package atom

// Atom is an interned name: an integer code paired with the string it was
// interned from. Two atoms compare equal if their codes are both nonzero
// and equal, or if both codes are zero and their strings are equal — so
// comparing unrecognized names still falls back to a string compare.
type Atom struct {
	code uint32
	s    string
}

// String returns the atom's textual form.
func (a Atom) String() string {
	return a.s
}

// Code returns the atom's integer code, or 0 if the string is not part of
// the closed set this table was generated from.
func (a Atom) Code() uint32 {
	return a.code
}

// Equal reports whether a and b are the same atom, per the package doc's
// equality rule.
func Equal(a, b Atom) bool {
	if a.code != 0 || b.code != 0 {
		return a.code == b.code
	}
	return a.s == b.s
}

func (a Atom) IsZero() bool {
	return a.code == 0 && a.s == ""
}

// table is a closed, ordered list of names; its slice index doubles as the
// code handed out for that name. Index 0 is reserved (the zero Atom).
type table struct {
	names []string
	index map[string]uint32
}

func newTable(names []string) *table {
	t := &table{names: append([]string{""}, names...)}
	t.index = make(map[string]uint32, len(t.names))
	for i, n := range t.names {
		if i == 0 {
			continue
		}
		t.index[n] = uint32(i)
	}
	return t
}

func (t *table) lookup(s string) Atom {
	if code, ok := t.index[s]; ok {
		return Atom{code: code, s: s}
	}
	return Atom{s: s}
}

func (t *table) byCode(code uint32) Atom {
	if code == 0 || int(code) >= len(t.names) {
		return Atom{}
	}
	return Atom{code: code, s: t.names[code]}
}
