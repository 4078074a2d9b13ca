package atom

// Namespace URIs, per the WHATWG Infra / HTML namespace table (spec.md
// §6's ns_name enumeration).
const (
	HTMLNS   = "http://www.w3.org/1999/xhtml"
	MathMLNS = "http://www.w3.org/1998/Math/MathML"
	SVGNS    = "http://www.w3.org/2000/svg"
	XLinkNS  = "http://www.w3.org/1999/xlink"
	XMLNS    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNS  = "http://www.w3.org/2000/xmlns/"
)

var nsNames = []string{"", "math", "svg"}

var nsTable = newTable(nsNames)

// LookupNS interns one of the short namespace labels used internally by the
// tree constructor ("", "math", "svg"), which are also the namespace values
// DOM elements carry; the full URIs above are what namespaced DOM
// attributes carry.
func LookupNS(s string) Atom {
	return nsTable.lookup(s)
}
