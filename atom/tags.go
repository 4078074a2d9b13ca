package atom

// tagNames is the closed set of HTML, SVG and MathML element names this
// module recognizes by code. The order fixes each name's code, so it must
// never be reordered — only appended to.
var tagNames = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside",
	"audio", "b", "base", "basefont", "bdi", "bdo", "bgsound", "big", "blockquote",
	"body", "br", "button", "canvas", "caption", "center", "cite", "code",
	"col", "colgroup", "data", "datalist", "dd", "del", "desc", "details",
	"dfn", "dialog", "dir", "div", "dl", "dt", "em", "embed", "fieldset",
	"figcaption", "figure", "font", "footer", "foreignObject", "form",
	"frame", "frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head",
	"header", "hgroup", "hr", "html", "i", "iframe", "image", "img",
	"input", "ins", "isindex", "kbd", "keygen", "label", "legend", "li",
	"link", "listing", "main", "malignmark", "map", "mark", "marquee",
	"math", "menu", "menuitem", "meta", "meter", "mglyph", "mi", "mn",
	"mo", "ms", "mtext", "nav", "nobr", "noembed", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output", "p", "param", "picture",
	"plaintext", "pre", "progress", "q", "rb", "rp", "rt", "rtc", "ruby",
	"s", "samp", "script", "section", "select", "slot", "small", "source",
	"span", "strike", "strong", "style", "sub", "summary", "sup", "svg",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead",
	"time", "title", "tr", "track", "tt", "u", "ul", "var", "video", "wbr",
	"xmp", "annotation-xml",
}

var tagTable = newTable(tagNames)

// LookupTag interns an ASCII-lowercased tag name, returning Atom{0, s} for
// names outside the closed set.
func LookupTag(s string) Atom {
	return tagTable.lookup(s)
}

// Tag name constants for the elements the tree constructor and tokenizer
// need to branch on directly.
var (
	A              = tagTable.lookup("a")
	Abbr           = tagTable.lookup("abbr")
	Address        = tagTable.lookup("address")
	Annotation_Xml = tagTable.lookup("annotation-xml")
	Applet         = tagTable.lookup("applet")
	Area           = tagTable.lookup("area")
	Article        = tagTable.lookup("article")
	Aside          = tagTable.lookup("aside")
	B              = tagTable.lookup("b")
	Base           = tagTable.lookup("base")
	Basefont       = tagTable.lookup("basefont")
	Bgsound        = tagTable.lookup("bgsound")
	Big            = tagTable.lookup("big")
	Blockquote     = tagTable.lookup("blockquote")
	Body           = tagTable.lookup("body")
	Br             = tagTable.lookup("br")
	Button         = tagTable.lookup("button")
	Caption        = tagTable.lookup("caption")
	Center         = tagTable.lookup("center")
	Code           = tagTable.lookup("code")
	Col            = tagTable.lookup("col")
	Colgroup       = tagTable.lookup("colgroup")
	Dd             = tagTable.lookup("dd")
	Desc           = tagTable.lookup("desc")
	Details        = tagTable.lookup("details")
	Dialog         = tagTable.lookup("dialog")
	Dir            = tagTable.lookup("dir")
	Div            = tagTable.lookup("div")
	Dl             = tagTable.lookup("dl")
	Dt             = tagTable.lookup("dt")
	Em             = tagTable.lookup("em")
	Embed          = tagTable.lookup("embed")
	Fieldset       = tagTable.lookup("fieldset")
	Figcaption     = tagTable.lookup("figcaption")
	Figure         = tagTable.lookup("figure")
	Font           = tagTable.lookup("font")
	Footer         = tagTable.lookup("footer")
	ForeignObject  = tagTable.lookup("foreignObject")
	Form           = tagTable.lookup("form")
	Frame          = tagTable.lookup("frame")
	Frameset       = tagTable.lookup("frameset")
	H1             = tagTable.lookup("h1")
	H2             = tagTable.lookup("h2")
	H3             = tagTable.lookup("h3")
	H4             = tagTable.lookup("h4")
	H5             = tagTable.lookup("h5")
	H6             = tagTable.lookup("h6")
	Head           = tagTable.lookup("head")
	Header         = tagTable.lookup("header")
	Hgroup         = tagTable.lookup("hgroup")
	Hr             = tagTable.lookup("hr")
	Html           = tagTable.lookup("html")
	I              = tagTable.lookup("i")
	Iframe         = tagTable.lookup("iframe")
	Image          = tagTable.lookup("image")
	Img            = tagTable.lookup("img")
	Input          = tagTable.lookup("input")
	Isindex        = tagTable.lookup("isindex")
	Keygen         = tagTable.lookup("keygen")
	Li             = tagTable.lookup("li")
	Link           = tagTable.lookup("link")
	Listing        = tagTable.lookup("listing")
	Main           = tagTable.lookup("main")
	Malignmark     = tagTable.lookup("malignmark")
	Marquee        = tagTable.lookup("marquee")
	Math           = tagTable.lookup("math")
	Menu           = tagTable.lookup("menu")
	Menuitem       = tagTable.lookup("menuitem")
	Meta           = tagTable.lookup("meta")
	Mglyph         = tagTable.lookup("mglyph")
	Mi             = tagTable.lookup("mi")
	Mn             = tagTable.lookup("mn")
	Mo             = tagTable.lookup("mo")
	Ms             = tagTable.lookup("ms")
	Mtext          = tagTable.lookup("mtext")
	Nav            = tagTable.lookup("nav")
	Nobr           = tagTable.lookup("nobr")
	Noembed        = tagTable.lookup("noembed")
	Noframes       = tagTable.lookup("noframes")
	Noscript       = tagTable.lookup("noscript")
	Object         = tagTable.lookup("object")
	Ol             = tagTable.lookup("ol")
	Optgroup       = tagTable.lookup("optgroup")
	Option         = tagTable.lookup("option")
	P              = tagTable.lookup("p")
	Param          = tagTable.lookup("param")
	Plaintext      = tagTable.lookup("plaintext")
	Pre            = tagTable.lookup("pre")
	Rb             = tagTable.lookup("rb")
	Rp             = tagTable.lookup("rp")
	Rt             = tagTable.lookup("rt")
	Rtc            = tagTable.lookup("rtc")
	Ruby           = tagTable.lookup("ruby")
	S              = tagTable.lookup("s")
	Script         = tagTable.lookup("script")
	Section        = tagTable.lookup("section")
	Select         = tagTable.lookup("select")
	Small          = tagTable.lookup("small")
	Source         = tagTable.lookup("source")
	Span           = tagTable.lookup("span")
	Strike         = tagTable.lookup("strike")
	Strong         = tagTable.lookup("strong")
	Style          = tagTable.lookup("style")
	Summary        = tagTable.lookup("summary")
	Svg            = tagTable.lookup("svg")
	Table          = tagTable.lookup("table")
	Tbody          = tagTable.lookup("tbody")
	Td             = tagTable.lookup("td")
	Template       = tagTable.lookup("template")
	Textarea       = tagTable.lookup("textarea")
	Tfoot          = tagTable.lookup("tfoot")
	Th             = tagTable.lookup("th")
	Thead          = tagTable.lookup("thead")
	Title          = tagTable.lookup("title")
	Tr             = tagTable.lookup("tr")
	Track          = tagTable.lookup("track")
	Tt             = tagTable.lookup("tt")
	U              = tagTable.lookup("u")
	Ul             = tagTable.lookup("ul")
	Wbr            = tagTable.lookup("wbr")
	Xmp            = tagTable.lookup("xmp")
)

// voidElements is the set of tags the serializer and tokenizer treat as
// never having an end tag or children.
var voidElements = map[uint32]bool{
	Area.code: true, Base.code: true, Br.code: true, Col.code: true,
	Embed.code: true, Hr.code: true, Img.code: true, Input.code: true,
	Link.code: true, Meta.code: true, Param.code: true, Source.code: true,
	Track.code: true, Wbr.code: true,
}

// IsVoid reports whether a is one of HTML's void elements (§4.8).
func IsVoid(a Atom) bool {
	return a.code != 0 && voidElements[a.code]
}

// specialElements is the "special" category from the HTML spec's tree
// construction section: elements that terminate scope checks and bound
// the "any other end tag" search.
var specialElements = map[uint32]bool{}

func init() {
	for _, s := range []Atom{
		Address, Applet, Area, Article, Aside, Base, Basefont, Bgsound,
		Blockquote, Body, Br, Button, Caption, Center, Col, Colgroup,
		Dd, Details, Dir, Div, Dl, Dt, Embed, Fieldset, Figcaption, Figure,
		Footer, Form, Frame, Frameset, H1, H2, H3, H4, H5, H6, Head,
		Header, Hgroup, Hr, Html, Iframe, Img, Input, Isindex, Li, Link,
		Listing, Main, Marquee, Menu, Menuitem, Meta, Nav, Noembed,
		Noframes, Noscript, Object, Ol, P, Param, Plaintext, Pre, Script,
		Section, Select, Source, Style, Summary, Table, Tbody, Td,
		Template, Textarea, Tfoot, Th, Thead, Title, Tr, Track, Ul, Wbr,
		Xmp,
	} {
		specialElements[s.code] = true
	}
}

// IsSpecial reports whether a is in the "special" tag category for the
// given namespace (empty namespace means HTML).
func IsSpecial(a Atom, namespace string) bool {
	if namespace != "" {
		return a == Mi || a == Mo || a == Mn || a == Ms || a == Mtext ||
			a == Annotation_Xml || a == ForeignObject || a == Desc || a == Title
	}
	return a.code != 0 && specialElements[a.code]
}
