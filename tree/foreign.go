package tree

import (
	"strings"

	"github.com/corehtml/html5/atom"
	"github.com/corehtml/html5/dom"
	"github.com/corehtml/html5/token"
)

// svgTagNameAdjustments restores the camelCase spelling of SVG tag names
// the tokenizer lowercased on the way in (spec §4.7's "adjust SVG tag
// names").
var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// svgAttributeAdjustments restores case-sensitive SVG attribute spellings
// (spec §4.7's "adjust SVG attributes").
var svgAttributeAdjustments = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"baseprofile":         "baseProfile",
	"calcmode":            "calcMode",
	"clippath":            "clipPath",
	"clippathunits":       "clipPathUnits",
	"contentscripttype":   "contentScriptType",
	"contentstyletype":    "contentStyleType",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"externalresourcesrequired": "externalResourcesRequired",
	"filterres":           "filterRes",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preservealpha":       "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"viewtarget":          "viewTarget",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

// foreignAttributeNamespaces covers the xlink:/xml:/xmlns(:xlink) qualified
// attribute names that get a namespace + prefix split in foreign content
// (spec §4.7's "adjust foreign attributes").
var foreignAttributeNamespaces = map[string][3]string{
	"xlink:actuate": {"xlink", atom.XLinkNS, "actuate"},
	"xlink:arcrole": {"xlink", atom.XLinkNS, "arcrole"},
	"xlink:href":    {"xlink", atom.XLinkNS, "href"},
	"xlink:role":    {"xlink", atom.XLinkNS, "role"},
	"xlink:show":    {"xlink", atom.XLinkNS, "show"},
	"xlink:title":   {"xlink", atom.XLinkNS, "title"},
	"xlink:type":    {"xlink", atom.XLinkNS, "type"},
	"xml:lang":      {"xml", atom.XMLNS, "lang"},
	"xml:space":     {"xml", atom.XMLNS, "space"},
	"xmlns":         {"", atom.XMLNSNS, "xmlns"},
	"xmlns:xlink":   {"xmlns", atom.XMLNSNS, "xlink"},
}

func adjustSVGTagName(name string) string {
	if adj, ok := svgTagNameAdjustments[name]; ok {
		return adj
	}
	return name
}

func adjustAttributeNames(attr []token.Attribute, table map[string]string) {
	for i, a := range attr {
		if adj, ok := table[strings.ToLower(a.Name.String())]; ok {
			attr[i].Name = atom.LookupAttr(adj)
		}
	}
}

func adjustForeignAttributes(attr []token.Attribute) {
	for i, a := range attr {
		if adj, ok := foreignAttributeNamespaces[strings.ToLower(a.Name.String())]; ok {
			attr[i].Prefix, attr[i].Namespace, attr[i].Name = adj[0], adj[1], atom.LookupAttr(adj[2])
		}
	}
}

// mathMLTextIntegrationPoint reports whether n is an MathML text
// integration point (spec §4.7): <mi>, <mo>, <mn>, <ms>, <mtext>.
func (c *Constructor) mathMLTextIntegrationPoint(n dom.NodeID) bool {
	if c.Arena.Namespace(n) != "math" {
		return false
	}
	switch c.Arena.Tag(n) {
	case atom.Mi, atom.Mo, atom.Mn, atom.Ms, atom.Mtext:
		return true
	}
	return false
}

// htmlIntegrationPoint reports whether n is an HTML integration point
// (spec §4.7): MathML annotation-xml with a text/html or
// application/xhtml+xml encoding, or one of the three SVG elements
// desc, foreignObject and title.
func (c *Constructor) htmlIntegrationPoint(n dom.NodeID) bool {
	switch c.Arena.Namespace(n) {
	case "math":
		if c.Arena.Tag(n) != atom.Annotation_Xml {
			return false
		}
		if enc, ok := c.Arena.AttrVal(n, atom.LookupAttr("encoding")); ok {
			el := strings.ToLower(enc)
			return el == "text/html" || el == "application/xhtml+xml"
		}
		return false
	case "svg":
		switch c.Arena.Tag(n) {
		case atom.Desc, atom.ForeignObject, atom.Title:
			return true
		}
	}
	return false
}

// inForeignContentNow implements spec §4.7's dispatch gate: whether the
// next token is processed by the foreign-content rules instead of the
// current insertion mode.
func (c *Constructor) inForeignContentNow() bool {
	if len(c.oe) == 0 {
		return false
	}
	n := c.adjustedCurrentNode()
	if c.Arena.Namespace(n) == "" {
		return false
	}
	if c.mathMLTextIntegrationPoint(n) {
		if c.tok.Type == token.StartTag && !atom.Equal(c.tok.TagAtom, atom.Mglyph) && !atom.Equal(c.tok.TagAtom, atom.Malignmark) {
			return false
		}
		if c.tok.Type == token.Character {
			return false
		}
	}
	if c.Arena.Namespace(n) == "math" && atom.Equal(c.Arena.Tag(n), atom.Annotation_Xml) &&
		c.tok.Type == token.StartTag && atom.Equal(c.tok.TagAtom, atom.Svg) {
		return false
	}
	if c.htmlIntegrationPoint(n) && (c.tok.Type == token.StartTag || c.tok.Type == token.Character) {
		return false
	}
	if c.tok.Type == token.EOF {
		return false
	}
	return true
}

// adjustedCurrentNode is the fragment-parsing-aware "current node" of spec
// §4.6: the fragment context element when the stack holds exactly the
// synthetic root during fragment parsing of a context with one element.
func (c *Constructor) adjustedCurrentNode() dom.NodeID {
	if c.fragment && len(c.oe) == 1 {
		return c.fragmentContext
	}
	return c.currentNode()
}

// parseForeignContent implements spec §4.7's token-dispatch rules for
// foreign (SVG/MathML) content.
func (c *Constructor) parseForeignContent() bool {
	switch c.tok.Type {
	case token.Character:
		data := strings.ReplaceAll(c.tok.Data, "\x00", "�")
		c.addText(data)
		return true
	case token.Comment:
		c.addComment(c.tok.Data)
		return true
	case token.StartTag:
		if breaksOutOfForeignContent(c.tok.TagName, c.tok.Attr) {
			for len(c.oe) > 1 {
				n := c.currentNode()
				if c.Arena.Namespace(n) == "" || c.mathMLTextIntegrationPoint(n) || c.htmlIntegrationPoint(n) {
					break
				}
				c.oe = c.oe[:len(c.oe)-1]
			}
			return c.im(c)
		}
		cur := c.currentNode()
		ns := c.Arena.Namespace(cur)
		switch ns {
		case "math":
			adjustAttributeNames(c.tok.Attr, mathMLAttributeAdjustments)
		case "svg":
			c.tok.TagName = adjustSVGTagName(c.tok.TagName)
			c.tok.TagAtom = atom.LookupTag(c.tok.TagName)
			adjustAttributeNames(c.tok.Attr, svgAttributeAdjustments)
		}
		adjustForeignAttributes(c.tok.Attr)
		n := c.addElement()
		c.Arena.SetNamespace(n, ns)
		if ns != "" && c.Tok != nil {
			c.Tok.NextIsNotRawText()
		}
		if c.hasSelfClosingToken {
			c.oe = c.oe[:len(c.oe)-1]
			c.acknowledgeSelfClosingTag()
		}
		return true
	case token.EndTag:
		for i := len(c.oe) - 1; i >= 0; i-- {
			if c.Arena.Namespace(c.oe[i]) == "" {
				return c.im(c)
			}
			if strings.EqualFold(c.Arena.Tag(c.oe[i]).String(), c.tok.TagName) {
				c.oe = c.oe[:i]
				break
			}
		}
		return true
	}
	return true
}

var mathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

// htmlBreakoutTags is spec §13.2.6.5's fixed set of start tags that always
// pop out of foreign content and reprocess using the current insertion
// mode, regardless of which foreign subtree they appear in.
var htmlBreakoutTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "hr": true, "i": true,
	"img": true, "li": true, "listing": true, "menu": true, "meta": true,
	"nobr": true, "ol": true, "p": true, "pre": true, "ruby": true, "s": true,
	"small": true, "span": true, "strong": true, "strike": true, "sub": true,
	"sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// breaksOutOfForeignContent reports whether a foreign-content start tag
// forces a pop back to HTML content processing: either one of the fixed
// breakout tags, or <font> carrying a color/face/size attribute.
func breaksOutOfForeignContent(name string, attr []token.Attribute) bool {
	if htmlBreakoutTags[name] {
		return true
	}
	if name != "font" {
		return false
	}
	for _, a := range attr {
		switch a.Name.String() {
		case "color", "face", "size":
			return true
		}
	}
	return false
}
