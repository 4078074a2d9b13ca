package atom

// attrNames is the closed set of HTML event-handler names, plus the SVG,
// MathML and foreign-attribute (XLink/XML/XMLNS) attribute names that the
// tree constructor's name-adjustment tables need to recognize by code.
var attrNames = []string{
	"abbr", "accept", "accept-charset", "accesskey", "action", "align",
	"alt", "async", "autocomplete", "autofocus", "autoplay", "bgcolor",
	"border", "cellpadding", "cellspacing", "challenge", "charset",
	"checked", "cite", "class", "color", "cols", "colspan", "content",
	"contenteditable", "controls", "coords", "crossorigin", "data",
	"datetime", "default", "defer", "dir", "dirname", "disabled",
	"download", "draggable", "enctype", "for", "form", "formaction",
	"headers", "height", "hidden", "high", "href", "hreflang",
	"attributename", "attributetype", "basefrequency", "baseprofile",
	"calcmode", "clip", "clippath", "clippathunits", "contentscripttype",
	"contentstyletype", "diffuseconstant", "edgemode", "externalresourcesrequired",
	"filterres", "filterunits", "glyphref", "gradienttransform", "gradientunits",
	"kernelmatrix", "kernelunitlength", "keypoints", "keysplines", "keytimes",
	"lengthadjust", "limitingconeangle", "markerheight", "markerunits",
	"markerwidth", "maskcontentunits", "maskunits", "numoctaves",
	"pathlength", "patterncontentunits", "patterntransform", "patternunits",
	"pointsatx", "pointsaty", "pointsatz", "preservealpha",
	"preserveaspectratio", "primitiveunits", "refx", "refy", "repeatcount",
	"repeatdur", "requiredextensions", "requiredfeatures", "specularconstant",
	"specularexponent", "spreadmethod", "startoffset", "stddeviation",
	"stitchtiles", "surfacescale", "systemlanguage", "tablevalues",
	"targetx", "targety", "textlength", "viewbox", "viewtarget", "xchannelselector",
	"ychannelselector", "zoomandpan",
	"id", "integrity", "is", "ismap", "itemid", "itemprop", "itemref",
	"itemscope", "itemtype", "kind", "label", "lang", "list", "loop",
	"low", "max", "maxlength", "media", "method", "min", "minlength",
	"multiple", "muted", "name", "nonce", "novalidate", "onabort",
	"onafterprint", "onauxclick", "onbeforeprint", "onbeforeunload",
	"onblur", "oncancel", "oncanplay", "oncanplaythrough", "onchange",
	"onclick", "onclose", "oncontextmenu", "oncopy", "oncuechange",
	"oncut", "ondblclick", "ondrag", "ondragend", "ondragenter",
	"ondragleave", "ondragover", "ondragstart", "ondrop",
	"ondurationchange", "onemptied", "onended", "onerror", "onfocus",
	"onhashchange", "oninput", "oninvalid", "onkeydown", "onkeypress",
	"onkeyup", "onlanguagechange", "onload", "onloadeddata",
	"onloadedmetadata", "onloadstart", "onmessage", "onmousedown",
	"onmouseenter", "onmouseleave", "onmousemove", "onmouseout",
	"onmouseover", "onmouseup", "onoffline", "ononline", "onpagehide",
	"onpageshow", "onpaste", "onpause", "onplay", "onplaying",
	"onpopstate", "onprogress", "onratechange", "onreset", "onresize",
	"onscroll", "onsecuritypolicyviolation", "onseeked", "onseeking",
	"onselect", "onstalled", "onstorage", "onsubmit", "onsuspend",
	"ontimeupdate", "ontoggle", "onunhandledrejection", "onunload",
	"onvolumechange", "onwaiting", "onwheel", "open", "optimum",
	"pattern", "placeholder", "playsinline", "poster", "preload",
	"readonly", "referrerpolicy", "rel", "required", "reversed", "rows",
	"rowspan", "sandbox", "scope", "selected", "shape", "size", "sizes",
	"slot", "span", "spellcheck", "src", "srcdoc", "srclang", "srcset",
	"start", "step", "style", "tabindex", "target", "title", "translate",
	"type", "usemap", "value", "wrap", "width", "xlink:actuate",
	"xlink:arcrole", "xlink:href", "xlink:role", "xlink:show",
	"xlink:title", "xlink:type", "xml:base", "xml:lang", "xml:space",
	"xmlns", "xmlns:xlink",
}

var attrTable = newTable(attrNames)

// LookupAttr interns an ASCII-lowercased attribute local name.
func LookupAttr(s string) Atom {
	return attrTable.lookup(s)
}

var (
	Class   = attrTable.lookup("class")
	Href    = attrTable.lookup("href")
	ID      = attrTable.lookup("id")
	Name    = attrTable.lookup("name")
	Src     = attrTable.lookup("src")
	Type    = attrTable.lookup("type")
	Value   = attrTable.lookup("value")
	ViewBox = attrTable.lookup("viewbox")
)
