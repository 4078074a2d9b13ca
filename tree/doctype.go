package tree

import "strings"

// classifyQuirks implements the "quirks mode" lookup of the WHATWG HTML
// parsing algorithm's DOCTYPE handling: the full table of public/system
// identifier prefixes that select quirks or limited-quirks mode.
func classifyQuirks(name, public, system string, forceQuirks bool) quirksVerdict {
	if forceQuirks {
		return quirksYes
	}
	if name != "html" {
		return quirksYes
	}
	publicLower := strings.ToLower(public)
	systemLower := strings.ToLower(system)

	if publicLower == "-//w3o//dtd w3 html strict 3.0//en//" ||
		publicLower == "-/w3c/dtd html 4.0 transitional/en" ||
		publicLower == "html" {
		return quirksYes
	}
	if systemLower == "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd" {
		return quirksYes
	}
	for _, p := range quirksPublicPrefixes {
		if strings.HasPrefix(publicLower, p) {
			return quirksYes
		}
	}
	if systemLower == "" {
		for _, p := range quirksPublicPrefixesNoSystem {
			if strings.HasPrefix(publicLower, p) {
				return quirksYes
			}
		}
	}
	for _, p := range limitedQuirksPublicPrefixes {
		if strings.HasPrefix(publicLower, p) {
			return quirksLimited
		}
	}
	if systemLower != "" {
		for _, p := range limitedQuirksPublicPrefixesWithSystem {
			if strings.HasPrefix(publicLower, p) {
				return quirksLimited
			}
		}
	}
	return quirksNo
}

type quirksVerdict int

const (
	quirksNo quirksVerdict = iota
	quirksLimited
	quirksYes
)

var quirksPublicPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirksPublicPrefixesNoSystem = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

var limitedQuirksPublicPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

var limitedQuirksPublicPrefixesWithSystem = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}
