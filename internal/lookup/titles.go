package lookup

// unsupportedTitles maps page titles that the wiki cannot store under
// their real character to the actual term they describe.
var unsupportedTitles = map[string]string{
	"Unsupported titles/Ampersand":             "&",
	"Unsupported titles/Double period":         "..",
	"Unsupported titles/Circumflex accent":     "^",
	"Unsupported titles/Colon":                 ":",
	"Unsupported titles/Full stop":             ".",
	"Unsupported titles/Greater than":          ">",
	"Unsupported titles/Left curly bracket":    "{",
	"Unsupported titles/Left square bracket":   "[",
	"Unsupported titles/Less than":             "<",
	"Unsupported titles/Low line":              "_",
	"Unsupported titles/Number sign":           "#",
	"Unsupported titles/Period":                ".",
	"Unsupported titles/Right curly bracket":   "}",
	"Unsupported titles/Right square bracket":  "]",
	"Unsupported titles/Vertical line":         "|",
	"Unsupported titles/Space":                 " ",
	"Unsupported titles/C sharp":               "C#",
	"Unsupported titles/Case sensitive title":  "",
	"Unsupported titles/Enclosing square brackets": "[ ]",
}

// ResolveTitle maps an unsupported-title page name to the term it
// actually documents. Regular titles are returned unchanged.
func ResolveTitle(title string) string {
	if t, ok := unsupportedTitles[title]; ok && t != "" {
		return t
	}
	return title
}
