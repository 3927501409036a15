package dom

// knownTags is the fixed vocabulary of element names the parser accepts.
// A start or end tag outside of it aborts the parse with ErrUnknownTag.
// The table is initialized once and never mutated, so concurrent Parse
// calls can share it without locking.
var knownTags = map[string]bool{
	"html": true, "head": true, "body": true, "title": true,
	"meta": true, "link": true, "base": true, "style": true, "script": true,

	"div": true, "p": true, "span": true, "a": true,
	"em": true, "strong": true, "b": true, "i": true, "u": true,
	"small": true, "code": true, "pre": true, "blockquote": true,

	"ul": true, "ol": true, "li": true,
	"dl": true, "dt": true, "dd": true,

	"table": true, "caption": true, "colgroup": true, "col": true,
	"thead": true, "tbody": true, "tfoot": true,
	"tr": true, "td": true, "th": true,

	"form": true, "input": true, "button": true, "select": true,
	"option": true, "optgroup": true, "textarea": true, "label": true,
	"fieldset": true, "legend": true,

	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"br": true, "hr": true, "img": true, "figure": true, "figcaption": true,

	"header": true, "footer": true, "nav": true, "main": true,
	"section": true, "article": true, "aside": true,

	"audio": true, "video": true, "source": true, "track": true,
	"canvas": true, "iframe": true, "embed": true,
	"area": true, "map": true, "object": true, "param": true, "wbr": true,
}

// voidTags are elements that never have children and never consume an end
// tag, even if the markup supplies one.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// closedBySibling is the end-tag omission table: an open element listed here
// is implicitly closed when the content scanner encounters a start tag from
// the associated set, before recursing into that tag.
var closedBySibling = map[string]map[string]bool{
	"p": {
		"p": true, "div": true, "ul": true, "ol": true, "dl": true,
		"table": true, "blockquote": true, "pre": true, "form": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"header": true, "footer": true, "nav": true, "main": true,
		"section": true, "article": true, "aside": true,
		"figure": true, "fieldset": true, "hr": true,
	},
	"li":       {"li": true},
	"dt":       {"dt": true, "dd": true},
	"dd":       {"dd": true, "dt": true},
	"td":       {"td": true, "th": true, "tr": true},
	"th":       {"td": true, "th": true, "tr": true},
	"tr":       {"tr": true},
	"option":   {"option": true, "optgroup": true},
	"optgroup": {"optgroup": true},
	"thead":    {"tbody": true, "tfoot": true},
	"tbody":    {"tbody": true, "tfoot": true},
}

// closesSibling reports whether a start tag named next, found while scanning
// the content of an open element, implicitly closes that element.
func closesSibling(open, next string) bool {
	set, ok := closedBySibling[open]
	return ok && set[next]
}
