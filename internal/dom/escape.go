package dom

import "strings"

// textEscaper mirrors how browsers serialize text nodes: only markup
// significant characters and non-breaking spaces are replaced.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// EscapeText returns raw text encoded so it can be embedded into markup as
// character data.
func EscapeText(text string) string {
	return textEscaper.Replace(text)
}
