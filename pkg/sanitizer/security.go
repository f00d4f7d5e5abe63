package sanitizer

import "strings"

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	lineBreaks = strings.NewReplacer("\r\n", "<br />", "\n", "<br />")
)

// EscapeHTML replaces & < > " ' with &amp; &lt; &gt; &quot; &#39;.
// Every other character passes through unchanged.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// UnescapeHTML reverses EscapeHTML. Other entities are left as they are.
func UnescapeHTML(s string) string {
	return htmlUnescaper.Replace(s)
}

// NewlinesToBreaks turns line breaks into <br /> elements.
// Apply it after EscapeHTML.
func NewlinesToBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// RemoveNullBytes removes NUL characters.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// PreventHeaderInjection removes CR, LF and NUL so that s can be used as a
// single mail header value.
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", "")
	return RemoveNullBytes(result)
}
