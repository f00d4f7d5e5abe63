// Package sanitizer holds the small string transforms applied to visitor
// input before it is relayed.
//
// EscapeHTML makes text safe for insertion into an HTML body by replacing
// exactly five characters, in this order:
//
//	&  ->  &amp;
//	<  ->  &lt;
//	>  ->  &gt;
//	"  ->  &quot;
//	'  ->  &#39;
//
// UnescapeHTML is its inverse, so UnescapeHTML(EscapeHTML(s)) == s for any s.
//
// Transforms compose with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveNullBytes, sanitizer.Trim)
//	name = clean(name)
package sanitizer
