package label

import (
	"strings"
	"unicode"
)

// StripNonAlphanumeric joins parts with no separator and keeps only Unicode
// letters and digits, in their original order. Case is preserved. Accented
// and other non-ASCII letters count as letters.
func StripNonAlphanumeric(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		for _, r := range part {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// bracesReplacer resolves curly braces in bibliographic text fields.
// Order matters: escaped braces must be matched before bare braces so
// that a literal brace is never also stripped as a grouping marker.
var bracesReplacer = strings.NewReplacer(
	`\{`, "&#123;",
	`\}`, "&#125;",
	"{", "",
	"}", "",
)

// NormalizeBraces resolves the `{`/`}` grouping markers used in
// bibliographic text. Escaped braces (`\{`, `\}`) become HTML numeric
// entities so they survive as literal text; bare braces are structural
// and are removed.
func NormalizeBraces(s string) string {
	return bracesReplacer.Replace(s)
}
