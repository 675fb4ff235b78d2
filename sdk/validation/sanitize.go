package validation

import (
	"html"
	"strings"
	"unicode"
)

// SanitizeText prepares client-supplied free text for storage: surrounding
// whitespace is trimmed, control characters are dropped, and
// markup-significant characters are HTML-escaped so the stored value is
// inert when later rendered. Escaping happens exactly once, here; nothing
// downstream escapes again.
func SanitizeText(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}

	return html.EscapeString(b.String())
}
