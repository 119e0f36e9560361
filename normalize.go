package textkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeText canonicalizes text for cache-key computation: every character
// is lowercased using the full Unicode lowercase mapping, runs of whitespace
// (unicode.IsSpace, the Unicode White_Space property of the Unicode tables
// shipped with the toolchain) collapse to a single ASCII space, and leading
// and trailing whitespace is removed. Empty and whitespace-only input
// normalize to the empty string.
//
// The full mapping (not strings.ToLower's simple one-to-one mapping) keeps
// normalized forms of characters like U+0130 compatible with other
// implementations of this normalization. The result is idempotent:
// NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	// cases.Caser is stateful, so build one per call rather than sharing
	lowered := cases.Lower(language.Und).String(text)

	var b strings.Builder
	b.Grow(len(lowered))

	pendingSpace := false
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			// Defer the separator until the next word so the
			// output never ends with a space.
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
