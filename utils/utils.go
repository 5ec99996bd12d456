package utils

import (
	"strings"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// markdownEscaper backslash-escapes the Discord markup control characters.
// The backslash pair must come first so backslashes already present in the
// content are neutralized before any escape we add.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	"`", "\\`",
	`|`, `\|`,
)

// EscapeMarkdown neutralizes Discord markup in the given text so mirrored
// content cannot inject formatting into the destination channel.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
