package core

import "strings"

// normalizer repairs text that survived one JSON round-trip too many:
// CR/LF variants become plain newlines, literal "\n"/"\r" escape sequences
// become real newlines, and tabs (literal or real) become four spaces.
// Deliberately narrow — other escapes like \x are left alone so binary-ish
// tool output is not mangled.
var normalizer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	`\r\n`, "\n",
	`\n`, "\n",
	`\r`, "\n",
	`\t`, "    ",
	"\t", "    ",
)

// Normalize prepares raw artifact text for line-oriented rendering.
func Normalize(raw string) string {
	return normalizer.Replace(raw)
}
