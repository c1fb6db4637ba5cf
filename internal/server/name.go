package server

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameBytes caps seeker names as they appear in logs and the archive.
const maxNameBytes = 16

// allowedTerms lists the TERM values the server will export before building
// a terminfo screen. Anything else gets the configured fallback.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"tmux":                  true,
	"tmux-256color":         true,
	"screen":                true,
	"screen-256color":       true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sanitizeName strips control runes from an SSH username and truncates the
// rest to maxNameBytes at a rune boundary.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
