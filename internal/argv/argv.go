// Package argv reconstructs compiler argument vectors from raw command
// lines and scans them for the compatibility switches that select the
// legacy diagnostic formats.
package argv

import "strings"

// Split breaks a raw command line into tokens. A double quote toggles
// quoted mode and is dropped from the output; there is no escape
// character, so a quote always toggles. Spaces inside quotes are kept
// literally, empty tokens are never produced, and an unterminated quote
// runs to the end of the string.
func Split(commandLine string) []string {
	var (
		tokens []string
		buf    strings.Builder
		quoted bool
	)
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}
	for _, r := range commandLine {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return tokens
}
