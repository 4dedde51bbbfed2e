// Package hexdump normalizes hex-dump style text into a bare hex-digit
// string. Dump lines may carry an address gutter ("00000010  aa bb ...",
// "00000010: aa bb ...") and a pipe-delimited ASCII preview column
// ("... |ab..|"); both are presentation artifacts, not payload data.
//
// This is heuristic text normalization, not a grammar. The address gutter is
// recognized as a leading run of at least four hex digits (optionally
// colon-terminated) followed by whitespace: data byte pairs are two digits
// wide, so a plain line like "AA 02 11 22" is never mistaken for one.
package hexdump

import (
	"regexp"
	"strings"
)

var gutterRe = regexp.MustCompile(`^[0-9a-fA-F]{4,}:?\s+`)

// Normalize strips per-line dump decorations from body and returns the
// surviving hex digits in order, with every other character removed.
func Normalize(body string) string {
	var sb strings.Builder
	for _, line := range strings.Split(body, "\n") {
		data := line
		if i := strings.IndexByte(line, '|'); i >= 0 {
			data = line[:i]
		}
		data = gutterRe.ReplaceAllString(data, "")
		for i := 0; i < len(data); i++ {
			if isHexDigit(data[i]) {
				sb.WriteByte(data[i])
			}
		}
	}
	return sb.String()
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}
