package ui

import "regexp"

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)

// stripANSI removes color and erase-line escape sequences for assertions.
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
