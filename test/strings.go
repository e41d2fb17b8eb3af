package test

import "strings"

// Stripped flattens a rendered frame for comparison: carriage returns
// are dropped, every line loses its surrounding whitespace, and blank
// leading and trailing lines go away. Interior blank lines survive so
// vertical structure stays visible.
func Stripped(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
