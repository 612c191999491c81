// Package textclean strips lightweight markdown from generated advice so it
// can be shown as plain prose.
package textclean

import (
	"regexp"
	"strings"
)

// Bullet replaces list markers at the start of a line.
const Bullet = "• "

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Order matters: emphasis is unwrapped before list markers are inspected.
var rules = []rule{
	{regexp.MustCompile(`#{1,6}\s+`), ""},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile("`(.*?)`"), "$1"},
	{regexp.MustCompile(`\[(.*?)\]\(.*?\)`), "$1"},
	{regexp.MustCompile(`---+`), ""},
	{regexp.MustCompile(`(?m)^\s*[-*+]\s+`), Bullet},
	{regexp.MustCompile(`(?m)^\s*\d+\.\s+`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// Clean removes headings, emphasis, inline code, link syntax, horizontal
// rules and list markers, and collapses runs of blank lines. The rules are
// reapplied until nothing changes, so Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	current := text
	for {
		next := pass(current)
		if next == current {
			return next
		}
		current = next
	}
}

// pass never adds a marker character, it only removes or converts them, so
// repeated passes terminate.
func pass(text string) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return strings.TrimSpace(text)
}
