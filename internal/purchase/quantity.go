package purchase

import (
	"strconv"
	"strings"
)

// MinQuantity is the value every invalid quantity input is clamped to.
const MinQuantity = 1

// ParseQuantity reads the leading integer of user text, ignoring surrounding
// whitespace and anything after the digits. Unparseable or non-positive input
// yields MinQuantity.
func ParseQuantity(text string) int {
	s := strings.TrimSpace(text)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return MinQuantity
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < MinQuantity {
		return MinQuantity
	}
	return n
}
