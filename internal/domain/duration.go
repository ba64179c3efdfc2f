package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hourToken   = regexp.MustCompile(`(\d+)h`)
	minuteToken = regexp.MustCompile(`(\d+)m`)
)

// ParseDuration extracts hour and minute counts from free-form text like
// "5h 30m", "2h" or "45m". Tokens may appear in any order and unmatched
// text is ignored. The zero pair (0, 0) signals an invalid duration:
// nothing parsed, hours above 24, or minutes above 59.
func ParseDuration(text string) (hours, minutes int) {
	text = strings.ToLower(strings.TrimSpace(text))

	if m := hourToken.FindStringSubmatch(text); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := minuteToken.FindStringSubmatch(text); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	if hours > 24 || minutes > 59 {
		return 0, 0
	}
	return hours, minutes
}
