package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input   string
		hours   int
		minutes int
	}{
		{"5h 30m", 5, 30},
		{"2h", 2, 0},
		{"45m", 0, 45},
		{"30m 5h", 5, 30},
		{"  2H 15M  ", 2, 15},
		{"1h30m", 1, 30},
		{"work for 3h roughly", 3, 0},
		{"25h", 0, 0},
		{"1h 60m", 0, 0},
		{"", 0, 0},
		{"abc", 0, 0},
		{"h m", 0, 0},
	}
	for _, tc := range cases {
		h, m := ParseDuration(tc.input)
		assert.Equal(t, tc.hours, h, "input=%q", tc.input)
		assert.Equal(t, tc.minutes, m, "input=%q", tc.input)
	}
}

func TestParseDuration_UpperBounds(t *testing.T) {
	h, m := ParseDuration("24h 59m")
	assert.Equal(t, 24, h)
	assert.Equal(t, 59, m)
}
