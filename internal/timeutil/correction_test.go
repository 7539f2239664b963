package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCorrection(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		offset int
		want   string
	}{
		{"positive shift", "04:30", 10, "04:40"},
		{"negative shift", "04:30", -10, "04:20"},
		{"hour carry", "04:55", 10, "05:05"},
		{"hour borrow", "05:05", -10, "04:55"},
		{"wrap past midnight", "23:55", 10, "00:05"},
		{"wrap before midnight", "00:05", -10, "23:55"},
		{"full day wrap", "12:00", 1440, "12:00"},
		{"more than a day", "12:00", 1500, "13:00"},
		{"zero offset is identity", "4:3", 0, "4:3"},
		{"empty string", "", 15, ""},
		{"missing colon", "0430", 15, "0430"},
		{"non numeric", "ab:cd", 15, "ab:cd"},
		{"out of range hour", "25:00", 15, "25:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyCorrection(tc.in, tc.offset))
		})
	}
}

func TestParseClock(t *testing.T) {
	h, m, ok := ParseClock("18:55")
	assert.True(t, ok)
	assert.Equal(t, 18, h)
	assert.Equal(t, 55, m)

	_, _, ok = ParseClock("18:55 (WIB)")
	assert.False(t, ok)

	_, _, ok = ParseClock("")
	assert.False(t, ok)
}
