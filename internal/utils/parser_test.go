package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12000", 12000, true},
		{"  500  ", 500, true},
		{"500,", 500, true},
		{"12000*", 12000, true},
		{"3.5", 3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
	}
	for _, c := range cases {
		got, ok := LeadingInt(c.in)
		assert.Equal(t, c.ok, ok, "LeadingInt(%q)", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "LeadingInt(%q)", c.in)
		}
	}
}

func TestLeadingFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1800.5", 1800.5, true},
		{"1800.5s", 1800.5, true},
		{"42", 42, true},
		{"3.5.7", 3.5, true},
		{".", 0, false},
		{"", 0, false},
		{"x12", 0, false},
	}
	for _, c := range cases {
		got, ok := LeadingFloat(c.in)
		assert.Equal(t, c.ok, ok, "LeadingFloat(%q)", c.in)
		if c.ok {
			assert.InDelta(t, c.want, got, 1e-9, "LeadingFloat(%q)", c.in)
		}
	}
}

func TestParseWalltime(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12:00:00", 12 * 3600},
		{"04:12:33", 4*3600 + 12*60 + 33},
		{"30:00", 30 * 60},
		{"3600", 3600},
		{"", 0},
		{"garbage", 0},
		{"1:2:3:4", 0},
		{"12:xx:00", 0},
		{"-1:00:00", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseWalltime(c.in), "ParseWalltime(%q)", c.in)
	}
}

func TestFormatWalltime(t *testing.T) {
	assert.Equal(t, "12:00:00", FormatWalltime(12*3600))
	assert.Equal(t, "00:30:05", FormatWalltime(30*60+5))
	assert.Equal(t, "00:00:00", FormatWalltime(-5))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0.50h", FormatHours(1800))
	assert.Equal(t, "-0.17h", FormatHours(-600))
}
