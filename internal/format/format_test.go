package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes_small", 512, "512 B"},
		{"bytes_max", 1023, "1023 B"},
		{"one_kb", 1024, "1.0 KB"},
		{"one_and_half_kb", 1536, "1.5 KB"},
		{"just_under_mb", 1024*1024 - 1, "1024.0 KB"},
		{"one_mb", 1024 * 1024, "1.0 MB"},
		{"twenty_mb", 20 * 1024 * 1024, "20.0 MB"},
		{"one_gb", 1024 * 1024 * 1024, "1.0 GB"},
		{"one_and_half_gb", int64(1.5 * 1024 * 1024 * 1024), "1.5 GB"},
		{"one_tb", 1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{"two_tb", 2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
		{"negative_bytes", -512, "-512 B"},
		{"negative_mb", -20 * 1024 * 1024, "-20.0 MB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatBytes(tc.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0"},
		{"small", 42, "42"},
		{"three_digits", 999, "999"},
		{"four_digits", 1000, "1,000"},
		{"six_digits", 123456, "123,456"},
		{"seven_digits", 1234567, "1,234,567"},
		{"nine_digits", 12345678, "12,345,678"},
		{"negative", -12345, "-12,345"},
		{"min_int64", math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.input))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0"},
		{"growth", 1500, "+1,500"},
		{"shrink", -3, "-3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDelta(tc.input))
		})
	}
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "1.50", FormatRatio(1.5))
	assert.Equal(t, "0.67", FormatRatio(0.67))
	assert.Equal(t, "3.00", FormatRatio(3))
}

func TestFormatRank(t *testing.T) {
	assert.Equal(t, "#1", FormatRank(1, true))
	assert.Equal(t, "---", FormatRank(0, false))
}
