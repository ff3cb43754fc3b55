package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBytes formats a byte count into a human-readable string with 1 decimal place.
// Thresholds: <1KB → B, <1MB → KB, <1GB → MB, <1TB → GB, else TB.
// Negative counts (a shrinking store) keep their sign.
func FormatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	sign := ""
	abs := float64(bytes)
	if bytes < 0 {
		sign = "-"
		abs = -abs
	}
	switch {
	case abs < kb:
		return fmt.Sprintf("%s%d B", sign, int64(abs))
	case abs < mb:
		return fmt.Sprintf("%s%.1f KB", sign, abs/kb)
	case abs < gb:
		return fmt.Sprintf("%s%.1f MB", sign, abs/mb)
	case abs < tb:
		return fmt.Sprintf("%s%.1f GB", sign, abs/gb)
	default:
		return fmt.Sprintf("%s%.1f TB", sign, abs/tb)
	}
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatDelta formats a counter delta with an explicit sign for growth.
// Example: 1500 → "+1,500", -3 → "-3", 0 → "0".
func FormatDelta(n int64) string {
	if n > 0 {
		return "+" + FormatNumber(n)
	}
	return FormatNumber(n)
}

// FormatRatio formats a ratio with two decimal places, e.g. 1.5 → "1.50".
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatRank formats a 1-based rank as "#3", or "---" when the record was
// not ranked on the field.
func FormatRank(rank int, ok bool) string {
	if !ok {
		return "---"
	}
	return "#" + strconv.Itoa(rank)
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
