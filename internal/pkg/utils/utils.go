package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ISOLayout matches JavaScript's Date.prototype.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO formats t in UTC with millisecond precision.
// Example: 2025-01-02T03:04:05.678Z
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO accepts both the millisecond layout and plain RFC3339.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, value)
	if err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339Nano, value)
}

// ParsePrice keeps only the digits of a price label.
// Example: "25 000 DA" -> 25000, "" -> 0
func ParsePrice(label string) int64 {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, label)

	if digits == "" {
		return 0
	}

	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return math.MaxInt64
	}

	return price
}

// ClampPrice truncates a numeric price to a non-negative integer.
func ClampPrice(amount float64) int64 {
	if amount <= 0 || math.IsNaN(amount) {
		return 0
	}

	if amount >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(amount)
}

// FormatDinar formats an amount the way the app labels prices.
// Example: 25000 -> "25 000 DA"
func FormatDinar(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	var result []byte
	str := strconv.FormatInt(amount, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{' '}, result...)
		}
	}

	if negative {
		return "-" + string(result) + " DA"
	}
	return string(result) + " DA"
}
