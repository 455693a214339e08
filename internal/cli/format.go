// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatWon formats a won amount with separators and the currency suffix.
// e.g., 90000 -> "90,000원"
func FormatWon(n int64) string {
	return FormatNumber(n) + "원"
}

// FormatAccount renders an account the way the goal form's picker
// shows it: alias first, number in parentheses.
func FormatAccount(alias, number string) string {
	return fmt.Sprintf("%s (%s)", alias, number)
}

// FormatRate formats an interest rate for the products listing.
// e.g., 3.5 -> "연 3.50%"
func FormatRate(rate float64) string {
	return fmt.Sprintf("연 %.2f%%", rate)
}
