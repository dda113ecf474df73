package domain

import (
	"strconv"
	"strings"
)

// FormatNumber formats a number with comma separators
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
