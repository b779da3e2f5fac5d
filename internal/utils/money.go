package utils

import (
	"strconv"
	"strings"
)

// FormatPreco renders a monetary value in Brazilian display format with a
// fixed number of decimal places: "1.234,50". The report uses 3 places for
// cost and 2 for sale price.
func FormatPreco(v float64, places int) string {
	if places < 0 {
		places = 0
	}

	s := strconv.FormatFloat(v, 'f', places, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	grouped := groupThousands(intPart)
	if fracPart == "" {
		return sign + grouped
	}
	return sign + grouped + "," + fracPart
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (n-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
