package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber печатает число с разделителями тысяч и не более чем тремя знаками
// после запятой: 12500 -> "12,500", 2.5 -> "2.5".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	v = math.Round(v*1000) / 1000
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatSignedPercent печатает изменение со знаком: 25 -> "+25%", -5.2 -> "-5.2%", 0 -> "0%".
func FormatSignedPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		s = "+" + s
	}
	return s + "%"
}
