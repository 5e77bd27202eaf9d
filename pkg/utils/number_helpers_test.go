package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{45, "45"},
		{2850, "2,850"},
		{12500, "12,500"},
		{1234567.891, "1,234,567.891"},
		{-3000, "-3,000"},
		{2.5, "2.5"},
		{0.12345, "0.123"},
		{math.NaN(), "n/a"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNumber(c.in), "FormatNumber(%v)", c.in)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	assert.Equal(t, "+25%", FormatSignedPercent(25.0))
	assert.Equal(t, "-5.2%", FormatSignedPercent(-5.2))
	assert.Equal(t, "-10%", FormatSignedPercent(-10.0))
	assert.Equal(t, "0%", FormatSignedPercent(0))
}

func TestDisplayTimeFormats(t *testing.T) {
	at := time.Date(2024, time.November, 5, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "11/5/2024, 3:04:05 PM", FormatDisplayTimestamp(at))
	assert.Equal(t, "3:04:05 PM", FormatDisplayTime(at))

	fixed := ClockFunc(func() time.Time { return at })
	assert.Equal(t, at, fixed.Now())
}
