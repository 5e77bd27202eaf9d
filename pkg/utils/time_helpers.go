package utils

import "time"

// Clock - источник текущего времени. Подменяется в тестах.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock - настенные часы процесса.
var SystemClock Clock = ClockFunc(time.Now)

const (
	displayTimestampLayout = "1/2/2006, 3:04:05 PM"
	displayTimeLayout      = "3:04:05 PM"
)

// FormatDisplayTimestamp - дата и время для подписи заметки, например "11/5/2024, 3:04:05 PM".
func FormatDisplayTimestamp(t time.Time) string {
	return t.Format(displayTimestampLayout)
}

// FormatDisplayTime - время для строки "Last updated".
func FormatDisplayTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}
