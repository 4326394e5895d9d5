package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04:05"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// CombineDateTime joins a YYYY-MM-DD date and an HH:MM:SS time into one
// timestamp, the format pasajes stores in fecha_viaje.
func CombineDateTime(fecha, hora string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(fecha)+" "+strings.TrimSpace(hora), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatTime formats time to HH:MM:SS in local timezone.
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(layoutTime)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
