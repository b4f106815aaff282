package utils

import (
	"time"

	"clinicare-service/internal/pkg/constvars"
)

// ParseCalendarDate parses the date-only wire format. The result is midnight
// in the server's local zone; schedule dates carry no time zone of their own.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateOnlyLayout, value, time.Local)
}

func FormatCalendarDate(value time.Time) string {
	return value.Format(constvars.DateOnlyLayout)
}

// NextReminderFire computes the first fire time of the daily reminder:
// today at the reminder hour if that is still ahead of now, otherwise
// tomorrow. Subsequent fires are derived as previous + 24h by the scheduler
// so the cycle does not drift with wall-clock recomputation.
func NextReminderFire(now time.Time) time.Time {
	fire := time.Date(now.Year(), now.Month(), now.Day(), constvars.ReminderHourLocal, 0, 0, 0, now.Location())
	if !fire.After(now) {
		fire = fire.Add(24 * time.Hour)
	}
	return fire
}
