package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextReminderFire(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	t.Run("before the reminder hour fires today", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 8, 30, 0, 0, loc)

		fire := NextReminderFire(now)

		assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, loc), fire)
	})

	t.Run("after the reminder hour fires tomorrow", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 14, 0, 0, 0, loc)

		fire := NextReminderFire(now)

		assert.Equal(t, time.Date(2025, 3, 11, 10, 0, 0, 0, loc), fire)
	})

	t.Run("exactly at the reminder hour fires tomorrow", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)

		fire := NextReminderFire(now)

		assert.Equal(t, time.Date(2025, 3, 11, 10, 0, 0, 0, loc), fire)
	})
}

func TestParseCalendarDate(t *testing.T) {
	parsed, err := ParseCalendarDate("2025-06-01")

	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseCalendarDate("01-06-2025")
	assert.Error(t, err)
}
