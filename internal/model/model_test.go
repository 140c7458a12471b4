package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHourRange(t *testing.T) {
	assert.Equal(t, "00:00 - 01:00", HourRange(0))
	assert.Equal(t, "09:00 - 10:00", HourRange(9))
	assert.Equal(t, "23:00 - 00:00", HourRange(23))
}

func TestNormalizeSlots(t *testing.T) {
	assert.Len(t, NormalizeSlots(nil), HoursPerDay)

	short := NormalizeSlots([]string{"a", "b"})
	assert.Len(t, short, HoursPerDay)
	assert.Equal(t, "a", short[0])
	assert.Equal(t, "", short[2])

	long := make([]string, HoursPerDay+3)
	assert.Len(t, NormalizeSlots(long), HoursPerDay)
}

func TestISOTime(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 15, 250_000_000, time.UTC)
	assert.Equal(t, "2026-03-01T09:30:15.250Z", ISOTime(ts))
}

func TestNewUser(t *testing.T) {
	u := NewUser("alice")
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "[]", string(u.Subjects))
	assert.Equal(t, "[]", string(u.DailyLogs))
}
