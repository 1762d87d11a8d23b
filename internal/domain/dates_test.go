package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay_TruncatesToMidnightUTC(t *testing.T) {
	d := Day(time.Date(2026, time.March, 2, 17, 45, 12, 999, time.UTC))
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), d)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 12, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, DaysBetween(a, b))
	assert.Equal(t, -10, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestAssignment_DueOn_ExactDayOnly(t *testing.T) {
	a := Assignment{DueDate: Day(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC))}
	assert.True(t, a.DueOn(time.Date(2026, time.March, 12, 18, 30, 0, 0, time.UTC)))
	assert.False(t, a.DueOn(time.Date(2026, time.March, 11, 23, 59, 0, 0, time.UTC)))
	assert.False(t, a.DueOn(time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC)))
}
