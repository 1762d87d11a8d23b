package domain

import "time"

// Assignment is a task users bet on. Immutable once created except for
// its accumulating bet list.
type Assignment struct {
	ID       int
	Name     string
	OpenDate time.Time
	DueDate  time.Time
	// BetIDs holds every bet covering this assignment, in placement
	// order. Non-owning back-reference, same as User.BetIDs.
	BetIDs []string
}

// SpanDays returns the open-to-due span in whole days.
func (a Assignment) SpanDays() int {
	return DaysBetween(a.OpenDate, a.DueDate)
}

// DueOn reports whether the assignment is due exactly on the given day.
// Due dates are specific days, never ranges.
func (a Assignment) DueOn(date time.Time) bool {
	return Day(a.DueDate).Equal(Day(date))
}
