package domain

import "fmt"

// Simulation duration tokens accepted by ParseSimDuration. The catalogue
// is fixed; callers and the CLI rely on exactly these four labels.
const (
	DurationWeek   = "week"
	DurationMonth  = "month"
	Duration3Month = "3month"
	DurationYear   = "year"
)

// ParseSimDuration maps a duration label to a number of simulated days.
func ParseSimDuration(label string) (int, error) {
	switch label {
	case DurationWeek:
		return 7, nil
	case DurationMonth:
		return 30, nil
	case Duration3Month:
		return 90, nil
	case DurationYear:
		return 365, nil
	default:
		return 0, fmt.Errorf("domain.ParseSimDuration: invalid duration %q (want week|month|3month|year)", label)
	}
}
