package domain

import "time"

// TimeFactor returns the linear fraction of betting time remaining on an
// assignment as of a given date: 1.0 at the open date, 0.0 at the due
// date. A zero open-to-due span would divide by zero; it is treated as
// no time remaining instead.
func TimeFactor(open, due, asOf time.Time) float64 {
	span := DaysBetween(open, due)
	if span <= 0 {
		return 0
	}
	return float64(DaysBetween(asOf, due)) / float64(span)
}

// BaseOdds converts a time factor into the time-decaying base
// multiplier: 1.5 at the open date, decaying linearly to 1.0 at the due
// date.
func BaseOdds(timeFactor float64) float64 {
	return 1 + 0.5*timeFactor
}

// PoolOdds is the pool-adjusted multiplier once money is on an
// assignment. The formula reduces algebraically to 1-houseTake, but the
// written form is load-bearing: callers and tests pin it, so it stays.
func PoolOdds(totalBet, houseTake float64) float64 {
	if totalBet <= 0 {
		return 0
	}
	return totalBet * (1 - houseTake) / totalBet
}
