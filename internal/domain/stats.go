package domain

import "time"

// DailyStat is one entry of the per-day simulation log, appended once
// per simulated day in clock order.
type DailyStat struct {
	Date           time.Time
	CompletionRate float64 // the day's sampled completion rate, clamped to [0,1]
	TotalBets      int     // bets on assignments due that day
	CompletedBets  int     // how many of those were marked completed
}

// CalendarOdds is one day of an assignment's odds series, used for the
// odds-over-time view.
type CalendarOdds struct {
	Date time.Time
	Odds float64
}

// DetailedStats are the aggregate counters derived from current engine
// state. Every ratio is zero-guarded: a zero denominator yields 0.
type DetailedStats struct {
	TotalUsers       int
	TotalAssignments int
	TotalBets        int
	TotalBetAmount   float64
	AvgBetAmount     float64
	CompletedBets    int
	CompletionRate   float64
	HouseTakePct     float64
}

// SettlementResult is what FinalizeSimulation hands back to the caller.
// TotalPool == HouseTake + PaidOut + RemainingPool holds exactly.
type SettlementResult struct {
	TotalPool     float64
	HouseTake     float64
	RemainingPool float64
	PaidOut       float64
	PaidBets      int
}
