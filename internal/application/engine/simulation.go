package engine

import (
	"fmt"
	"log/slog"

	"github.com/will4381/procrastination-betting/internal/domain"
)

// GenerateRandomData populates the engine with synthetic users,
// assignments and bets on top of whatever is already registered.
// Balances are uniform in [minBalance, maxBalance], assignments open a
// uniform 0-30 days after the clock and run for a uniform
// [minDuration, maxDuration] days, and every user (old and new) places
// 1-5 bets of $10-$100 dated somewhere inside the chosen assignment's
// open-to-due window.
func (e *Engine) GenerateRandomData(numUsers, numAssignments int, minBalance, maxBalance float64, minDuration, maxDuration int) {
	userOffset := len(e.users)
	for i := 0; i < numUsers; i++ {
		balance := minBalance + e.rng.Float64()*(maxBalance-minBalance)
		e.AddUser(fmt.Sprintf("User_%d", userOffset+i), balance)
	}

	for i := 0; i < numAssignments; i++ {
		open := e.currentDate.AddDate(0, 0, e.rng.Intn(31))
		due := open.AddDate(0, 0, minDuration+e.rng.Intn(maxDuration-minDuration+1))
		e.AddAssignment(fmt.Sprintf("Assignment_%d", len(e.assignments)), open, due)
	}

	if len(e.assignments) == 0 {
		return
	}

	for _, u := range e.users {
		for n := e.rng.Intn(5) + 1; n > 0; n-- {
			a := e.assignments[e.rng.Intn(len(e.assignments))]
			amount := 10 + e.rng.Float64()*90
			date := a.OpenDate.AddDate(0, 0, e.rng.Intn(a.SpanDays()+1))
			// Rejected bets (balance run dry) are logged by PlaceBet
			// and skipped, matching manual play.
			_, _ = e.PlaceBet(u.Name, amount, date, []int{a.ID})
		}
	}

	slog.Info("engine: generated random data",
		"users", numUsers,
		"assignments", numAssignments,
		"total_bets", len(e.bets),
	)
}

// SimulateDay advances the simulation by exactly one day. A completion
// rate is drawn from N(mean, stddev) and clamped to [0,1]; every bet on
// an assignment due on the current clock date is decided by an
// independent draw against that rate. Bets on assignments due any other
// day are untouched. The appended daily stat covers only the bets due
// today.
func (e *Engine) SimulateDay(completionRateMean, completionRateStdDev float64) domain.DailyStat {
	rate := e.rng.NormFloat64()*completionRateStdDev + completionRateMean
	rate = min(max(rate, 0), 1)

	dueBets, completed := 0, 0
	for _, a := range e.assignments {
		if !a.DueOn(e.currentDate) {
			continue
		}
		for _, id := range a.BetIDs {
			b := e.betsByID[id]
			dueBets++
			if e.rng.Float64() < rate {
				b.Outcome = domain.OutcomeCompleted
				completed++
			} else {
				b.Outcome = domain.OutcomeMissed
			}
		}
	}

	stat := domain.DailyStat{
		Date:           e.currentDate,
		CompletionRate: rate,
		TotalBets:      dueBets,
		CompletedBets:  completed,
	}
	e.dailyStats = append(e.dailyStats, stat)
	e.currentDate = e.currentDate.AddDate(0, 0, 1)

	slog.Info("engine: simulated day",
		"date", stat.Date.Format("2006-01-02"),
		"completion_rate", fmt.Sprintf("%.2f", rate),
		"bets_due", dueBets,
		"completed", completed,
	)
	return stat
}

// Run simulates a fixed number of consecutive days and returns their
// stats. It does not settle; call FinalizeSimulation afterwards.
func (e *Engine) Run(days int, completionRateMean, completionRateStdDev float64) []domain.DailyStat {
	stats := make([]domain.DailyStat, 0, days)
	for i := 0; i < days; i++ {
		stats = append(stats, e.SimulateDay(completionRateMean, completionRateStdDev))
	}
	return stats
}
