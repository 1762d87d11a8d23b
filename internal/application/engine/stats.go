package engine

import (
	"fmt"

	"github.com/will4381/procrastination-betting/internal/domain"
)

// GetCalendarOdds returns the odds for every day from the assignment's
// open date through its due date inclusive, in ascending order. Used
// for the odds-over-time view.
func (e *Engine) GetCalendarOdds(assignmentID int) ([]domain.CalendarOdds, error) {
	a, ok := e.assignmentsByID[assignmentID]
	if !ok {
		return nil, fmt.Errorf("engine.GetCalendarOdds: unknown assignment %d", assignmentID)
	}

	series := make([]domain.CalendarOdds, 0, a.SpanDays()+1)
	for d := a.OpenDate; !d.After(a.DueDate); d = d.AddDate(0, 0, 1) {
		series = append(series, domain.CalendarOdds{Date: d, Odds: e.oddsFor(a, d)})
	}
	return series, nil
}

// GetDetailedStatistics derives the aggregate counters from current
// state. Ratios with a zero denominator come back as 0.
func (e *Engine) GetDetailedStatistics() domain.DetailedStats {
	stats := domain.DetailedStats{
		TotalUsers:       len(e.users),
		TotalAssignments: len(e.assignments),
		TotalBets:        len(e.bets),
		HouseTakePct:     e.cfg.HouseTake * 100,
	}

	for _, b := range e.bets {
		stats.TotalBetAmount += b.Amount
		if b.Outcome == domain.OutcomeCompleted {
			stats.CompletedBets++
		}
	}
	if stats.TotalBets > 0 {
		stats.AvgBetAmount = stats.TotalBetAmount / float64(stats.TotalBets)
		stats.CompletionRate = float64(stats.CompletedBets) / float64(stats.TotalBets)
	}
	return stats
}

// GetDailyStats returns the per-day statistics log in recording order.
func (e *Engine) GetDailyStats() []domain.DailyStat {
	return append([]domain.DailyStat(nil), e.dailyStats...)
}
