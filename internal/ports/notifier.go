package ports

import (
	"github.com/will4381/procrastination-betting/internal/domain"
)

// Notifier presents simulation progress and results to the user.
// The console implementation prints compact status lines and formatted
// tables; the engine itself never renders anything.
type Notifier interface {
	// DayStatus reports one simulated day as it happens.
	DayStatus(stat domain.DailyStat)
	// Report renders the final settlement report.
	Report(result domain.SettlementResult, stats domain.DetailedStats, dailies []domain.DailyStat, users []*domain.User)
	// OddsCalendar renders an assignment's day-by-day odds series.
	OddsCalendar(assignment *domain.Assignment, series []domain.CalendarOdds)
}
