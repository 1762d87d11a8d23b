package notify

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/will4381/procrastination-betting/internal/domain"
)

const topBalances = 5

// Console implements ports.Notifier on a terminal.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole creates a notifier that writes to stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter creates a notifier for tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// DayStatus prints a compact one-line status for a simulated day.
func (c *Console) DayStatus(stat domain.DailyStat) {
	fmt.Fprintf(c.out, "[%s] rate %.2f | %d due | %d done\n",
		stat.Date.Format("2006-01-02"), stat.CompletionRate, stat.TotalBets, stat.CompletedBets)
}

// Report prints the full end-of-simulation report: settlement summary,
// the per-day table, aggregate statistics and the top balances.
func (c *Console) Report(result domain.SettlementResult, stats domain.DetailedStats, dailies []domain.DailyStat, users []*domain.User) {
	fmt.Fprintf(c.out, "\n")
	fmt.Fprintf(c.out, "========================================================\n")
	fmt.Fprintf(c.out, "  SIMULATION RESULTS (house take: %.1f%%)\n", stats.HouseTakePct)
	if len(dailies) > 0 {
		fmt.Fprintf(c.out, "  %s to %s (%d days)\n",
			dailies[0].Date.Format("2006-01-02"),
			dailies[len(dailies)-1].Date.Format("2006-01-02"),
			len(dailies))
	}
	fmt.Fprintf(c.out, "========================================================\n\n")

	fmt.Fprintf(c.out, "  --- SETTLEMENT ---\n")
	fmt.Fprintf(c.out, "  Total pool:            $%.2f\n", result.TotalPool)
	fmt.Fprintf(c.out, "  House take:            $%.2f\n", result.HouseTake)
	fmt.Fprintf(c.out, "  Paid out:              $%.2f (%d bets)\n", result.PaidOut, result.PaidBets)
	fmt.Fprintf(c.out, "  Remaining pool:        $%.2f\n", result.RemainingPool)

	if c.table && len(dailies) > 0 {
		fmt.Fprintf(c.out, "\n")
		tbl := tablewriter.NewWriter(c.out)
		tbl.Header("Date", "Rate", "Due", "Done")
		for _, d := range dailies {
			tbl.Append(
				d.Date.Format("01-02"),
				fmt.Sprintf("%.2f", d.CompletionRate),
				fmt.Sprintf("%d", d.TotalBets),
				fmt.Sprintf("%d", d.CompletedBets),
			)
		}
		tbl.Render()
	}

	fmt.Fprintf(c.out, "\n  --- AGGREGATE ---\n")
	fmt.Fprintf(c.out, "  Users:                 %d\n", stats.TotalUsers)
	fmt.Fprintf(c.out, "  Assignments:           %d\n", stats.TotalAssignments)
	fmt.Fprintf(c.out, "  Bets placed:           %d\n", stats.TotalBets)
	fmt.Fprintf(c.out, "  Total wagered:         $%.2f\n", stats.TotalBetAmount)
	fmt.Fprintf(c.out, "  Average wager:         $%.2f\n", stats.AvgBetAmount)
	fmt.Fprintf(c.out, "  Completed bets:        %d (%.1f%%)\n", stats.CompletedBets, stats.CompletionRate*100)

	if len(users) > 0 {
		ranked := append([]*domain.User(nil), users...)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Balance > ranked[j].Balance
		})
		if len(ranked) > topBalances {
			ranked = ranked[:topBalances]
		}
		fmt.Fprintf(c.out, "\n  --- TOP BALANCES ---\n")
		for _, u := range ranked {
			fmt.Fprintf(c.out, "  %-20s $%.2f\n", u.Name, u.Balance)
		}
	}

	fmt.Fprintln(c.out)
}

// OddsCalendar prints an assignment's odds series, one row per day from
// open to due date.
func (c *Console) OddsCalendar(assignment *domain.Assignment, series []domain.CalendarOdds) {
	fmt.Fprintf(c.out, "\n  Odds calendar: %s (due %s)\n",
		assignment.Name, assignment.DueDate.Format("2006-01-02"))

	tbl := tablewriter.NewWriter(c.out)
	tbl.Header("Date", "Odds")
	for _, day := range series {
		tbl.Append(day.Date.Format("2006-01-02"), fmt.Sprintf("%.3f", day.Odds))
	}
	tbl.Render()
}
