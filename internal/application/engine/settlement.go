package engine

import (
	"fmt"
	"log/slog"

	"github.com/will4381/procrastination-betting/internal/domain"
)

// FinalizeSimulation runs the settlement pass. The total pool is every
// wager on every assignment, win or lose; the house takes its cut and
// the rest becomes the prize pool. Completed bets are then paid out in
// strict user-insertion then bet-insertion order, each payout capped by
// whatever remains in the shared pool. Once the pool is dry, later
// winners receive nothing. That sequential depletion order is part of
// the payout contract and must not be reordered.
//
// Pending and missed bets are skipped. Calling this twice pays out of a
// pool already spent; running it once per simulation is the caller's
// responsibility.
func (e *Engine) FinalizeSimulation() domain.SettlementResult {
	totalPool := 0.0
	for _, a := range e.assignments {
		for _, id := range a.BetIDs {
			totalPool += e.betsByID[id].Amount
		}
	}

	houseTake := totalPool * e.cfg.HouseTake
	prizePool := totalPool - houseTake

	result := domain.SettlementResult{
		TotalPool: totalPool,
		HouseTake: houseTake,
	}

	for _, u := range e.users {
		for _, id := range u.BetIDs {
			b := e.betsByID[id]
			if b.Outcome != domain.OutcomeCompleted {
				continue
			}

			// Only the first covered assignment counts, consistent with
			// the one-assignment-per-bet model.
			a := e.assignmentsByID[b.AssignmentIDs[0]]
			odds := e.oddsFor(a, b.SelectedDate)
			b.PotentialReturn = b.Amount * odds

			actual := min(b.PotentialReturn, prizePool)
			u.Balance += actual
			prizePool -= actual
			result.PaidOut += actual
			result.PaidBets++

			slog.Info("engine: paid out bet",
				"user", u.Name,
				"won", fmt.Sprintf("$%.2f", actual),
				"odds", fmt.Sprintf("%.2f", odds),
				"pool_left", fmt.Sprintf("$%.2f", prizePool),
			)
		}
	}

	result.RemainingPool = prizePool
	slog.Info("engine: settlement complete",
		"total_pool", fmt.Sprintf("$%.2f", result.TotalPool),
		"house_take", fmt.Sprintf("$%.2f", result.HouseTake),
		"paid_out", fmt.Sprintf("$%.2f", result.PaidOut),
		"remaining", fmt.Sprintf("$%.2f", result.RemainingPool),
	)
	return result
}
