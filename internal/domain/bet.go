package domain

import "time"

// BetOutcome is the tri-state completion flag of a bet.
type BetOutcome string

const (
	// OutcomePending means the covered assignment's due date has not been
	// simulated yet. Bets still pending at settlement are skipped, not paid.
	OutcomePending BetOutcome = "PENDING"
	// OutcomeCompleted means the assignment was completed on its due date.
	OutcomeCompleted BetOutcome = "COMPLETED"
	// OutcomeMissed means the due date passed without completion.
	OutcomeMissed BetOutcome = "MISSED"
)

// Bet is a wager that the covered assignments will be completed.
// In the current design every bet covers exactly one assignment.
type Bet struct {
	ID            string
	User          string // owning user's name
	Amount        float64
	SelectedDate  time.Time // recorded verbatim at placement, drives odds
	AssignmentIDs []int
	Outcome       BetOutcome
	// PotentialReturn is Amount × odds, computed at settlement for
	// completed bets. The actual payout may be lower once the prize
	// pool runs dry.
	PotentialReturn float64
}

// Decided reports whether the bet's due date has been simulated.
func (b Bet) Decided() bool {
	return b.Outcome != OutcomePending
}
