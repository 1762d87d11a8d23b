package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/will4381/procrastination-betting/internal/domain"
)

// DefaultHouseTake is the fraction of the total pool the house keeps.
const DefaultHouseTake = 0.05

// ErrInsufficientBalance is returned by PlaceBet when the wager exceeds
// the user's current balance. The engine state is untouched in that case.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Config holds engine settings. Zero values get defaults in New.
type Config struct {
	HouseTake float64
	// Now supplies the wall clock used to seed the simulated date.
	// Injected so tests can pin the calendar.
	Now func() time.Time
	// Rand is the source for every random draw: generated data, daily
	// completion rates and per-bet completion decisions. Injected so
	// runs are reproducible under a fixed seed.
	Rand *rand.Rand
}

// Engine owns the whole simulation state: users, assignments, the
// primary bet collection, the simulated clock and the per-day stats
// log. It is an explicit context object, not a singleton; independent
// simulations run on independent engines. All methods assume a single
// caller, there is no internal locking.
type Engine struct {
	cfg Config
	rng *rand.Rand
	now func() time.Time

	users           []*domain.User
	usersByName     map[string]*domain.User
	assignments     []*domain.Assignment
	assignmentsByID map[int]*domain.Assignment
	bets            []*domain.Bet // owns every bet; back-refs hold IDs only
	betsByID        map[string]*domain.Bet

	currentDate time.Time
	dailyStats  []domain.DailyStat
}

// New creates an engine with the simulated clock set to today.
func New(cfg Config) *Engine {
	if cfg.HouseTake <= 0 {
		cfg.HouseTake = DefaultHouseTake
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		cfg: cfg,
		rng: cfg.Rand,
		now: cfg.Now,
	}
	e.Reset()
	return e
}

// Reset clears all users, assignments, bets and daily statistics and
// sets the simulated clock back to the current wall-clock day.
func (e *Engine) Reset() {
	e.users = nil
	e.usersByName = make(map[string]*domain.User)
	e.assignments = nil
	e.assignmentsByID = make(map[int]*domain.Assignment)
	e.bets = nil
	e.betsByID = make(map[string]*domain.Bet)
	e.dailyStats = nil
	e.currentDate = domain.Day(e.now())
}

// AddUser registers a new user with the given starting balance.
func (e *Engine) AddUser(name string, balance float64) *domain.User {
	u := &domain.User{Name: name, Balance: balance}
	e.users = append(e.users, u)
	e.usersByName[name] = u
	slog.Info("engine: added user", "name", name, "balance", fmt.Sprintf("$%.2f", balance))
	return u
}

// AddAssignment registers a new assignment. The caller guarantees
// open <= due. IDs are sequential insertion indices.
func (e *Engine) AddAssignment(name string, open, due time.Time) *domain.Assignment {
	a := &domain.Assignment{
		ID:       len(e.assignments),
		Name:     name,
		OpenDate: domain.Day(open),
		DueDate:  domain.Day(due),
	}
	e.assignments = append(e.assignments, a)
	e.assignmentsByID[a.ID] = a
	slog.Info("engine: added assignment",
		"id", a.ID,
		"name", name,
		"open", a.OpenDate.Format("2006-01-02"),
		"due", a.DueDate.Format("2006-01-02"),
	)
	return a
}

// PlaceBet deducts the wager from the user's balance and records the
// bet against every covered assignment. The selected date is stored
// verbatim; it feeds the odds calculation at settlement. A wager above
// the user's balance is rejected with ErrInsufficientBalance and
// nothing is mutated.
func (e *Engine) PlaceBet(userName string, amount float64, selectedDate time.Time, assignmentIDs []int) (*domain.Bet, error) {
	u, ok := e.usersByName[userName]
	if !ok {
		return nil, fmt.Errorf("engine.PlaceBet: unknown user %q", userName)
	}

	covered := make([]*domain.Assignment, 0, len(assignmentIDs))
	for _, id := range assignmentIDs {
		a, ok := e.assignmentsByID[id]
		if !ok {
			return nil, fmt.Errorf("engine.PlaceBet: unknown assignment %d", id)
		}
		covered = append(covered, a)
	}

	if amount > u.Balance {
		slog.Warn("engine: bet rejected",
			"user", userName,
			"amount", fmt.Sprintf("$%.2f", amount),
			"balance", fmt.Sprintf("$%.2f", u.Balance),
		)
		return nil, fmt.Errorf("engine.PlaceBet: user %q: %w", userName, ErrInsufficientBalance)
	}

	bet := &domain.Bet{
		ID:            uuid.New().String(),
		User:          userName,
		Amount:        amount,
		SelectedDate:  domain.Day(selectedDate),
		AssignmentIDs: assignmentIDs,
		Outcome:       domain.OutcomePending,
	}

	u.Balance -= amount
	u.BetIDs = append(u.BetIDs, bet.ID)
	for _, a := range covered {
		a.BetIDs = append(a.BetIDs, bet.ID)
	}
	e.bets = append(e.bets, bet)
	e.betsByID[bet.ID] = bet

	slog.Info("engine: placed bet",
		"user", userName,
		"amount", fmt.Sprintf("$%.2f", amount),
		"date", bet.SelectedDate.Format("2006-01-02"),
		"assignments", len(covered),
	)
	return bet, nil
}

// CalculateOdds returns the payout multiplier for an assignment as of a
// date. Base odds decay linearly from 1.5 at the open date to 1.0 at
// the due date; once any money sits on the assignment the result is
// floored by the pool-adjusted odds.
func (e *Engine) CalculateOdds(assignmentID int, asOf time.Time) (float64, error) {
	a, ok := e.assignmentsByID[assignmentID]
	if !ok {
		return 0, fmt.Errorf("engine.CalculateOdds: unknown assignment %d", assignmentID)
	}
	return e.oddsFor(a, asOf), nil
}

func (e *Engine) oddsFor(a *domain.Assignment, asOf time.Time) float64 {
	asOf = domain.Day(asOf)

	totalBet := 0.0
	for _, id := range a.BetIDs {
		b := e.betsByID[id]
		if !b.SelectedDate.After(asOf) {
			totalBet += b.Amount
		}
	}

	base := domain.BaseOdds(domain.TimeFactor(a.OpenDate, a.DueDate, asOf))
	if totalBet <= 0 {
		return base
	}
	return max(base, domain.PoolOdds(totalBet, e.cfg.HouseTake))
}

// CurrentDate returns the simulated clock date.
func (e *Engine) CurrentDate() time.Time { return e.currentDate }

// HouseTake returns the house-take fraction.
func (e *Engine) HouseTake() float64 { return e.cfg.HouseTake }

// Users returns the registered users in insertion order.
func (e *Engine) Users() []*domain.User { return e.users }

// Assignments returns the registered assignments in insertion order.
func (e *Engine) Assignments() []*domain.Assignment { return e.assignments }

// Bet looks up a bet in the primary collection.
func (e *Engine) Bet(id string) (*domain.Bet, bool) {
	b, ok := e.betsByID[id]
	return b, ok
}
