package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will4381/procrastination-betting/internal/domain"
)

// testClock pins the simulated calendar; testDay(0) is the engine's
// starting date.
var testClock = time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

func testDay(n int) time.Time {
	return domain.Day(testClock).AddDate(0, 0, n)
}

func newTestEngine(houseTake float64, seed int64) *Engine {
	return New(Config{
		HouseTake: houseTake,
		Now:       func() time.Time { return testClock },
		Rand:      rand.New(rand.NewSource(seed)),
	})
}

func TestNew_StartsAtTruncatedToday(t *testing.T) {
	e := newTestEngine(0.05, 1)
	assert.Equal(t, testDay(0), e.CurrentDate())
	assert.Equal(t, 0.05, e.HouseTake())
}

func TestAddAssignment_SequentialIDs(t *testing.T) {
	e := newTestEngine(0.05, 1)
	a0 := e.AddAssignment("Essay", testDay(0), testDay(5))
	a1 := e.AddAssignment("Problem set", testDay(1), testDay(8))
	assert.Equal(t, 0, a0.ID)
	assert.Equal(t, 1, a1.ID)
	assert.Len(t, e.Assignments(), 2)
}

func TestPlaceBet_DeductsBalance(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 100)
	a := e.AddAssignment("Essay", testDay(0), testDay(10))

	bet, err := e.PlaceBet("alice", 40, testDay(2), []int{a.ID})
	require.NoError(t, err)
	require.NotNil(t, bet)

	assert.Equal(t, 60.0, e.Users()[0].Balance)
	assert.Equal(t, domain.OutcomePending, bet.Outcome)
	assert.Equal(t, []string{bet.ID}, e.Users()[0].BetIDs)
	assert.Equal(t, []string{bet.ID}, a.BetIDs)

	stored, ok := e.Bet(bet.ID)
	require.True(t, ok)
	assert.Equal(t, bet, stored)
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 30)
	a := e.AddAssignment("Essay", testDay(0), testDay(10))

	bet, err := e.PlaceBet("alice", 40, testDay(2), []int{a.ID})
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, bet)

	// nothing mutated
	assert.Equal(t, 30.0, e.Users()[0].Balance)
	assert.Empty(t, e.Users()[0].BetIDs)
	assert.Empty(t, a.BetIDs)
}

func TestPlaceBet_UnknownUserOrAssignment(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 100)
	e.AddAssignment("Essay", testDay(0), testDay(10))

	_, err := e.PlaceBet("bob", 10, testDay(0), []int{0})
	assert.Error(t, err)

	_, err = e.PlaceBet("alice", 10, testDay(0), []int{7})
	assert.Error(t, err)
	assert.Equal(t, 100.0, e.Users()[0].Balance)
}

func TestCalculateOdds_NoBetsIsBaseOdds(t *testing.T) {
	e := newTestEngine(0.05, 1)
	a := e.AddAssignment("Essay", testDay(0), testDay(10))

	odds, err := e.CalculateOdds(a.ID, testDay(5))
	require.NoError(t, err)
	assert.InDelta(t, 1.25, odds, 0.0001)
}

func TestCalculateOdds_WithBetsFlooredByPoolOdds(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 100)
	a := e.AddAssignment("Essay", testDay(0), testDay(10))
	_, err := e.PlaceBet("alice", 40, testDay(1), []int{a.ID})
	require.NoError(t, err)

	// midway: base 1.25 beats the 0.95 pool floor
	odds, err := e.CalculateOdds(a.ID, testDay(5))
	require.NoError(t, err)
	assert.InDelta(t, 1.25, odds, 0.0001)

	// at the due date: base decays to 1.0, still above the floor
	odds, err = e.CalculateOdds(a.ID, testDay(10))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, odds, 0.0001)
}

func TestCalculateOdds_IgnoresBetsSelectedAfterQueryDate(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 100)
	a := e.AddAssignment("Essay", testDay(0), testDay(10))
	_, err := e.PlaceBet("alice", 40, testDay(6), []int{a.ID})
	require.NoError(t, err)

	odds, err := e.CalculateOdds(a.ID, testDay(5))
	require.NoError(t, err)
	assert.InDelta(t, 1.25, odds, 0.0001) // pool empty as of day 5
}

func TestCalculateOdds_ZeroSpanAssignment(t *testing.T) {
	e := newTestEngine(0.05, 1)
	a := e.AddAssignment("Same-day quiz", testDay(3), testDay(3))

	odds, err := e.CalculateOdds(a.ID, testDay(3))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, odds, 0.0001)
}

func TestCalculateOdds_UnknownAssignment(t *testing.T) {
	e := newTestEngine(0.05, 1)
	_, err := e.CalculateOdds(42, testDay(0))
	assert.Error(t, err)
}

func TestReset_ClearsEverything(t *testing.T) {
	e := newTestEngine(0.05, 1)
	e.AddUser("alice", 100)
	a := e.AddAssignment("Essay", testDay(0), testDay(2))
	_, err := e.PlaceBet("alice", 10, testDay(0), []int{a.ID})
	require.NoError(t, err)
	e.SimulateDay(0.7, 0.1)

	e.Reset()

	assert.Empty(t, e.Users())
	assert.Empty(t, e.Assignments())
	assert.Empty(t, e.GetDailyStats())
	assert.Equal(t, testDay(0), e.CurrentDate())
	_, ok := e.Bet("anything")
	assert.False(t, ok)
}
