package domain

// User is a bettor. Balance moves down at bet placement and up at
// settlement; the user itself is never deleted, only cleared with the
// rest of the simulation state.
type User struct {
	Name    string
	Balance float64
	// BetIDs holds the user's bets in placement order. The IDs resolve
	// through the engine's primary bet collection; the list is a
	// non-owning back-reference used for aggregation and settlement
	// ordering.
	BetIDs []string
}
