package main

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/will4381/procrastination-betting/config"
	"github.com/will4381/procrastination-betting/internal/application/engine"
	"github.com/will4381/procrastination-betting/internal/ports"
)

// oddsCalendarLimit caps how many assignment calendars the table mode
// prints; a full generated run has dozens.
const oddsCalendarLimit = 3

type runOptions struct {
	Days       int
	Watch      bool
	DaysPerSec float64
	Table      bool
}

// runSimulation drives one full scenario: generate synthetic data, step
// the clock day by day, settle the pool and render the report.
func runSimulation(ctx context.Context, eng *engine.Engine, notifier ports.Notifier, cfg *config.Config, opts runOptions) {
	gen := cfg.Generate
	eng.GenerateRandomData(gen.Users, gen.Assignments,
		gen.MinBalance, gen.MaxBalance, gen.MinDurationDays, gen.MaxDurationDays)

	limiter := rate.NewLimiter(rate.Limit(opts.DaysPerSec), 1)

	for i := 0; i < opts.Days; i++ {
		if opts.Watch {
			if err := limiter.Wait(ctx); err != nil {
				slog.Info("simulation interrupted", "days_done", i, "days_wanted", opts.Days)
				return
			}
		} else if ctx.Err() != nil {
			slog.Info("simulation interrupted", "days_done", i, "days_wanted", opts.Days)
			return
		}

		stat := eng.SimulateDay(cfg.Simulation.CompletionRateMean, cfg.Simulation.CompletionRateStdDev)
		if opts.Watch {
			notifier.DayStatus(stat)
		}
	}

	result := eng.FinalizeSimulation()
	notifier.Report(result, eng.GetDetailedStatistics(), eng.GetDailyStats(), eng.Users())

	if !opts.Table {
		return
	}
	for i, a := range eng.Assignments() {
		if i >= oddsCalendarLimit {
			break
		}
		series, err := eng.GetCalendarOdds(a.ID)
		if err != nil {
			slog.Warn("could not build odds calendar", "assignment", a.Name, "err", err)
			continue
		}
		notifier.OddsCalendar(a, series)
	}
}
