package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/will4381/procrastination-betting/config"
	"github.com/will4381/procrastination-betting/internal/adapters/notify"
	"github.com/will4381/procrastination-betting/internal/application/engine"
	"github.com/will4381/procrastination-betting/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	duration := flag.String("duration", "", "simulation duration: week|month|3month|year (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config; 0 = from clock)")
	users := flag.Int("users", 0, "users to generate (overrides config)")
	assignments := flag.Int("assignments", 0, "assignments to generate (overrides config)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print daily table + odds calendars (default: summary only)")
	watch := flag.Bool("watch", false, "print each simulated day as it happens, paced")
	daysPerSec := flag.Float64("days-per-sec", 5, "playback pace in watch mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = config.Default()
		} else {
			slog.Error("failed to load config", "err", err, "path", *configPath)
			os.Exit(1)
		}
	}

	if *duration != "" {
		cfg.Simulation.Duration = *duration
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *users > 0 {
		cfg.Generate.Users = *users
	}
	if *assignments > 0 {
		cfg.Generate.Assignments = *assignments
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	days, err := domain.ParseSimDuration(cfg.Simulation.Duration)
	if err != nil {
		slog.Error("invalid simulation duration", "err", err)
		os.Exit(1)
	}

	rngSeed := cfg.Simulation.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	slog.Info("procrast starting",
		"config", *configPath,
		"duration", cfg.Simulation.Duration,
		"days", days,
		"house_take", cfg.Simulation.HouseTake,
		"seed", rngSeed,
		"watch", *watch,
	)

	eng := engine.New(engine.Config{
		HouseTake: cfg.Simulation.HouseTake,
		Rand:      rand.New(rand.NewSource(rngSeed)),
	})
	notifier := notify.NewConsole(*table)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runSimulation(ctx, eng, notifier, cfg, runOptions{
		Days:       days,
		Watch:      *watch,
		DaysPerSec: *daysPerSec,
		Table:      *table,
	})

	slog.Info("procrast finished")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
