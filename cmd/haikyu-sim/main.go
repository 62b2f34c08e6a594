// Package main provides the haikyu-sim CLI for batch rally simulations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/signalnine/haikyu-sim/gosim/config"
	"github.com/signalnine/haikyu-sim/gosim/report"
	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	configPath  string
	numGames    int
	seed        int64
	pointsToWin int
	workers     int
	format      string
	outputPath  string
	sample      int
	verbose     bool
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Config file (.json, .yaml or .yml)")
	flag.IntVar(&numGames, "games", 0, "Number of games to simulate (overrides config)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (overrides config; unset = random)")
	flag.IntVar(&pointsToWin, "points", 0, "Points needed to win a game (overrides config)")
	flag.IntVar(&workers, "workers", 0, "Parallel games (0 or 1 = serial)")
	flag.StringVar(&format, "format", "text", "Output format (text, json, yaml, fbs)")
	flag.StringVar(&outputPath, "out", "", "Write the report to this file instead of stdout")
	flag.IntVar(&sample, "sample", report.DefaultSample, "Rally logs shown in text output")
	flag.BoolVar(&verbose, "verbose", false, "Log every finished game")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("haikyu-sim %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	if verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	pterm.DefaultLogger.Writer = os.Stderr
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	if err := run(logger); err != nil {
		logger.Error("simulation failed", "error", err)
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = applyFlags(cfg)

	runner, err := simulation.NewRunner(cfg, simulation.WithLogger(logger))
	if err != nil {
		return err
	}

	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	rep, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(rep, outFormat); err != nil {
		return err
	}
	logger.Info("report written",
		"format", string(outFormat),
		"out", outputName(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// applyFlags overlays the flags given on the command line, the highest
// precedence configuration source.
func applyFlags(cfg config.Config) config.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.NumGames = numGames
		case "seed":
			cfg = cfg.WithSeed(seed)
		case "points":
			cfg.PointsToWin = pointsToWin
		case "workers":
			cfg.Workers = workers
		}
	})
	return cfg
}

func writeReport(rep *simulation.Report, outFormat report.Format) (err error) {
	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}
	if err := report.Write(w, rep, outFormat, report.Options{Sample: sample}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func outputName() string {
	if outputPath == "" {
		return "stdout"
	}
	return outputPath
}

func printBanner(cfg config.Config) {
	w := os.Stderr
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║              Haikyu Rally Simulator (Go)                   ║")
	fmt.Fprintln(w, "╚════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "  Games:          %d\n", cfg.NumGames)
	fmt.Fprintf(w, "  Points to win:  %d\n", cfg.PointsToWin)
	fmt.Fprintf(w, "  Team hand:      %d (%d x %d)\n", cfg.TeamHandSize(), cfg.PlayersPerTeam, cfg.HandSizePerPlayer)
	fmt.Fprintf(w, "  Specials:       %t\n", cfg.IncludeSpecials)
	fmt.Fprintf(w, "  Block window:   %d\n", cfg.BlockWindow)
	if cfg.TwoTouchPenaltyEnabled {
		fmt.Fprintf(w, "  Two-touch:      penalty %d\n", cfg.TwoTouchPenalty)
	} else {
		fmt.Fprintf(w, "  Two-touch:      no penalty\n")
	}
	fmt.Fprintf(w, "  Rally cap:      %d\n", cfg.RallyCap)
	fmt.Fprintf(w, "  Policies:       A=%s B=%s\n", cfg.PolicyA, cfg.PolicyB)
	if cfg.Seed != nil {
		fmt.Fprintf(w, "  Seed:           %d\n", *cfg.Seed)
	} else {
		fmt.Fprintf(w, "  Seed:           random\n")
	}
	fmt.Fprintln(w)
}
