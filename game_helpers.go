package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/render"
	"github.com/sheikhrachel/lifegrid/utils"
)

// initializeSimulator builds a simulator and loads the configured starting pattern
func initializeSimulator(config utils.Config) (*model.Simulator, error) {
	var opts []model.Option
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	sim, err := model.New(config.Size, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[initializeSimulator] size %d", config.Size)
	}

	if config.Pattern == "" || config.Pattern == "random" {
		return sim, nil
	}

	board, err := model.Pattern(config.Pattern, config.Size, config.RandomDensity, sim.Rand())
	if err != nil {
		return nil, err
	}
	if err = sim.DefineBoard(board); err != nil {
		return nil, errors.Wrapf(err, "[initializeSimulator] pattern %q", config.Pattern)
	}
	return sim, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, sim *model.Simulator) {
	fmt.Fprintf(out, "Pattern: %s | Seed: %d | Stop on stagnation: %v\n",
		config.Pattern, config.Seed, config.StopOnStagnant)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		sim.Size(), sim.Size(), sim.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState updates stats and stagnation tracking and returns status information
func updateGameState(
	sim *model.Simulator,
	tracker *model.StagnationTracker,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := sim.Population()
	density := float64(livingCells) / float64(sim.Size()*sim.Size()) * 100

	stats.Update(sim.Generation(), livingCells, time.Since(lastFrameTime))

	isStagnant := tracker.IsStagnant(sim.Grid())
	tracker.Observe(sim.Grid())

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// checkStopConditions determines if the run should end
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if config.Steps > 0 && generation >= config.Steps {
		return true, "step limit reached"
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnant && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runLoop animates the simulator in the terminal until a stop condition or ctx ends it
func runLoop(
	ctx context.Context,
	out io.Writer,
	config utils.Config,
	sim *model.Simulator,
	renderer *render.TerminalRenderer,
) *utils.Stats {
	var (
		stats         = utils.NewStats()
		tracker       model.StagnationTracker
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down gracefully...")
			return stats
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(sim, &tracker, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(out, sim.Generation(), livingCells, density, status, stats)
		renderer.Display(sim.View())

		if stop, reason := checkStopConditions(livingCells, stagnantCount, sim.Generation(), config); stop {
			fmt.Fprintf(out, "\nStopped: %s\n", reason)
			return stats
		}

		sim.Step()

		select {
		case <-ctx.Done():
		case <-time.After(config.FrameRate):
		}
	}
}

// displayFinalStats summarizes a finished run
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
