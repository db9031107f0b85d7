package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/render"
	"github.com/sheikhrachel/lifegrid/tui"
	"github.com/sheikhrachel/lifegrid/utils"
)

var (
	configFile string
	size       int
	seed       int64
	pattern    string
	density    float64
	aliveColor string
	deadColor  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lifegrid",
		Short:        "Conway's Game of Life on a bounded square grid",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (json or yaml)")
	pf.IntVar(&size, "size", 30, "board dimension")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.StringVar(&pattern, "pattern", "random", fmt.Sprintf("starting pattern %v", model.Patterns()))
	pf.Float64Var(&density, "density", 0.15, "random life density for the interesting pattern")
	pf.StringVar(&aliveColor, "alive-color", "black", "color of live cells (name or #rrggbb)")
	pf.StringVar(&deadColor, "dead-color", "white", "color of dead cells (name or #rrggbb)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}
	runCmd.Flags().Int("steps", 0, "generations to run (0 runs until stopped)")
	runCmd.Flags().Duration("frame-rate", 150*time.Millisecond, "delay between frames")
	runCmd.Flags().Bool("stop-on-stagnant", false, "stop once the board settles into a still life or short cycle")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "print a single board",
		Args:  cobra.NoArgs,
		RunE:  viewBoard,
	}
	viewCmd.Flags().Int("steps", 0, "generations to advance before viewing")
	viewCmd.Flags().String("png", "", "write the board to a PNG file instead of the terminal")
	viewCmd.Flags().Int("scale", 8, "pixels per cell")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "record generations to an animated GIF",
		Args:  cobra.NoArgs,
		RunE:  animate,
	}
	animateCmd.Flags().Int("steps", 100, "generations to record")
	animateCmd.Flags().String("output", "life.gif", "output file")
	animateCmd.Flags().Int("scale", 8, "pixels per cell")
	animateCmd.Flags().Int("delay", 10, "frame delay in 100ths of a second")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal player",
		Args:  cobra.NoArgs,
		RunE:  live,
	}
	liveCmd.Flags().Duration("frame-rate", 150*time.Millisecond, "delay between generations")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the population over time",
		Args:  cobra.NoArgs,
		RunE:  plotPopulation,
	}
	plotCmd.Flags().Int("steps", 100, "generations to simulate")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "play generations in a desktop window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE:  showWindow,
	}
	windowCmd.Flags().Int("steps", 100, "generations to play")
	windowCmd.Flags().Int("scale", 8, "pixels per cell")
	windowCmd.Flags().Int("delay", 10, "frame delay in 100ths of a second")

	rootCmd.AddCommand(runCmd, viewCmd, animateCmd, liveCmd, plotCmd, windowCmd)
	return rootCmd
}

// loadConfig reads the config file, if any, and applies explicitly set flags on top
func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	config := utils.DefaultConfig()
	if configFile != "" {
		var err error
		if config, err = utils.LoadConfig(configFile); err != nil {
			return config, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("size") {
		config.Size = size
	}
	if fs.Changed("seed") {
		config.Seed = seed
	}
	if fs.Changed("pattern") {
		config.Pattern = pattern
	}
	if fs.Changed("density") {
		config.RandomDensity = density
	}
	if fs.Changed("alive-color") {
		config.AliveColor = aliveColor
	}
	if fs.Changed("dead-color") {
		config.DeadColor = deadColor
	}

	// command flags carry their own defaults; a config file wins over an unset one
	if f := fs.Lookup("steps"); f != nil && (f.Changed || configFile == "") {
		config.Steps, _ = fs.GetInt("steps")
	}
	if f := fs.Lookup("frame-rate"); f != nil && (f.Changed || configFile == "") {
		config.FrameRate, _ = fs.GetDuration("frame-rate")
	}
	if fs.Changed("stop-on-stagnant") {
		config.StopOnStagnant, _ = fs.GetBool("stop-on-stagnant")
	}
	if fs.Changed("output") {
		config.Output, _ = fs.GetString("output")
	}
	if fs.Changed("scale") {
		config.Scale, _ = fs.GetInt("scale")
	}
	if fs.Changed("delay") {
		config.FrameDelay, _ = fs.GetInt("delay")
	}

	return config, config.Validate()
}

// setup loads the configuration, the simulator and the palette shared by every command
func setup(cmd *cobra.Command) (utils.Config, *model.Simulator, render.Palette, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return config, nil, render.Palette{}, err
	}

	palette, err := render.ParsePalette(config.DeadColor, config.AliveColor)
	if err != nil {
		return config, nil, palette, err
	}

	sim, err := initializeSimulator(config)
	return config, sim, palette, err
}

func animationOptions(config utils.Config, palette render.Palette) render.AnimationOptions {
	return render.AnimationOptions{
		Palette: palette,
		Scale:   config.Scale,
		Delay:   config.FrameDelay,
	}
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	config, sim, palette, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	displayGameInfo(out, config, sim)

	stats := runLoop(cmd.Context(), out, config, sim, render.NewTerminalRenderer(out, palette))
	displayFinalStats(out, stats)
	return nil
}

func viewBoard(cmd *cobra.Command, _ []string) error {
	config, sim, palette, err := setup(cmd)
	if err != nil {
		return err
	}

	sim.Run(config.Steps, false)

	pngPath, _ := cmd.Flags().GetString("png")
	if pngPath != "" {
		if err = render.SavePNG(pngPath, sim.View(), palette, config.Scale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote generation %d to %s\n", sim.Generation(), pngPath)
		return nil
	}

	render.NewTerminalRenderer(cmd.OutOrStdout(), palette).Display(sim.View())
	return nil
}

func animate(cmd *cobra.Command, _ []string) error {
	config, sim, palette, err := setup(cmd)
	if err != nil {
		return err
	}

	frames := append([]model.Board{sim.View()}, sim.Run(config.Steps, true)...)
	if err = render.SaveAnimation(cmd.Context(), config.Output, frames, animationOptions(config, palette)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(frames), config.Output)
	return nil
}

func live(cmd *cobra.Command, _ []string) error {
	config, sim, palette, err := setup(cmd)
	if err != nil {
		return err
	}
	return errors.Wrap(tui.Run(sim, palette, config.FrameRate), "[live] player failed")
}

func plotPopulation(cmd *cobra.Command, _ []string) error {
	config, sim, _, err := setup(cmd)
	if err != nil {
		return err
	}

	stats := utils.NewStats()
	stats.Update(sim.Generation(), sim.Population(), 0)

	err = sim.Stream(cmd.Context(), config.Steps, func(gen int, b model.Board) error {
		stats.Update(gen, b.Population(), 0)
		return nil
	})
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("population over %d generations (%dx%d)", sim.Generation(), sim.Size(), sim.Size())
	fmt.Fprintln(cmd.OutOrStdout(), render.PopulationPlot(stats.Populations, 80, 15, caption))
	return nil
}

func showWindow(cmd *cobra.Command, _ []string) error {
	config, sim, palette, err := setup(cmd)
	if err != nil {
		return err
	}

	frames := append([]model.Board{sim.View()}, sim.Run(config.Steps, true)...)
	return render.ShowWindow("lifegrid", frames, animationOptions(config, palette))
}
