package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	configFile string
	preset     string
	size       int
	minValue   int
	maxValue   int
	speedMs    int
	seed       int64
	pattern    string
	view       string
	theme      string
	values     string
	frameRate  int
	debug      bool
	logFile    *os.File
	// trace / record / bench
	format  string
	outPath string
	recordPath string
	sizes   string
	runs    int
	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "step-by-step sorting and searching visualizer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&size, "size", config.DefaultSize, "array size")
	pf.IntVar(&minValue, "min", config.DefaultMinValue, "smallest generated value")
	pf.IntVar(&maxValue, "max", config.DefaultMaxValue, "largest generated value")
	pf.IntVar(&speedMs, "speed", config.DefaultSpeedMs, "delay between steps in milliseconds")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.StringVar(&pattern, "pattern", "random", "array pattern: "+strings.Join(dataset.Patterns(), ", "))
	pf.StringVar(&view, "view", "bars", "view: "+strings.Join(config.Views, ", "))
	pf.StringVar(&theme, "theme", "classic", "theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.BoolVar(&debug, "debug", false, "write a debug log to algoviz-debug.log")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive visualizer",
		RunE:  runInteractive,
	}

	sortCmd := &cobra.Command{
		Use:   "sort [algorithm]",
		Short: "animate a sort in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	sortCmd.Flags().StringVar(&values, "values", "", "comma separated array to sort instead of a generated one")
	sortCmd.Flags().IntVar(&frameRate, "fps", 0, "maximum redraws per second (0 draws every step)")

	searchCmd := &cobra.Command{
		Use:   "search [algorithm] [target]",
		Short: "animate a search in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringVar(&values, "values", "", "comma separated array to search instead of a generated one")
	searchCmd.Flags().IntVar(&frameRate, "fps", 0, "maximum redraws per second (0 draws every step)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm] [target]",
		Short: "print the move log of one run",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	traceCmd.Flags().StringVar(&values, "values", "", "comma separated input array")

	playCmd := &cobra.Command{
		Use:   "play [trace.json]",
		Short: "replay a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  playTrace,
	}
	playCmd.Flags().IntVar(&frameRate, "fps", 0, "maximum redraws per second (0 draws every step)")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "count moves across sizes and estimate growth",
		RunE:  runBench,
	}
	benchCmd.Flags().StringVar(&sizes, "sizes", "8,16,32,64,128", "comma separated array sizes")
	benchCmd.Flags().IntVar(&runs, "runs", 5, "seeded runs per size")
	benchCmd.Flags().StringVar(&svgPath, "svg", "", "also write the growth curves as svg")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm] [target]",
		Short: "record a replay as gif, or its final frame as svg",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&recordPath, "out", "o", "algoviz.gif", "output file (.gif or .svg)")
	recordCmd.Flags().StringVar(&values, "values", "", "comma separated input array")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "play a scripted sequence of runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().IntVar(&frameRate, "fps", 0, "maximum redraws per second (0 draws every step)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, sortCmd, searchCmd, listCmd, traceCmd, playCmd, benchCmd, recordCmd, scenarioCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile("algoviz-debug.log", "algoviz")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	logFile = f
	return nil
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("min") {
		cfg.MinValue = minValue
	}
	if flags.Changed("max") {
		cfg.MaxValue = maxValue
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("view") {
		cfg.View = view
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	viz.SetTheme(cfg.Theme)
	return cfg, nil
}

// parseValues reads a comma separated list of integers. An empty string
// yields nil.
func parseValues(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseTarget(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid target %q: enter a whole number", s)
	}
	return v, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg)
}

// newLiveApp builds an app drawing into a plain terminal renderer, with the
// array replaced by --values when given.
func newLiveApp(cmd *cobra.Command) (*app.App, *tui.LiveRenderer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	input, err := parseValues(values)
	if err != nil {
		return nil, nil, err
	}

	r := tui.NewLiveRenderer(os.Stdout, viz.ParseView(cfg.View), viz.GetTheme(cfg.Theme), frameRate)
	a, err := app.New(cfg, r.OnFrame)
	if err != nil {
		return nil, nil, err
	}
	if input != nil {
		a.SetArray(input)
	}
	return a, r, nil
}

// await blocks until the session ends. Ctrl-C stops the replay and the stop
// frame is drawn before returning.
func await(a *app.App, r *tui.LiveRenderer, sess *replay.Session) replay.Outcome {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r.Start()
	defer r.Stop()

	select {
	case <-sess.Done():
	case <-ctx.Done():
		a.Stop()
		<-sess.Done()
	}
	log.Printf("session %d ended: %s", sess.ID(), sess.Outcome())
	return sess.Outcome()
}

func runSort(cmd *cobra.Command, args []string) error {
	a, r, err := newLiveApp(cmd)
	if err != nil {
		return err
	}
	sess, err := a.StartSort(args[0])
	if err != nil {
		return err
	}
	outcome := await(a, r, sess)
	fmt.Printf("\n%s: %v\n", outcome, a.Array())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	target, err := parseTarget(args[1])
	if err != nil {
		return err
	}
	a, r, err := newLiveApp(cmd)
	if err != nil {
		return err
	}
	sess, err := a.StartSearch(args[0], target)
	if err != nil {
		return err
	}
	await(a, r, sess)
	fmt.Printf("\n%s\n", r.Last().Detail)
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tLABEL\tCOMPLEXITY")
	for _, info := range experiment.NewRegistry().All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, info.Label, info.Complexity)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tRANGE\tSPEED\tPATTERN\tVIEW\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d..%d\t%dms\t%s\t%s\t%s\n",
			name, p.Size, p.MinValue, p.MaxValue, p.SpeedMs, p.Pattern, p.View, p.Theme)
	}
	return w.Flush()
}

