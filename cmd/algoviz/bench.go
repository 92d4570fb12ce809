package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/analysis"
	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/automation"
	"github.com/san-kum/algoviz/internal/dataset"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sizeList, err := parseValues(sizes)
	if err != nil {
		return err
	}
	if len(sizeList) == 0 {
		return fmt.Errorf("no sizes given")
	}

	reg := experiment.NewRegistry()
	algorithms := args
	if len(algorithms) == 0 {
		algorithms = append(reg.ListSorters(), reg.ListSearchers()...)
	}

	p, err := dataset.ParsePattern(cfg.Pattern)
	if err != nil {
		return err
	}
	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("benchmarking %d algorithms, %d runs per size, %s arrays\n\n", len(algorithms), runs, p)
	trials, err := experiment.NewEnsemble(reg, runs, seedStart, p).Run(ctx, algorithms, sizeList)
	if err != nil {
		return err
	}
	summaries := experiment.Summarize(trials)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tRUNS\tMEAN MOVES\tMIN\tMAX\tTIME")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%d\t%d\t%v\n",
			s.Algorithm, s.Size, s.Runs, s.MeanMoves, s.MinMoves, s.MaxMoves, s.MeanElapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	series := make(map[string][]float64)
	points := make(map[string][]analysis.Point)
	for _, s := range summaries {
		series[s.Algorithm] = append(series[s.Algorithm], s.MeanMoves)
		points[s.Algorithm] = append(points[s.Algorithm], analysis.Point{N: s.Size, Moves: s.MeanMoves})
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tEXPONENT\tFIT\tEXPECTED")
	for _, name := range algorithms {
		info, _ := reg.Lookup(name)
		exp, err := analysis.GrowthExponent(points[name])
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t%s\n", name, info.Complexity)
			continue
		}
		class, _ := analysis.Classify(points[name])
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", name, exp, class, info.Complexity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(sizeList) > 1 {
		data := make([][]float64, 0, len(algorithms))
		for _, name := range algorithms {
			data = append(data, series[name])
		}
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(data,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("mean moves by size %v", sizeList)),
		))
		fmt.Printf("series: %v\n", algorithms)
	}

	if svgPath != "" {
		svg := export.SeriesToSVG(series, 800, 400, viz.GetTheme(cfg.Theme))
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	cfg := sc.Config
	viz.SetTheme(cfg.Theme)
	r := tui.NewLiveRenderer(os.Stdout, viz.ParseView(cfg.View), viz.GetTheme(cfg.Theme), frameRate)
	a, err := app.New(&cfg, r.OnFrame)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r.Start()
	results, err := automation.RunScenario(ctx, sc, a, os.Stderr)
	r.Stop()

	fmt.Printf("\nscenario %s\n", sc.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tTARGET\tOUTCOME\tTIME")
	for _, res := range results {
		target := "-"
		if res.Target != nil {
			target = fmt.Sprint(*res.Target)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", res.Step, res.Algorithm, target, res.Outcome, res.Elapsed.Round(time.Millisecond))
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}
