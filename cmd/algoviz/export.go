package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/replay"
	"github.com/san-kum/algoviz/internal/tui"
	"github.com/san-kum/algoviz/internal/viz"
)

// inputArray is --values when given, otherwise an array generated from cfg.
func inputArray(cfg *config.Config) ([]int, error) {
	input, err := parseValues(values)
	if err != nil || input != nil {
		return input, err
	}
	return cfg.Array()
}

// searchTarget parses the optional target argument of a search. Sorts take
// no target.
func searchTarget(info experiment.Info, args []string) (int, error) {
	if info.Kind != experiment.KindSearch {
		if len(args) > 1 {
			return 0, fmt.Errorf("%s takes no target", info.Name)
		}
		return 0, nil
	}
	if len(args) < 2 {
		return 0, fmt.Errorf("%s needs a target", info.Name)
	}
	return parseTarget(args[1])
}

func buildTrace(reg *experiment.Registry, info experiment.Info, input []int, target int) (*export.Trace, error) {
	if info.Kind == experiment.KindSearch {
		res, err := reg.RunSearch(info.Name, input, target)
		if err != nil {
			return nil, err
		}
		return export.NewSearchTrace(res), nil
	}
	res, err := reg.RunSort(info.Name, input)
	if err != nil {
		return nil, err
	}
	return export.NewSortTrace(res), nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	info, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}
	target, err := searchTarget(info, args)
	if err != nil {
		return err
	}
	input, err := inputArray(cfg)
	if err != nil {
		return err
	}

	tr, err := buildTrace(reg, info, input, target)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		err = export.WriteJSON(w, tr)
	case "csv":
		err = export.WriteCSV(w, tr)
	default:
		return fmt.Errorf("unknown format: %s (available: json, csv)", format)
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("wrote trace %s (%d moves) to %s\n", tr.ID, len(tr.Moves), outPath)
	}
	return nil
}

func playTrace(cmd *cobra.Command, args []string) error {
	tr, err := export.LoadTrace(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	req := replay.Request{
		Label:   tr.Label,
		Detail:  tr.Complexity,
		Mode:    replay.ModeSort,
		Array:   tr.Input,
		Log:     tr.Moves,
		Elapsed: time.Duration(tr.ElapsedMs * float64(time.Millisecond)),
	}
	if tr.Kind == "search" {
		req.Mode = replay.ModeSearch
		req.Target = *tr.Target
	}

	r := tui.NewLiveRenderer(os.Stdout, viz.ParseView(cfg.View), viz.GetTheme(cfg.Theme), frameRate)
	a, err := app.New(cfg, r.OnFrame)
	if err != nil {
		return err
	}
	outcome := await(a, r, a.Play(req))
	fmt.Printf("\n%s: %s\n", tr.Label, outcome)
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	ext := strings.ToLower(filepath.Ext(recordPath))
	if ext != ".gif" && ext != ".svg" {
		return fmt.Errorf("unsupported output %s (use .gif or .svg)", recordPath)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	info, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}
	target, err := searchTarget(info, args)
	if err != nil {
		return err
	}
	input, err := inputArray(cfg)
	if err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	rec := export.NewGIFRecorder(640, 320, cfg.Speed(), th)
	var last replay.Frame
	render := func(f replay.Frame) {
		last = f
		rec.Record(f)
	}

	// Ticks run back to back; the gif carries the frame delays.
	a, err := app.New(cfg, render, replay.WithDelay(0))
	if err != nil {
		return err
	}
	a.SetArray(input)
	rec.Record(viz.IdleFrame(a.Array()))

	sess, err := a.Start(info.Name, target)
	if err != nil {
		return err
	}
	<-sess.Done()

	if ext == ".svg" {
		svg := export.FrameToSVG(last, th, 640, 320)
		if viz.ParseView(cfg.View) == viz.ViewDots {
			canvas := viz.NewCanvas(80, 20)
			canvas.Plot(last.Array, cfg.MaxValue)
			svg = export.CanvasToSVG(canvas, 4, th)
		}
		if err := os.WriteFile(recordPath, []byte(svg), 0644); err != nil {
			return err
		}
	} else if err := rec.Save(recordPath); err != nil {
		return err
	}

	fmt.Printf("%s: %d frames, %s -> %s\n", info.Label, rec.Len(), sess.Outcome(), recordPath)
	return nil
}
