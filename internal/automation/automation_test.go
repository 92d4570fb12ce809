package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/replay"
)

// instantClock fires every tick as soon as possible.
type instantClock struct{}

func (instantClock) AfterFunc(d time.Duration, f func()) replay.Timer {
	return time.AfterFunc(0, f)
}

// heldClock never fires.
type heldClock struct{}

type heldTimer struct{}

func (heldTimer) Stop() bool { return true }

func (heldClock) AfterFunc(d time.Duration, f func()) replay.Timer { return heldTimer{} }

const scenarioYAML = `
name: warmup
description: sort then look something up
config:
  size: 6
  seed: 3
steps:
  - algorithm: bubble
    values: [5, 3, 8, 1]
  - algorithm: binary
    target: 8
  - algorithm: linear
    target: 42
  - algorithm: merge
    size: 9
    pattern: reversed
    speed_ms: 20
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "warmup" || len(sc.Steps) != 4 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.Config.Size != 6 || sc.Config.Seed != 3 {
		t.Errorf("config overlay lost: %+v", sc.Config)
	}
	if sc.Config.MaxValue != config.DefaultMaxValue {
		t.Errorf("unset fields should keep defaults, got max %d", sc.Config.MaxValue)
	}
	if sc.Steps[1].Target == nil || *sc.Steps[1].Target != 8 {
		t.Errorf("target not parsed: %+v", sc.Steps[1])
	}
}

func TestParseScenarioRejects(t *testing.T) {
	reg := experiment.NewRegistry()
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "name: nothing\n", ErrEmptyScenario},
		{"bad config", "config: {size: -1}\nsteps: [{algorithm: bubble}]\n", config.ErrInvalidSize},
		{"bad speed", "steps: [{algorithm: bubble, speed_ms: -5}]\n", config.ErrInvalidSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(tt.yaml)); !errors.Is(err, tt.want) {
				t.Errorf("ParseScenario() = %v, want %v", err, tt.want)
			}
		})
	}

	sc := &Scenario{Config: *config.DefaultConfig(), Steps: []Step{{Algorithm: "bogo"}}}
	err := sc.Validate(reg)
	if err == nil || !strings.Contains(err.Error(), "unknown algorithm: bogo") {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err != nil {
		t.Errorf("LoadScenario: %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	a, err := app.New(&sc.Config, nil, replay.WithClock(instantClock{}))
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	results, err := RunScenario(ctx, sc, a, &out)
	if err != nil {
		t.Fatal(err)
	}

	outcomes := make([]replay.Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.Outcome
	}
	want := []replay.Outcome{replay.OutcomeSorted, replay.OutcomeFound, replay.OutcomeNotFound, replay.OutcomeSorted}
	if diff := cmp.Diff(want, outcomes); diff != "" {
		t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3, 5, 8}, results[0].Array); diff != "" {
		t.Errorf("first step array (-want +got):\n%s", diff)
	}
	if got := len(results[3].Array); got != 9 {
		t.Errorf("last step should resize to 9, got %d", got)
	}
	if a.Speed() != 20*time.Millisecond {
		t.Errorf("speed = %v, want 20ms", a.Speed())
	}
	if !strings.Contains(out.String(), "Running step 4/4: merge") {
		t.Errorf("progress output:\n%s", out.String())
	}

	tally := Tally(results)
	if tally[replay.OutcomeSorted] != 2 || tally[replay.OutcomeFound] != 1 {
		t.Errorf("tally = %v", tally)
	}
}

func TestRunScenarioCancel(t *testing.T) {
	sc := &Scenario{Config: *config.DefaultConfig(), Steps: []Step{{Algorithm: "selection"}}}
	a, err := app.New(&sc.Config, nil, replay.WithClock(heldClock{}))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := RunScenario(ctx, sc, a, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunScenario() = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("cancelled step should not report a result, got %v", results)
	}
	if a.Running() {
		t.Error("replay still running after cancel")
	}
}
