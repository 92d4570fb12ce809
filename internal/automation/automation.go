// Package automation plays scripted sequences of sorts and searches through
// an app, one step after another.
package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/algoviz/internal/app"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/replay"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted visualization sequence. Config seeds the app
// the scenario runs in; anything left out keeps its default.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Config      config.Config `yaml:"config"`
	Steps       []Step        `yaml:"steps"`
}

// Step is a single run. Values, Size and Pattern change the array before the
// run; a search without a target picks one from the array.
type Step struct {
	Algorithm string `yaml:"algorithm"`
	Target    *int   `yaml:"target"`
	Values    []int  `yaml:"values"`
	Size      int    `yaml:"size"`
	Pattern   string `yaml:"pattern"`
	SpeedMs   int    `yaml:"speed_ms"`
	Shuffle   bool   `yaml:"shuffle"`
}

// Result is what one step ended with.
type Result struct {
	Step      int
	Algorithm string
	Target    *int
	Outcome   replay.Outcome
	Array     []int
	Elapsed   time.Duration
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	scenario := Scenario{Config: *config.DefaultConfig()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(experiment.NewRegistry()); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate checks the config and that every step names a known algorithm.
func (s *Scenario) Validate(reg *experiment.Registry) error {
	if len(s.Steps) == 0 {
		return ErrEmptyScenario
	}
	if err := s.Config.Validate(); err != nil {
		return err
	}
	for i, step := range s.Steps {
		if _, err := reg.Lookup(step.Algorithm); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Size < 0 || step.Size > config.MaxSize {
			return fmt.Errorf("step %d: %w (got %d)", i+1, config.ErrInvalidSize, step.Size)
		}
		if step.SpeedMs < 0 {
			return fmt.Errorf("step %d: %w (got %dms)", i+1, config.ErrInvalidSpeed, step.SpeedMs)
		}
	}
	return nil
}

// RunScenario executes all steps in order, waiting for each replay to end
// before starting the next. Cancelling ctx stops the current replay.
func RunScenario(ctx context.Context, scenario *Scenario, a *app.App, out io.Writer) ([]Result, error) {
	if out == nil {
		out = io.Discard
	}
	results := make([]Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Algorithm)

		if err := prepare(a, step); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		info, err := a.Registry().Lookup(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		var target *int
		if info.Kind == experiment.KindSearch {
			t := a.RandomTarget()
			if step.Target != nil {
				t = *step.Target
			}
			target = &t
		}

		started := time.Now()
		var sess *replay.Session
		if target != nil {
			sess, err = a.StartSearch(step.Algorithm, *target)
		} else {
			sess, err = a.StartSort(step.Algorithm)
		}
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		select {
		case <-sess.Done():
		case <-ctx.Done():
			a.Stop()
			return results, ctx.Err()
		}

		results = append(results, Result{
			Step:      i + 1,
			Algorithm: step.Algorithm,
			Target:    target,
			Outcome:   sess.Outcome(),
			Array:     a.Array(),
			Elapsed:   time.Since(started),
		})
	}

	return results, nil
}

func prepare(a *app.App, step Step) error {
	if step.SpeedMs > 0 {
		if err := a.SetSpeed(time.Duration(step.SpeedMs) * time.Millisecond); err != nil {
			return err
		}
	}
	if step.Pattern != "" {
		if err := a.SetPattern(step.Pattern); err != nil {
			return err
		}
	}
	if step.Size > 0 {
		if err := a.SetSize(step.Size); err != nil {
			return err
		}
	}
	if step.Shuffle {
		if err := a.Regenerate(); err != nil {
			return err
		}
	}
	if step.Values != nil {
		a.SetArray(step.Values)
	}
	return nil
}

// Tally counts results per outcome.
func Tally(results []Result) map[replay.Outcome]int {
	counts := make(map[replay.Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
