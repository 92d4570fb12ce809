package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/moves"
)

var ErrInvalidTrace = errors.New("export: invalid trace")

// Trace is a self-contained record of one algorithm run: the input, the
// move log and enough metadata to replay it later.
type Trace struct {
	ID         string    `json:"id"`
	Algorithm  string    `json:"algorithm"`
	Label      string    `json:"label"`
	Kind       string    `json:"kind"`
	Complexity string    `json:"complexity,omitempty"`
	Input      []int     `json:"input"`
	Target     *int      `json:"target,omitempty"`
	ElapsedMs  float64   `json:"elapsed_ms"`
	Steps      int       `json:"steps"`
	Moves      moves.Log `json:"moves"`
	Output     []int     `json:"output"`
}

func NewSortTrace(res *experiment.SortResult) *Trace {
	return &Trace{
		ID:         uuid.NewString(),
		Algorithm:  res.Info.Name,
		Label:      res.Info.Label,
		Kind:       res.Info.Kind.String(),
		Complexity: res.Info.Complexity,
		Input:      res.Input,
		ElapsedMs:  float64(res.Elapsed.Microseconds()) / 1000,
		Steps:      len(res.Log),
		Moves:      res.Log,
		Output:     res.Output,
	}
}

func NewSearchTrace(res *experiment.SearchResult) *Trace {
	target := res.Target
	return &Trace{
		ID:         uuid.NewString(),
		Algorithm:  res.Info.Name,
		Label:      res.Info.Label,
		Kind:       res.Info.Kind.String(),
		Complexity: res.Info.Complexity,
		Input:      res.Sorted,
		Target:     &target,
		ElapsedMs:  float64(res.Elapsed.Microseconds()) / 1000,
		Steps:      len(res.Log),
		Moves:      res.Log,
		Output:     res.Sorted,
	}
}

// Validate replays the moves over the input and checks the recorded output.
func (t *Trace) Validate() error {
	if t.Kind != "sort" && t.Kind != "search" {
		return fmt.Errorf("%w: kind %q", ErrInvalidTrace, t.Kind)
	}
	if t.Kind == "search" && t.Target == nil {
		return fmt.Errorf("%w: search without target", ErrInvalidTrace)
	}
	got, err := t.Moves.Replay(t.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTrace, err)
	}
	if t.Output == nil {
		return nil
	}
	if len(got) != len(t.Output) {
		return fmt.Errorf("%w: output length %d, replay gives %d", ErrInvalidTrace, len(t.Output), len(got))
	}
	for i := range got {
		if got[i] != t.Output[i] {
			return fmt.Errorf("%w: output differs from replay at index %d", ErrInvalidTrace, i)
		}
	}
	return nil
}

func WriteJSON(w io.Writer, t *Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func SaveJSON(path string, t *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, t)
}

func ReadJSON(r io.Reader) (*Trace, error) {
	var t Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTrace, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.Steps = len(t.Moves)
	return &t, nil
}

// LoadTrace reads and validates a JSON trace.
func LoadTrace(path string) (*Trace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadJSON(file)
}

// WriteCSV writes one row per move.
func WriteCSV(w io.Writer, t *Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "kind", "i", "j", "value", "matched"}); err != nil {
		return err
	}
	for step, m := range t.Moves {
		row := []string{
			strconv.Itoa(step),
			m.Kind.String(),
			strconv.Itoa(m.I),
			"",
			"",
			"",
		}
		switch m.Kind {
		case moves.KindSwap:
			row[3] = strconv.Itoa(m.J)
		case moves.KindOverwrite:
			row[4] = strconv.Itoa(m.Value)
		case moves.KindProbe:
			row[5] = strconv.FormatBool(m.Matched)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
