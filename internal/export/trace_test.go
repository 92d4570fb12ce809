package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/experiment"
	"github.com/san-kum/algoviz/internal/moves"
)

func sortTrace(t *testing.T, name string, input []int) *Trace {
	t.Helper()
	res, err := experiment.NewRegistry().RunSort(name, input)
	if err != nil {
		t.Fatalf("RunSort(%s): %v", name, err)
	}
	return NewSortTrace(res)
}

func TestSortTraceRoundTrip(t *testing.T) {
	tr := sortTrace(t, "merge", []int{5, 1, 4, 2, 3})
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	path := filepath.Join(t.TempDir(), "trace.json")
	if err := SaveJSON(path, tr); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	got, err := LoadTrace(path)
	if err != nil {
		t.Fatalf("LoadTrace: %v", err)
	}
	if _, err := uuid.Parse(got.ID); err != nil {
		t.Errorf("trace id %q: %v", got.ID, err)
	}
	if diff := cmp.Diff(tr, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got.Output); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchTraceKeepsTarget(t *testing.T) {
	res, err := experiment.NewRegistry().RunSearch("binary", []int{9, 3, 7, 1}, 7)
	if err != nil {
		t.Fatal(err)
	}
	tr := NewSearchTrace(res)
	if tr.Target == nil || *tr.Target != 7 {
		t.Fatalf("target = %v, want 7", tr.Target)
	}
	if diff := cmp.Diff([]int{1, 3, 7, 9}, tr.Input); diff != "" {
		t.Errorf("search input is not the sorted copy (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, tr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kind": "probe"`) {
		t.Errorf("moves should encode kinds by name:\n%s", buf.String())
	}
	if _, err := ReadJSON(&buf); err != nil {
		t.Errorf("ReadJSON: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	target := 3
	tests := []struct {
		name  string
		trace Trace
	}{
		{"unknown kind", Trace{Kind: "shuffle", Input: []int{1}}},
		{"search without target", Trace{Kind: "search", Input: []int{1}}},
		{"move out of range", Trace{Kind: "sort", Input: []int{1, 2}, Moves: moves.Log{moves.Swap(0, 5)}}},
		{"output mismatch", Trace{Kind: "sort", Input: []int{2, 1}, Moves: moves.Log{moves.Swap(0, 1)}, Output: []int{2, 1}}},
		{"output length", Trace{Kind: "search", Target: &target, Input: []int{1, 2}, Output: []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trace.Validate()
			if !errors.Is(err, ErrInvalidTrace) {
				t.Errorf("Validate() = %v, want ErrInvalidTrace", err)
			}
		})
	}
}

func TestValidateWrapsMoveError(t *testing.T) {
	tr := Trace{Kind: "sort", Input: []int{1, 2}, Moves: moves.Log{moves.Swap(0, 1), moves.Overwrite(9, 1)}}
	err := tr.Validate()

	var me *moves.MoveError
	if !errors.As(err, &me) {
		t.Fatalf("Validate() = %v, want a MoveError", err)
	}
	if me.Step != 1 {
		t.Errorf("step = %d, want 1", me.Step)
	}
	if !errors.Is(err, moves.ErrIndexOutOfRange) {
		t.Errorf("Validate() = %v, want ErrIndexOutOfRange", err)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); !errors.Is(err, ErrInvalidTrace) {
		t.Errorf("ReadJSON() = %v, want ErrInvalidTrace", err)
	}
	if _, err := LoadTrace(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadTrace() = %v, want ErrNotExist", err)
	}
}

func TestWriteCSV(t *testing.T) {
	tr := &Trace{
		Kind:  "sort",
		Input: []int{3, 1, 2},
		Moves: moves.Log{moves.Swap(0, 1), moves.Overwrite(2, 7), moves.Probe(1, true)},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tr); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"step", "kind", "i", "j", "value", "matched"},
		{"0", "swap", "0", "1", "", ""},
		{"1", "overwrite", "2", "", "7", ""},
		{"2", "probe", "1", "", "", "true"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}
