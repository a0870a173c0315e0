package lil

import (
	"context"
	"testing"
)

func TestRunAllIndependentJobs(t *testing.T) {
	jobs := []Job{
		{Name: "one", Code: "expr 1 + 1"},
		{Name: "two", Code: "expr 2 * 10"},
		{Name: "three", Code: "expr 100 / 4"},
	}
	results := RunAll(context.Background(), jobs, nil)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := map[string]string{"one": "2", "two": "20", "three": "25"}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("job %s errored: %v", r.Name, r.Err)
			continue
		}
		if r.Value != want[r.Name] {
			t.Errorf("job %s = %q, want %q", r.Name, r.Value, want[r.Name])
		}
	}
}

func TestRunAllSetupFailureIsolatedPerJob(t *testing.T) {
	jobs := []Job{
		{Name: "good", Code: "set x"},
		{Name: "bad", Code: "set x"},
	}
	results := RunAll(context.Background(), jobs, func(vm *VM) error {
		if _, err := vm.Eval(`this-command-does-not-exist`); err != nil {
			return err
		}
		return nil
	})
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("job %s: expected a setup error since this-command-does-not-exist is unregistered", r.Name)
		}
	}
}

func TestRunAllHonorsJobError(t *testing.T) {
	jobs := []Job{
		{Name: "fails", Code: `error boom`},
	}
	results := RunAll(context.Background(), jobs, nil)
	if results[0].Err == nil {
		t.Fatalf("expected job error, got none")
	}
}
