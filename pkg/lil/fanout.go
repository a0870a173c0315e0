package lil

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent script to run against its own fresh VM.
type Job struct {
	Name string
	Code string
}

// Result is the outcome of running a single Job.
type Result struct {
	Name  string
	Value string
	Err   error
}

// RunAll runs every job on its own VM instance concurrently -- lil
// interpreters are not safe to share across goroutines, so fanning out
// means one *interp.Interp per goroutine rather than one shared
// instance. setup, if non-nil, is run against each fresh VM before its
// job's code (binding host commands, seeding variables) and participates
// in the same error group: a setup failure aborts that job but not the
// others.
func RunAll(ctx context.Context, jobs []Job, setup func(*VM) error) []Result {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			vm := New().WithContext(gctx)
			if setup != nil {
				if err := setup(vm); err != nil {
					results[i] = Result{Name: job.Name, Err: err}
					return nil
				}
			}
			val, err := vm.Eval(job.Code)
			results[i] = Result{Name: job.Name, Value: val, Err: err}
			return nil
		})
	}

	// g.Wait's error is always nil here (job errors are captured per
	// result rather than aborting the group), but Wait still blocks
	// until every goroutine finishes.
	_ = g.Wait()
	return results
}
