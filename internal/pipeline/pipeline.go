// Package pipeline fans batch draft analysis out over a fixed worker pool.
// Safe because the engine passes are pure: no coordination beyond the
// channels is needed.
package pipeline

import (
	"runtime"
	"sync"
)

// Job is one draft to analyze, named for reporting.
type Job struct {
	Name string
	Text string
}

type Analyzer func(job Job) error

func AnalyzeDrafts(jobs []Job, workers int, fn Analyzer) []error {
	if len(jobs) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	queue := make(chan Job)
	errs := make(chan error, len(jobs))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if err := fn(job); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
