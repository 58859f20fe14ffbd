package logbook

import (
	"runtime"
	"sync"
)

// workerPool distributes jobs across a fixed number of goroutines and
// collects their results.
type workerPool[Job any, Result any] struct {
	numWorkers int
	jobs       chan Job
	results    chan Result
	wg         sync.WaitGroup
}

// newWorkerPool sizes the pool to numWorkers, defaulting to the CPU count
// and never exceeding numJobs. Both channels are buffered for numJobs so
// Submit does not block once the pool is sized for the whole batch.
func newWorkerPool[Job any, Result any](numWorkers, numJobs int) *workerPool[Job, Result] {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numJobs > 0 {
		numWorkers = min(numWorkers, numJobs)
	}

	return &workerPool[Job, Result]{
		numWorkers: numWorkers,
		jobs:       make(chan Job, numJobs),
		results:    make(chan Result, numJobs),
	}
}

func (p *workerPool[Job, Result]) start(workerFn func(Job) Result) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.results <- workerFn(job)
			}
		}()
	}
}

func (p *workerPool[Job, Result]) submit(job Job) {
	p.jobs <- job
}

// close stops accepting jobs; the results channel is closed once every
// worker has drained the queue.
func (p *workerPool[Job, Result]) close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *workerPool[Job, Result]) resultsChan() <-chan Result {
	return p.results
}
