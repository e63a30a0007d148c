// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// labor hosts units of work on a pool of in-process workers.
//
// Jobs are pushed onto a Queue; each Worker loops acquiring and
// running jobs until the queue is drained or its context is
// cancelled. RunWorkers hosts a fixed number of workers concurrently
// and reports the first job failure.
package labor

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	cargolog "github.com/bsilverthorn/cargo/log"
)

var log = cargolog.GetLogger("cargo/labor")

// ErrNoWork reports that a queue has no jobs left to acquire.
var ErrNoWork = errors.New("labor: no work available")

// A Job is one unit of work.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type record struct {
	id  uuid.UUID
	job Job
}

// A Queue is a concurrency-safe in-memory job queue.
type Queue struct {
	mu      sync.Mutex
	pending []*record
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return new(Queue)
}

// Push appends jobs to the queue, assigning each an id.
func (q *Queue) Push(jobs ...Job) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, job := range jobs {
		q.pending = append(q.pending, &record{id: uuid.New(), job: job})
	}
}

// Len returns the number of jobs not yet acquired.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

// acquire removes and returns the next unit of work, or ErrNoWork.
func (q *Queue) acquire() (*record, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil, ErrNoWork
	}
	r := q.pending[0]
	q.pending = q.pending[1:]
	return r, nil
}

// A Worker acquires and runs jobs from a queue.
type Worker struct {
	id    uuid.UUID
	queue *Queue
}

// NewWorker returns a worker drawing from q.
func NewWorker(q *Queue) *Worker {
	return &Worker{id: uuid.New(), queue: q}
}

// ID returns the worker's identity.
func (w *Worker) ID() uuid.UUID {
	return w.id
}

// Labor runs jobs until the queue is drained, a job fails, or ctx is
// cancelled. A drained queue is a normal termination, not an error.
func (w *Worker) Labor(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := w.queue.acquire()
		if errors.Is(err, ErrNoWork) {
			log.Debugf("worker %s: no work available; terminating", w.id)
			return nil
		}

		log.Debugf("worker %s: working on job %s", w.id, r.id)

		if err := r.job.Run(ctx); err != nil {
			return errors.Wrapf(err, "job %s", r.id)
		}

		log.Debugf("worker %s: finished job %s", w.id, r.id)
	}
}

// RunWorkers hosts n workers on q concurrently, returning after all
// have terminated. The first error any worker reports is returned;
// remaining workers still run to completion.
func RunWorkers(ctx context.Context, q *Queue, n int) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var first error

	for i := 0; i < n; i++ {
		w := NewWorker(q)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Labor(ctx); err != nil {
				mu.Lock()
				if first == nil {
					first = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return first
}
