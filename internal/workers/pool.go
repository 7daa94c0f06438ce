// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by [Pool.Submit] after [Pool.Close].
var ErrPoolClosed = errors.New("worker pool is closed")

type job struct {
	fn   func()
	done chan struct{}
}

// Pool executes jobs on a fixed number of goroutines.
//
// A job that has been accepted always runs to completion. Callers can stop
// waiting for it through their context, but the job itself is never
// interrupted.
type Pool struct {
	size int
	jobs chan job

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewPool starts a pool of size goroutines. A size below 1 is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		size:   size,
		jobs:   make(chan job),
		closed: make(chan struct{}),
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.loop()
	}

	return p
}

// Size returns the number of goroutines of the pool.
func (p *Pool) Size() int {
	return p.size
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.closed:
			return
		case j := <-p.jobs:
			j.fn()
			close(j.done)
		}
	}
}

// Submit hands fn to a free pool goroutine and waits for it to finish.
//
// If ctx is done before a goroutine becomes free, fn is never run. If ctx is
// done while fn is running, Submit returns ctx.Err() immediately and fn keeps
// running in the background.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	select {
	case <-p.closed:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case p.jobs <- j:
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs and waits for running jobs to finish.
// It is safe to call Close more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.closed)
	})
	p.wg.Wait()
}

// Do runs fn on p and returns its results. See [Pool.Submit] for the
// cancellation rules; when ctx wins, the zero value and ctx.Err() are
// returned.
func Do[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	var (
		res T
		err error
	)

	if submitErr := p.Submit(ctx, func() { res, err = fn() }); submitErr != nil {
		var zero T
		return zero, submitErr
	}

	return res, err
}
