// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, plus a bounded fan-out built on top of them.
// Every helper respects cancellation and deadlines via context.Context.
package chflow

import (
	"context"
	"sync"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// ForEach calls fn for every item using at most workers goroutines and
// blocks until all started calls return. Each call receives the item index,
// so callers can write results into a pre-sized slice without locking.
//
// Once ctx is done no further items are started; the returned count tells how
// many items were handed to fn. workers below 1 is treated as 1.
func ForEach[T any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, i int, item T)) int {
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, len(items))

	type job struct {
		i    int
		item T
	}

	jobs := make(chan job)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				j, ok := Receive(ctx, jobs)
				if !ok {
					return
				}
				fn(ctx, j.i, j.item)
			}
		}()
	}

	started := 0
	for i, item := range items {
		if ctx.Err() != nil || !Send(ctx, jobs, job{i: i, item: item}) {
			break
		}
		started++
	}
	close(jobs)

	wg.Wait()
	return started
}
