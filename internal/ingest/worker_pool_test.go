package ingest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	results := pool.Run(context.Background())

	var ran atomic.Int32
	for i := 0; i < 20; i++ {
		pool.Submit(func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	pool.Close()

	count := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		count++
	}
	if count != 20 || ran.Load() != 20 {
		t.Fatalf("results=%d ran=%d", count, ran.Load())
	}
}

func TestWorkerPool_CollectsErrors(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	results := pool.Run(context.Background())

	boom := errors.New("boom")
	pool.Submit(func(ctx context.Context) error { return boom })
	pool.Submit(func(ctx context.Context) error { return nil })
	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			if !errors.Is(res.Err, boom) {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("failed = %d", failed)
	}
}

func TestWorkerPool_ContextCancelStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewWorkerPool(2, 0)
	results := pool.Run(ctx)

	started := make(chan struct{})
	pool.Submit(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	<-started
	cancel()

	done := make(chan struct{})
	go func() {
		for range results {
		}
		close(done)
	}()

	// Workers must terminate without Close once the context dies.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not stop after cancel")
	}
}
