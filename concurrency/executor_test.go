package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cwist/cwisterr"
)

func TestExecutorRunsSubmittedTasks(t *testing.T) {
	e := NewExecutor(4)
	defer e.Close()

	var n int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		if err := e.Submit(func() {
			atomic.AddInt64(&n, 1)
			wg.Done()
		}); err != nil {
			t.Fatal(err)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tasks")
	}

	if atomic.LoadInt64(&n) != 100 {
		t.Fatalf("n=%d", n)
	}
}

func TestExecutorSubmitAfterCloseFails(t *testing.T) {
	e := NewExecutor(1)
	e.Close()

	if err := e.Submit(func() {}); err != cwisterr.ErrExecutorClosed {
		t.Fatalf("err=%v", err)
	}
}
