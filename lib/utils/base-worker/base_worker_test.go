package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Run("runs periodically until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var calls int32
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		done := make(chan struct{})
		go func() {
			worker.Run(ctx, func(ctx context.Context) {
				atomic.AddInt32(&calls, 1)
			})
			close(done)
		}()
		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, time.Millisecond)
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker not stopped")
		}
	})
	t.Run("panic does not stop the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var calls int32
		worker := NewInstance("test", time.Millisecond, time.Millisecond)
		go worker.Run(ctx, func(ctx context.Context) {
			if atomic.AddInt32(&calls, 1) == 1 {
				panic("boom")
			}
		})
		assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 2 }, time.Second, time.Millisecond)
	})
}
