package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("runs until the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var calls int32
		done := make(chan struct{})
		go func() {
			NewInstance("test", time.Millisecond, time.Millisecond).Run(ctx, func(ctx context.Context) {
				if atomic.AddInt32(&calls, 1) == 3 {
					cancel()
				}
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
	})
	t.Run("survives a panicking job", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var calls int32
		done := make(chan struct{})
		go func() {
			NewInstance("panic", time.Millisecond, time.Millisecond).Run(ctx, func(ctx context.Context) {
				if atomic.AddInt32(&calls, 1) == 1 {
					panic("boom")
				}
				cancel()
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})
}
