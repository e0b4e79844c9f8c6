package lock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`runs code and returns its error`, func(t *testing.T) {
		success, err := WithDelay(context.Background(), "t1", time.Second, func() error {
			return errors.New("fail")
		})
		require.True(t, success)
		require.EqualError(t, err, "fail")

		success, err = WithDelay(context.Background(), "t1", time.Second, func() error { return nil })
		require.True(t, success)
		require.NoError(t, err)
	})

	t.Run(`timeout while key is held`, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "t2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		var called int32
		success, err := WithDelay(context.Background(), "t2", 100*time.Millisecond, func() error {
			atomic.AddInt32(&called, 1)
			return nil
		})
		close(release)
		require.False(t, success)
		require.NoError(t, err)
		require.Zero(t, atomic.LoadInt32(&called))
	})

	t.Run(`waits for release`, func(t *testing.T) {
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "t3", time.Second, func() error {
				close(started)
				time.Sleep(100 * time.Millisecond)
				return nil
			})
		}()
		<-started
		success, err := WithDelay(context.Background(), "t3", 2*time.Second, func() error { return nil })
		require.True(t, success)
		require.NoError(t, err)
	})
}
