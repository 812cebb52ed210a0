package guard_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/fwtarget/internal/engine/guard"
)

func TestDo_ReturnsBodyResult(t *testing.T) {
	g := guard.New()

	got, err := guard.Do(context.Background(), g, time.Second, func(context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestDo_TimeoutThenRecovers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := guard.New()
		release := make(chan struct{})
		holding := make(chan struct{})

		go func() {
			_, _ = guard.Do(context.Background(), g, time.Second, func(context.Context) (struct{}, error) {
				close(holding)
				<-release
				return struct{}{}, nil
			})
		}()
		<-holding

		ran := false
		_, err := guard.Do(context.Background(), g, 100*time.Millisecond, func(context.Context) (struct{}, error) {
			ran = true
			return struct{}{}, nil
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrLockTimeout))
		assert.False(t, ran, "body must not run after a timeout")

		close(release)
		synctest.Wait()

		_, err = guard.Do(context.Background(), g, 100*time.Millisecond, func(context.Context) (struct{}, error) {
			ran = true
			return struct{}{}, nil
		})
		require.NoError(t, err)
		assert.True(t, ran)
	})
}

func TestDo_ReleasesOnError(t *testing.T) {
	g := guard.New()
	boom := errors.New("boom")

	_, err := guard.Do(context.Background(), g, time.Second, func(context.Context) (int, error) {
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	_, err = guard.Do(context.Background(), g, time.Second, func(context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
}

func TestDo_ReleasesOnPanic(t *testing.T) {
	g := guard.New()

	assert.Panics(t, func() {
		_, _ = guard.Do(context.Background(), g, time.Second, func(context.Context) (int, error) {
			panic("boom")
		})
	})

	_, err := guard.Do(context.Background(), g, time.Second, func(context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
}

func TestDo_CancelledCallerIsNotTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := guard.New()
		release := make(chan struct{})
		holding := make(chan struct{})

		go func() {
			_, _ = guard.Do(context.Background(), g, time.Minute, func(context.Context) (int, error) {
				close(holding)
				<-release
				return 0, nil
			})
		}()
		<-holding

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(time.Second)
			cancel()
		}()

		_, err := guard.Do(ctx, g, time.Minute, func(context.Context) (int, error) {
			return 0, nil
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, errors.Is(err, domain.ErrLockTimeout))

		close(release)
		synctest.Wait()
	})
}

func TestDo_SerializesHolders(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := guard.New()
		var active, maxActive atomic.Int32
		var wg sync.WaitGroup

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := guard.Do(context.Background(), g, time.Minute, func(context.Context) (int, error) {
					n := active.Add(1)
					if n > maxActive.Load() {
						maxActive.Store(n)
					}
					time.Sleep(time.Second)
					active.Add(-1)
					return 0, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxActive.Load())
	})
}

func TestDo_DefaultTimeout(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := guard.New()
		release := make(chan struct{})
		holding := make(chan struct{})

		go func() {
			_, _ = guard.Do(context.Background(), g, time.Hour, func(context.Context) (int, error) {
				close(holding)
				<-release
				return 0, nil
			})
		}()
		<-holding

		start := time.Now()
		_, err := guard.Do(context.Background(), g, 0, func(context.Context) (int, error) {
			return 0, nil
		})
		require.ErrorIs(t, err, domain.ErrLockTimeout)
		assert.GreaterOrEqual(t, time.Since(start), guard.DefaultTimeout)

		close(release)
		synctest.Wait()
	})
}
