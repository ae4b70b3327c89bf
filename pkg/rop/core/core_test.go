package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWorkerOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5))
	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5))
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	require.NotNil(t, GetLogger(ctx))
	require.NotNil(t, GetLogger(WithLogger(ctx, nil)))

	logger := zap.NewExample()
	assert.Same(t, logger, GetLogger(WithLogger(ctx, logger)))
}

func TestToChanManyResults_FromChanMany(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	out := FromChanMany(ctx, ToChanManyResults(ctx, []int{1, 2, 3}))
	require.Len(t, out, 3)
	for i, r := range out {
		assert.True(t, r.IsSuccess())
		assert.Equal(t, i+1, r.Result())
	}
}

func TestToChanManyResults_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := ToChanManyResults(ctx, []int{1, 2, 3})
	first := <-ch
	assert.Equal(t, 1, first.Result())
	cancel()

	// the producer must close the channel without anyone reading the rest
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("input channel was not closed after cancel")
		}
	}
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	in := ToChanManyResults(ctx, []int{1, 2, 3, 4})
	out := make(chan rop.Result[int])
	wg := &sync.WaitGroup{}
	double := func(ctx context.Context, r rop.Result[int]) rop.Result[int] {
		return rop.Success(r.Result() * 2)
	}

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go Locomotive(ctx, in, out, double, wg)
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	sum := 0
	for r := range out {
		sum += r.Result()
	}
	assert.Equal(t, 20, sum)
}

func TestLocomotive_ReturnsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan rop.Result[int])
	out := make(chan rop.Result[int])
	wg := &sync.WaitGroup{}
	wg.Add(1)
	go Locomotive(ctx, in, out, func(ctx context.Context, r rop.Result[int]) rop.Result[int] { return r }, wg)
	wg.Wait()
}
