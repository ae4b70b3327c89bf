package lite

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/chain"
	"github.com/ib-77/ropchain/pkg/rop/core"
	"github.com/ib-77/ropchain/pkg/rop/solo"
	"go.uber.org/zap"
)

const DefaultLines = 4

// ErrNotProcessed marks an input the batch never reached.
var ErrNotProcessed = errors.New("input not processed")

type Item[T any] struct {
	Index int
	Value T
}

// Report is the result for one input. Err is set when the input was never
// validated (cancellation); Outcome is meaningful only when Err is nil.
type Report[T any] struct {
	Index   int
	Input   T
	Outcome chain.Outcome
	Err     error
}

func (r Report[T]) Processed() bool {
	return r.Err == nil
}

func Run[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](head chain.Link[T]) func(ctx context.Context,
	input rop.Result[Item[T]]) rop.Result[Report[T]] {
	return func(ctx context.Context, input rop.Result[Item[T]]) rop.Result[Report[T]] {
		return solo.Switch(ctx, input, func(ctx context.Context, it Item[T]) rop.Result[Report[T]] {
			outcome, err := chain.RunContext(ctx, head, it.Value)
			if err != nil {
				err = errors.Join(ErrNotProcessed, err)
			}
			return rop.Success(Report[T]{Index: it.Index, Input: it.Value, Outcome: outcome, Err: err})
		})
	}
}

// Collect validates every input against head. The number of workers comes
// from core.WithWorkerOptions, DefaultLines otherwise. The returned slice has
// one Report per input at the input's index.
func Collect[T any](ctx context.Context, head chain.Link[T], inputs []T) []Report[T] {
	logger := core.GetLogger(ctx)
	lines := core.GetWorkerMaxCount(ctx, DefaultLines)

	items := make([]Item[T], len(inputs))
	reports := make([]Report[T], len(inputs))
	for i, in := range inputs {
		items[i] = Item[T]{Index: i, Value: in}
		reports[i] = Report[T]{Index: i, Input: in, Err: ErrNotProcessed}
	}

	logger.Debug("batch started", zap.Int("inputs", len(inputs)), zap.Int("lines", lines))

	for res := range Run(ctx, core.ToChanManyResults(ctx, items), Validate(head), lines) {
		if !res.IsSuccess() {
			logger.Warn("batch item dropped", zap.Error(res.Err()))
			continue
		}
		r := res.Result()
		reports[r.Index] = r
	}

	if err := ctx.Err(); err != nil {
		for i := range reports {
			if reports[i].Err == ErrNotProcessed {
				reports[i].Err = errors.Join(ErrNotProcessed, err)
			}
		}
	}

	s := Summarize(reports)
	logger.Info("batch finished",
		zap.Int("total", s.Total), zap.Int("passed", s.Passed),
		zap.Int("failed", s.Failed), zap.Int("skipped", s.Skipped))

	return reports
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

func Summarize[T any](reports []Report[T]) Summary {
	s := Summary{Total: len(reports)}
	for _, r := range reports {
		switch {
		case !r.Processed():
			s.Skipped++
		case r.Outcome.IsSuccess():
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}
