package chain

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop"
	"github.com/ib-77/ropchain/pkg/rop/core"
	"go.uber.org/zap"
)

// Run walks the chain from head and stops at the first link whose check
// fails. Links after it are never evaluated. A nil head is an empty chain and
// succeeds. The chain must be acyclic; Build guarantees that.
func Run[T any](ctx context.Context, head Link[T], in T) Outcome {
	outcome, _ := walk(ctx, head, in, false)
	return outcome
}

// Request delivers the Outcome of Run to completion, exactly once, before
// returning.
func Request[T any](ctx context.Context, head Link[T], in T, completion func(Outcome)) {
	outcome := Run(ctx, head, in)
	if completion != nil {
		completion(outcome)
	}
}

// RunContext is Run that also checks ctx before each link. On cancellation it
// returns ctx.Err() and the Outcome must be ignored.
func RunContext[T any](ctx context.Context, head Link[T], in T) (Outcome, error) {
	return walk(ctx, head, in, true)
}

// RunResult runs the chain and puts in on the success track when every link
// passes.
func RunResult[T any](ctx context.Context, head Link[T], in T) rop.Result[T] {
	outcome, err := RunContext(ctx, head, in)
	if err != nil {
		return rop.Cancel[T](err)
	}
	return ToResult(outcome, in)
}

func ToResult[T any](outcome Outcome, in T) rop.Result[T] {
	if outcome.IsSuccess() {
		return rop.Success(in)
	}
	return rop.Fail[T](outcome.Err())
}

// Step adapts the chain to solo.Switch.
func Step[T any](head Link[T]) func(ctx context.Context, in T) rop.Result[T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		return RunResult(ctx, head, in)
	}
}

// Predicate adapts the chain to solo.Validate.
func Predicate[T any](head Link[T]) func(ctx context.Context, in T) (bool, string) {
	return func(ctx context.Context, in T) (bool, string) {
		outcome := Run(ctx, head, in)
		if outcome.IsSuccess() {
			return true, ""
		}
		return false, outcome.Err().Error()
	}
}

func walk[T any](ctx context.Context, head Link[T], in T, observeCtx bool) (Outcome, error) {
	logger := core.GetLogger(ctx)

	for link := head; !isEnd(link); link = link.Next() {
		if observeCtx && ctx.Err() != nil {
			logger.Debug("chain cancelled", zap.String("link", link.Identifier()), zap.Error(ctx.Err()))
			return Outcome{}, ctx.Err()
		}

		if !link.IsValid(ctx, in) {
			logger.Info("chain link failed", zap.String("link", link.Identifier()))
			return Failed(link.Identifier()), nil
		}
		logger.Debug("chain link passed", zap.String("link", link.Identifier()))
	}

	logger.Debug("chain exhausted")
	return Succeeded(), nil
}
