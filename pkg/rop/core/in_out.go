package core

import (
	"context"

	"github.com/ib-77/ropchain/pkg/rop"
	"go.uber.org/zap"
)

// ToChanManyResults streams values as successful results. The channel is
// closed once every value is sent or ctx is done.
func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		for i, v := range values {
			select {
			case in <- rop.Success(v):
			case <-ctx.Done():
				GetLogger(ctx).Debug("input stream stopped",
					zap.Int("sent", i), zap.Int("remaining", len(values)-i), zap.Error(ctx.Err()))
				return
			}
		}
	}()

	return in
}

// FromChanMany drains out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
