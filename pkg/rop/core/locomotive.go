package core

import (
	"context"
	"sync"

	"github.com/ib-77/ropchain/pkg/rop"
)

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// output to outCh. It returns when inputCh is closed or ctx is done; an
// output that could not be delivered because of cancellation is dropped.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) rop.Result[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- engine(ctx, in):
			}
		}
	}
}
