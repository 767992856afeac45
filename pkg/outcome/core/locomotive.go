package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Outcome[In], outCh chan<- outcome.Outcome[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[In], outCh chan<- outcome.Outcome[Out])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[In], processed outcome.Outcome[Out], outCh chan<- outcome.Outcome[Out])
}

// Locomotive drives one worker over inputCh, applying engine to each
// outcome and forwarding the result. When ctx is done it stops invoking
// further stages; handlers decide what happens to in-flight and
// remaining items. Already-produced chains are never altered.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In], outCh chan<- outcome.Outcome[Out],
	engine func(ctx context.Context, input outcome.Outcome[In]) <-chan outcome.Outcome[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in outcome.Outcome[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
