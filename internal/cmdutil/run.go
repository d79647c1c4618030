package cmdutil

import (
	"context"
)

// RunStream drives produce, applies visit to every item and forwards the kept
// results via send. It stops at the first error or when ctx is cancelled and
// returns the number of results sent.
func RunStream[In, Out any](
	ctx context.Context,
	produce func(emit func(In) error) error,
	visit func(In) (keep bool, out Out, err error),
	send func(Out) error,
) (int, error) {
	total := 0
	err := produce(func(x In) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		keep, out, vErr := visit(x)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
