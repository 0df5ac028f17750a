package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two independent reads concurrently. The first error
// cancels the other and no partial result is returned.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (r1 T1, r2 T2, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { r1, err = fn1(ctx); return err })
	g.Go(func() (err error) { r2, err = fn2(ctx); return err })

	if err = g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return r1, r2, nil
}

// Parallel3 is Parallel2 for three reads.
func Parallel3[T1, T2, T3 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
	fn3 func(context.Context) (T3, error),
) (r1 T1, r2 T2, r3 T3, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { r1, err = fn1(ctx); return err })
	g.Go(func() (err error) { r2, err = fn2(ctx); return err })
	g.Go(func() (err error) { r3, err = fn3(ctx); return err })

	if err = g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
			zero3 T3
		)

		return zero1, zero2, zero3, fmt.Errorf("parallel execution failed: %w", err)
	}

	return r1, r2, r3, nil
}
