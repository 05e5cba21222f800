package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/corgi-bot/internal/platform/telemetry"
)

// both runs two lookups concurrently and returns both results, or the first
// error. The shared context is canceled as soon as either lookup fails.
func both[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		r1, err = fn1(gctx)

		return err
	})

	g.Go(func() error {
		var err error

		r2, err = fn2(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, err
	}

	return r1, r2, nil
}

// traced runs fn inside a span named after the store operation.
func traced[T any](ctx context.Context, name string, communityID int64, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := telemetry.StartSpan(ctx, name, communityID)
	v, err := fn(ctx)
	telemetry.EndSpan(span, err)

	return v, err
}
