package testutil

import (
	"context"

	"github.com/Belphemur/Subtitler/internal/models"
)

// CollectResult waits for the single result of an asynchronous operation.
// This is a test helper and should not be used in production code.
func CollectResult[T any](ctx context.Context, results <-chan models.Result[T]) (T, error) {
	var zero T
	select {
	case result, ok := <-results:
		if !ok {
			return zero, context.Canceled
		}
		return result.Value, result.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// CollectResults waits for every channel in order and returns the values, stopping at the first error.
// This is a test helper and should not be used in production code.
func CollectResults[T any](ctx context.Context, channels ...<-chan models.Result[T]) ([]T, error) {
	values := make([]T, 0, len(channels))
	for _, ch := range channels {
		v, err := CollectResult(ctx, ch)
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
