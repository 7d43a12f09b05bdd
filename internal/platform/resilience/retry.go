package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Permanent marks err so Retry returns it without another attempt.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Retry runs op with exponential backoff until it succeeds, returns a
// Permanent error, exhausts the policy, or ctx is done. onRetry, when set,
// sees every failure that is followed by another attempt.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func() (T, error), onRetry func(err error, wait time.Duration)) (T, error) {
	policy = policy.normalized()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = policy.InitialBackoff
	expo.MaxInterval = policy.MaxBackoff
	expo.Multiplier = 2
	expo.RandomizationFactor = 0

	opts := []backoff.RetryOption{
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(uint(policy.MaxRetries + 1)),
	}
	if onRetry != nil {
		opts = append(opts, backoff.WithNotify(onRetry))
	}
	return backoff.Retry[T](ctx, op, opts...)
}
