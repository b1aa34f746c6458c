package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RetryPolicy re-runs an operation up to MaxAttempts times in total. A zero
// Delay retries immediately.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

func NewRetryPolicy(maxAttempts int, delay time.Duration) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Delay:       delay,
	}
}

// Do runs op until it succeeds or the attempt bound is exhausted, returning
// the last error in the latter case. Attempts are sequential and blocking.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) (string, error)) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		lastErr = err

		// Check if context is cancelled
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < p.MaxAttempts {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, err)
			if p.Delay > 0 {
				select {
				case <-time.After(p.Delay):
				case <-ctx.Done():
					return "", fmt.Errorf("context cancelled: %w", ctx.Err())
				}
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, lastErr)
}
