package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Policy bounds how often a failed store call is repeated. The delay
// doubles after every failed attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy gives a couple of quick retries before the failure is
// handed back to the caller.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}
}

// WithRetry wraps api so that every call is retried per the policy.
// The wrapper implements the same get/put/delete contract, so callers
// stay unaware of retry mechanics.
func WithRetry(api API, policy Policy) API {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &retryingAPI{api: api, policy: policy}
}

type retryingAPI struct {
	api    API
	policy Policy
}

func (r *retryingAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return retry(ctx, r.policy, "GetItem", func(ctx context.Context) (*dynamodb.GetItemOutput, error) {
		return r.api.GetItem(ctx, params, optFns...)
	})
}

func (r *retryingAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return retry(ctx, r.policy, "PutItem", func(ctx context.Context) (*dynamodb.PutItemOutput, error) {
		return r.api.PutItem(ctx, params, optFns...)
	})
}

func (r *retryingAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return retry(ctx, r.policy, "DeleteItem", func(ctx context.Context) (*dynamodb.DeleteItemOutput, error) {
		return r.api.DeleteItem(ctx, params, optFns...)
	})
}

func retry[T any](ctx context.Context, policy Policy, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	delay := policy.BaseDelay
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		out, err := call(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return zero, fmt.Errorf("%s: %d attempts exhausted: %w", op, policy.MaxAttempts, lastErr)
}
