package ratelimit

import (
	"context"
	"time"
)

// Policy describes one fixed-window limit.
type Policy struct {
	Name    string        // counter namespace, part of the store key
	Window  time.Duration // fixed window length
	Max     int64         // allowed requests per window per client
	Message string        // 429 body text
}

// The four policies mirror the route groups they guard.
var (
	BasePolicy = Policy{
		Name:    "base",
		Window:  15 * time.Minute,
		Max:     100,
		Message: "Too many requests, please try again later.",
	}
	AuthPolicy = Policy{
		Name:    "auth",
		Window:  time.Hour,
		Max:     10,
		Message: "Too many authentication attempts, please try again later.",
	}
	JobPostPolicy = Policy{
		Name:    "jobpost",
		Window:  time.Hour,
		Max:     20,
		Message: "Too many job posting attempts, please try again later.",
	}
	BidPolicy = Policy{
		Name:    "bid",
		Window:  time.Hour,
		Max:     30,
		Message: "Too many bidding attempts, please try again later.",
	}
)

// Store is a process-wide or external counter keyed by string.
// Incr bumps the counter for key and returns the new count together with
// the moment the current window resets.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

// Result is the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// Limiter applies one policy against a store.
type Limiter struct {
	store  Store
	policy Policy
}

// New creates a limiter for the given policy.
func New(store Store, policy Policy) *Limiter {
	return &Limiter{store: store, policy: policy}
}

// Policy returns the limiter's policy.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow counts one request from the given client and reports whether it
// fits in the current window.
func (l *Limiter) Allow(ctx context.Context, clientIP string) (*Result, error) {
	key := l.policy.Name + ":" + clientIP

	count, resetAt, err := l.store.Incr(ctx, key, l.policy.Window)
	if err != nil {
		return nil, err
	}

	remaining := l.policy.Max - count
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= l.policy.Max,
		Limit:     l.policy.Max,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
