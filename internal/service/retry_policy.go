package service

import "time"

// RetryPolicy decides whether a failed generation attempt is retried.
// It holds no state; the caller tracks the attempt number.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

type RetryDecision struct {
	Retry bool
	Delay time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 2 * time.Second}
}

// Decide is called after attempt number `attempt` (1-based) failed with an
// error of the given kind. Only overload is retried, with a linear backoff
// of BaseDelay*attempt.
func (p RetryPolicy) Decide(attempt int, kind GenerationErrorKind) RetryDecision {
	if kind != KindOverloaded || attempt >= p.MaxAttempts {
		return RetryDecision{}
	}
	return RetryDecision{Retry: true, Delay: p.BaseDelay * time.Duration(attempt)}
}
