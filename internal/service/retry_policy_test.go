package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Decide(t *testing.T) {
	policy := DefaultRetryPolicy()

	tests := []struct {
		name    string
		attempt int
		kind    GenerationErrorKind
		want    RetryDecision
	}{
		{"first overload waits 2s", 1, KindOverloaded, RetryDecision{Retry: true, Delay: 2 * time.Second}},
		{"second overload waits 4s", 2, KindOverloaded, RetryDecision{Retry: true, Delay: 4 * time.Second}},
		{"third overload gives up", 3, KindOverloaded, RetryDecision{}},
		{"misconfiguration is not retried", 1, KindMisconfigured, RetryDecision{}},
		{"unknown errors are not retried", 1, KindUnknown, RetryDecision{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Decide(tt.attempt, tt.kind))
		})
	}
}
