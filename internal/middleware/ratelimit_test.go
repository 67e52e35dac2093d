package middleware

import "testing"

func TestRateLimiter(t *testing.T) {
	// 60/min = 1/sec with burst 6.
	rl := NewRateLimiter(60)

	allowed := 0
	for i := 0; i < 20; i++ {
		if err := rl.Allow("user-1"); err == nil {
			allowed++
		}
	}
	if allowed == 0 || allowed == 20 {
		t.Errorf("expected some but not all requests allowed, got %d/20", allowed)
	}

	// A different user has an independent budget.
	if err := rl.Allow("user-2"); err != nil {
		t.Errorf("expected fresh user to be allowed: %v", err)
	}
}
