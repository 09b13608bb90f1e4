package redis

import (
	"context"
	"time"
)

var setNXValue = SetNX

// CooldownStore rate-limits OTP delivery per user. A key is set with SetNX on
// each send; while it lives, further sends for the same user are refused.
type CooldownStore struct {
	window time.Duration
}

// NewCooldownStore creates a cooldown store with the given window.
func NewCooldownStore(window time.Duration) *CooldownStore {
	return &CooldownStore{window: window}
}

// Acquire reports whether a send is allowed for the key right now. When it
// returns true the cooldown window has been started atomically.
func (s *CooldownStore) Acquire(ctx context.Context, key string) (bool, error) {
	return setNXValue(ctx, "otp:cooldown:"+key, 1, s.window)
}
