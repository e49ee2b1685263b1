package gateway

import (
	"sync"

	"golang.org/x/time/rate"
)

// UplinkLimiterStore manages per-device uplink limiters: shortSN -> rate limiter.
// A chattering fox (or a misbehaving base station replaying frames)
// must not starve the rest of the field.
type UplinkLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewUplinkLimiterStore(defaultRate rate.Limit, defaultBurst int) *UplinkLimiterStore {
	return &UplinkLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *UplinkLimiterStore) GetLimiter(shortSN string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[shortSN]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[shortSN] = limiter
	}
	return limiter
}

func (s *UplinkLimiterStore) SetLimiter(shortSN string, deviceRate rate.Limit, deviceBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[shortSN] = rate.NewLimiter(deviceRate, deviceBurst)
}

// Allow reports whether one more uplink frame from the device fits its
// budget; a nil store never limits.
func (s *UplinkLimiterStore) Allow(shortSN string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(shortSN).Allow()
}
