package ratelimiter

import (
	"github.com/hyeonwoo/placepick/internal/config"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client key in a fixed time
// window. Counters live in an expiring in-memory cache so a window resets by
// simply aging out.
type FixedWindowRateLimiter struct {
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
	windows *gocache.Cache
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		cfg:     cfg,
		logger:  logger,
		windows: gocache.New(cfg.TimeFrame, 2*cfg.TimeFrame),
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.cfg.Enabled
}

// Allow reports whether the key may proceed and how long until its window
// resets (in seconds) when it may not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, float64) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	count, err := rl.windows.IncrementInt64(key, 1)
	if err != nil {
		// First request in this window.
		rl.windows.Set(key, int64(1), gocache.DefaultExpiration)
		return true, 0
	}

	if count > int64(rl.cfg.RequestsPerTimeFrame) {
		rl.logger.Debugf("Rate limit exceeded for %s: %d requests", key, count)
		return false, rl.cfg.TimeFrame.Seconds()
	}

	return true, 0
}
