package middleware

import (
	"smart-task-analyzer/config"
	"smart-task-analyzer/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. A disabled rate limit config leaves
// the limiter nil and RateLimit becomes a no-op.
func New(l log.Logger, rateCfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rateCfg.Enabled && rateCfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rateCfg.RequestsPerMin, rateCfg.MaxTrackedPeers)
	}
	return mw
}
