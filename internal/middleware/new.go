package middleware

import (
	pkgLog "shadowbuddy/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client's rate
// across all API routes; zero or negative disables limiting.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}
