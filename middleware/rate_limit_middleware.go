package middleware

import (
	apimodels "hr-onboarding-backend/models/api"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitPerIP - token bucket per client ip, used for login attempts
func RateLimitPerIP(perSec float64, burst int) fiber.Handler {
	var (
		mu       sync.Mutex
		limiters = map[string]*ipLimiter{}
	)
	get := func(ip string, now time.Time) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		for key, l := range limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(limiters, key)
			}
		}
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(perSec), burst)}
			limiters[ip] = l
		}
		l.lastSeen = now
		return l.limiter
	}
	return func(ctx *fiber.Ctx) error {
		if !get(ctx.IP(), time.Now()).Allow() {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("too many attempts, please try again later"))
		}
		return ctx.Next()
	}
}
