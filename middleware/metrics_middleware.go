package middleware

import (
	"hr-onboarding-backend/lib/metrics"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Metrics(m *metrics.ServerMetrics) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		status := ctx.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
		path := ctx.Path()
		if r := ctx.Route(); r != nil && r.Path != "" {
			path = r.Path
		}
		m.ObserveRequest(ctx.Method(), path, status, time.Since(start))
		return err
	}
}
