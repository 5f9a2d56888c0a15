package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm))
	for k, ft := range ftm {
		value := ft(c, d)
		if strValue, ok := value.(string); ok && strValue == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New - request logger middleware. Responses with status >= 400 are logged as warnings.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = true
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if skip[c.Path()] || c.Method() == fiber.MethodOptions {
			return c.Next()
		}
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()

		logger := log.StandardLogger()
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		entry := logger.WithFields(getLogrusFields(ftm, c, d))
		if err != nil {
			entry = entry.WithError(err)
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn("api request")
		} else {
			entry.Info("api request")
		}
		return err
	}
}
