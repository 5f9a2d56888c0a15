package fiberlog

import (
	"encoding/json"
	authutils "hr-onboarding-backend/lib/utils/auth-utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagRoute    = "route"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagUA       = "ua"
	TagUserID   = "userId"
	TagSpaceID  = "spaceId"
	RequestID   = "requestId"
	maxBodySize = 4096
	redacted    = "***"
)

// FuncTag extracts a single log field from the request context
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	redactKeys := make(map[string]bool, len(cfg.RedactKeys))
	for _, key := range cfg.RedactKeys {
		redactKeys[strings.ToLower(key)] = true
	}
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if isMultipart(c) {
				return ""
			}
			return truncate(redact(c.Body(), redactKeys))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return truncate(redact(c.Response().Body(), redactKeys))
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			return authutils.GetClaim(c, authutils.ClaimSubject)
		},
		TagSpaceID: func(c *fiber.Ctx, _ *data) interface{} {
			return authutils.GetClaim(c, authutils.ClaimSpace)
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}

// redact - masks values of the keys at any depth, bodies that are not json are returned as is
func redact(body []byte, keys map[string]bool) []byte {
	if len(keys) == 0 || len(body) == 0 {
		return body
	}
	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return body
	}
	masked, err := json.Marshal(redactValue(value, keys))
	if err != nil {
		return body
	}
	return masked
}

func redactValue(value interface{}, keys map[string]bool) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		for key, item := range v {
			if keys[strings.ToLower(key)] {
				v[key] = redacted
				continue
			}
			v[key] = redactValue(item, keys)
		}
	case []interface{}:
		for idx, item := range v {
			v[idx] = redactValue(item, keys)
		}
	}
	return value
}
