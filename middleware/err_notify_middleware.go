package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNotify - posts 5xx responses to the configured webhook
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		body := c.Response().Body()
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		msg := data.Message
		if msg == "" {
			msg = string(body)
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, _ := json.Marshal(map[string]interface{}{
			"code":   statusCode,
			"method": c.Method(),
			"path":   path,
			"error":  msg,
		})
		go func() {
			resp, reqErr := http.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(string(payload)))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
