package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer, cfg Config) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	cfg.Logger = logger
	app := fiber.New()
	app.Use(New(cfg))
	app.Post("/documents/:slug", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequestLogging(t *testing.T) {
	t.Run("redacted body and route", func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, Config{
			Tags:       []string{TagBody, TagRoute, TagStatus},
			RedactKeys: DefaultRedactKeys,
		})
		req := httptest.NewRequest(fiber.MethodPost, "/documents/direct-deposits",
			strings.NewReader(`{"bankName":"Chase","accountNumber":"123456789","nested":[{"SSN":"123456789"}]}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		_, err := app.Test(req)
		require.NoError(t, err)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "/documents/:slug", entry[TagRoute])
		require.EqualValues(t, fiber.StatusBadRequest, entry[TagStatus])
		body := entry[TagBody].(string)
		require.Contains(t, body, "Chase")
		require.NotContains(t, body, "123456789")
	})
	t.Run("skipped path", func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf, Config{Tags: []string{TagPath}, SkipPaths: []string{"/health"}})
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})
}

func TestRedact(t *testing.T) {
	keys := map[string]bool{"password": true}
	require.Equal(t, `not json`, string(redact([]byte(`not json`), keys)))
	require.JSONEq(t, `{"email":"a@b.c","password":"***"}`, string(redact([]byte(`{"email":"a@b.c","password":"secret"}`), keys)))
}
