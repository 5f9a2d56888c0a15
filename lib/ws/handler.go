package ws

import (
	wsclient "hr-onboarding-backend/lib/ws/client"
	connectionhub "hr-onboarding-backend/lib/ws/hub/connection-hub"
	"hr-onboarding-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", middleware.GetUserID(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(eventsHandler))
}

// @Summary HR live events
// @Tags Websocket
// @Description Onboarding events of hired candidates (DOCUMENT_COMPLETED, ONBOARDING_COMPLETED)
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 403
// @router /ws [get]
func eventsHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	connectionhub.Instance.AddClient(userID, c)
	defer connectionhub.Instance.DeleteClient(userID, c)
	wsclient.NewClient(userID, c, connectionhub.Instance).Dispatch()
}
