package wsclient

import (
	"encoding/json"
	wsmodels "hr-onboarding-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// Reader - inbound side of the websocket connection
type Reader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// Sender - outbound queue of the user's connection
type Sender interface {
	SendMessage(msg wsmodels.ServerMessage) bool
}

func NewClient(userID string, conn Reader, sender Sender) *WsClient {
	return &WsClient{
		conn:   conn,
		sender: sender,
		userID: userID,
	}
}

// WsClient - serves client frames of an HR live events connection.
// Clients only send keep-alive pings, events flow from the hub.
type WsClient struct {
	conn   Reader
	sender Sender
	userID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch - blocks until the peer disconnects
func (c *WsClient) Dispatch() {
	logger := log.WithField("user_id", c.userID)
	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Warn("websocket read failed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		msg := wsmodels.ClientMessage{}
		if err = json.Unmarshal(data, &msg); err != nil {
			logger.WithError(err).Debug("malformed websocket message ignored")
			continue
		}
		switch msg.Code {
		case wsmodels.ClientPing:
			c.sender.SendMessage(wsmodels.ServerMessage{ToUserID: c.userID, Code: wsmodels.EventPong})
		default:
			logger.WithField("code", msg.Code).Debug("unknown websocket message ignored")
		}
	}
}
