package documenthandler

import (
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	connectionhub "hr-onboarding-backend/lib/ws/hub/connection-hub"
	wsmodels "hr-onboarding-backend/models/ws"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventPublisher - live onboarding events for the HR users of a space
type EventPublisher interface {
	Publish(spaceID string, code wsmodels.EventCode, msg string, data wsmodels.DocumentEventData)
}

func NewStaffPublisher(users spaceusershandler.Provider, hub connectionhub.Provider) EventPublisher {
	return staffPublisher{
		users: users,
		hub:   hub,
	}
}

type staffPublisher struct {
	users spaceusershandler.Provider
	hub   connectionhub.Provider
}

func (p staffPublisher) Publish(spaceID string, code wsmodels.EventCode, msg string, data wsmodels.DocumentEventData) {
	staffIDs, err := p.users.GetStaffIDs(spaceID)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to get space staff for live event")
		return
	}
	now := time.Now().Format(time.RFC3339)
	for _, userID := range staffIDs {
		if !p.hub.IsConnected(userID) {
			continue
		}
		p.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     now,
			Code:     code,
			Msg:      msg,
			Data:     data,
		})
	}
}
