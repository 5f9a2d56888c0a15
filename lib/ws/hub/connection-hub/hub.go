package connectionhub

import (
	wsmodels "hr-onboarding-backend/models/ws"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn Conn)
	DeleteClient(userID string, conn Conn)
	SendMessage(msg wsmodels.ServerMessage) bool
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]*clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]*clientSession // by user id
}

// AddClient - a newer connection of the same user replaces the previous one
func (i *impl) AddClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if old, ok := i.clients[userID]; ok {
		old.stop()
		if err := old.conn.Close(); err != nil {
			log.WithField("user_id", userID).WithError(err).Debug("failed to close replaced connection")
		}
	}
	i.clients[userID] = newSession(conn)
}

// DeleteClient - removes the session only if it still belongs to conn
func (i *impl) DeleteClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn != conn {
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

// SendMessage - delivers to a connected user, messages to offline users are dropped
func (i *impl) SendMessage(msg wsmodels.ServerMessage) bool {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		return false
	}
	if msg.Time == "" {
		msg.Time = time.Now().Format(time.RFC3339)
	}
	return sess.enqueue(msg)
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	_, ok := i.clients[userID]
	return ok
}
