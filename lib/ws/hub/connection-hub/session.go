package connectionhub

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Conn - part of the websocket connection the hub writes to
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

const sendBuffer = 16

type clientSession struct {
	conn   Conn
	sendCh chan any
	stop   func()
}

func newSession(conn Conn) *clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := &clientSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan any, sendBuffer),
	}
	go sess.startSend(ctx)
	return sess
}

func (s *clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.sendCh:
			if err := s.conn.WriteJSON(msg); err != nil {
				log.WithError(err).Warn("failed to send websocket message")
			}
		}
	}
}

// enqueue never blocks, a slow client loses messages
func (s *clientSession) enqueue(msg any) bool {
	select {
	case s.sendCh <- msg:
		return true
	case <-time.After(10 * time.Millisecond):
		return false
	}
}
