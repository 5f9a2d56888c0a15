package wizard

import "sync"

type NoticeKind string

const (
	NoticeError   NoticeKind = "ERROR"
	NoticeSuccess NoticeKind = "SUCCESS"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier - banner shown to the candidate, one notice at a time
type Notifier struct {
	mu          sync.Mutex
	current     *Notice
	subscribers []func(*Notice)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Error(msg string) {
	n.set(&Notice{Kind: NoticeError, Message: msg})
}

func (n *Notifier) Success(msg string) {
	n.set(&Notice{Kind: NoticeSuccess, Message: msg})
}

func (n *Notifier) Clear() {
	n.set(nil)
}

// Current - nil when nothing is shown
func (n *Notifier) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	notice := *n.current
	return &notice
}

// Subscribe - fn is called on every change, nil notice means cleared
func (n *Notifier) Subscribe(fn func(*Notice)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

func (n *Notifier) set(notice *Notice) {
	n.mu.Lock()
	n.current = notice
	subscribers := make([]func(*Notice), len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.Unlock()
	for _, fn := range subscribers {
		if notice == nil {
			fn(nil)
			continue
		}
		copied := *notice
		fn(&copied)
	}
}
