package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const pollInterval = 50 * time.Millisecond

// WithDelay - runs safeCode while holding the key. Waits up to wait for a busy key,
// returns success=false without running safeCode when the key is still held or ctx is done.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(pollInterval):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
