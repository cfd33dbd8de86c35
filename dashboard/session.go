package dashboard

import (
	"sync"
	"time"
)

// SessionKeeper signs the tab out when the session's embedded expiry
// elapses. It is a best-effort nudge on top of the server-side guard, not a
// security boundary: the timer is fully re-armed whenever auth state
// changes, and an already-expired session signs out immediately.
type SessionKeeper struct {
	mu      sync.Mutex
	signOut func()
	timer   stopper

	// injected in tests
	now      func() time.Time
	newTimer func(d time.Duration, f func()) stopper
}

type stopper interface {
	Stop() bool
}

func NewSessionKeeper(signOut func()) *SessionKeeper {
	return &SessionKeeper{
		signOut: signOut,
		now:     time.Now,
		newTimer: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// OnAuthChange re-arms the keeper for a new session expiry. A zero expiry
// means signed out: the old timer is cancelled and nothing is scheduled.
func (k *SessionKeeper) OnAuthChange(expiresAt time.Time) {
	k.mu.Lock()
	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
	if expiresAt.IsZero() {
		k.mu.Unlock()
		return
	}

	left := expiresAt.Sub(k.now())
	if left <= 0 {
		k.mu.Unlock()
		k.signOut()
		return
	}
	k.timer = k.newTimer(left, k.signOut)
	k.mu.Unlock()
}

func (k *SessionKeeper) Stop() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.timer != nil {
		k.timer.Stop()
		k.timer = nil
	}
}
