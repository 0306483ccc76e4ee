package auth

import (
	"context"
	"time"
)

// RememberedLogin is the opt-in "remember me" hint: the last username that
// asked to be pre-filled on the login form. It is a convenience, not a
// session.
type RememberedLogin struct {
	Username     string
	Role         string
	RememberedAt time.Time
}

// RememberedLoginRepository stores at most one remembered login per device
// key. Clear of a missing key is a no-op.
type RememberedLoginRepository interface {
	Put(ctx context.Context, deviceKey string, login RememberedLogin) error
	Get(ctx context.Context, deviceKey string) (*RememberedLogin, error)
	Clear(ctx context.Context, deviceKey string) error
}
