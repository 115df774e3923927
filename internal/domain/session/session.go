package session

import (
	"errors"
	"time"

	"github.com/ledgerlab/fintrack/internal/domain/user"
)

// Session binds an opaque bearer token to a snapshot of the user taken at
// login time. The snapshot is intentionally never refreshed: editing a user
// does not propagate into sessions issued before the edit.
type Session struct {
	ID        int64
	Token     string
	UserID    int64
	User      user.User
	CreatedAt time.Time
}

var ErrNotFound = errors.New("session not found")

func (s Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
