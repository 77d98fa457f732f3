package session

import "time"

// Role is a closed enumeration. The system has exactly one identity,
// so "admin" is the only value.
type Role string

const RoleAdmin Role = "admin"

// User is the immutable identity embedded in a session. It is built
// once at login from configuration and never persisted on its own.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session represents one authenticated period. Instants are Unix
// milliseconds, matching the token wire format. A Session is never
// mutated after creation; it is either valid or expired.
type Session struct {
	User      User  `json:"user"`
	CreatedAt int64 `json:"created_at"`
	ExpiresAt int64 `json:"expires_at"`
}

// New builds a fresh session for user. ExpiresAt - CreatedAt equals
// duration exactly.
func New(user User, now time.Time, duration time.Duration) Session {
	return Session{
		User:      user,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(duration).UnixMilli(),
	}
}

// IsExpired reports whether the session's expiry has passed at the
// given instant. Pure comparison, no side effects. Decode already
// enforces the token's own exp claim; this is the defense-in-depth
// check on top of it.
func (s Session) IsExpired(at time.Time) bool {
	return at.UnixMilli() > s.ExpiresAt
}
