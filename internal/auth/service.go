package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/to-goingon/notion-invoice-web/internal/logger"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

var (
	// ErrInvalidCredentials hides whether the username or the
	// password was wrong.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrNoSession means no token was presented at all.
	ErrNoSession = errors.New("auth: no session")
	// ErrInvalidSession covers every decode failure: malformed,
	// bad signature, wrong algorithm, expired.
	ErrInvalidSession = errors.New("auth: session invalid or expired")
)

// AdminIdentity is the single configured administrator. A constant-set
// authorization policy, not a row in a users table.
type AdminIdentity struct {
	Username string
	Password string
}

// Credentials is the transient login input pair. Never stored; compared
// against configuration and discarded.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries everything the boundary needs after a successful
// login: the identity, the session, and the encoded token to set as a
// cookie.
type LoginResult struct {
	User    session.User
	Session session.Session
	Token   string
}

// Service orchestrates login, logout and session checks. It holds no
// mutable state: every call is a pure function of its input plus the
// configured identity, secret and duration.
type Service struct {
	admin    AdminIdentity
	codec    *session.Codec
	duration time.Duration
	now      func() time.Time
}

func NewService(admin AdminIdentity, codec *session.Codec, duration time.Duration) *Service {
	return &Service{
		admin:    admin,
		codec:    codec,
		duration: duration,
		now:      time.Now,
	}
}

// Login verifies the credential pair against the configured identity
// and, on match, issues a fresh encoded session. Comparison is
// constant-time; the stored password is plain configuration text by
// design (see config.Config.AdminPassword).
func (s *Service) Login(creds Credentials) (LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.admin.Username))
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(s.admin.Password))
	if userOK&passOK != 1 {
		return LoginResult{}, ErrInvalidCredentials
	}

	user := session.User{
		ID:       "admin",
		Username: s.admin.Username,
		Role:     session.RoleAdmin,
	}
	sess := session.New(user, s.now(), s.duration)

	token, err := s.codec.Encode(sess)
	if err != nil {
		logger.Error("session encode failed", map[string]any{
			"error": err.Error(),
		})
		return LoginResult{}, err
	}

	return LoginResult{
		User:    user,
		Session: sess,
		Token:   token,
	}, nil
}

// Logout is a stateless no-op at this layer; the boundary deletes the
// cookie. A logged-out token stays cryptographically valid until its
// natural expiry.
func (s *Service) Logout() {}

// CheckSession validates a presented token and returns the session it
// encodes, unchanged. No sliding expiry: a still-valid session is never
// extended.
func (s *Service) CheckSession(token string) (session.Session, error) {
	if token == "" {
		return session.Session{}, ErrNoSession
	}

	sess, err := s.codec.Decode(token)
	if err != nil {
		// cause intentionally not propagated to the caller
		return session.Session{}, ErrInvalidSession
	}

	return sess, nil
}

// Duration returns the configured session lifetime, used by the
// boundary for cookie max-age.
func (s *Service) Duration() time.Duration {
	return s.duration
}
