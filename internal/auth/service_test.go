package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/to-goingon/notion-invoice-web/internal/session"
)

const (
	testUsername = "admin-user"
	testPassword = "correct-horse-battery"
	testSecret   = "0123456789abcdef0123456789abcdef"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	codec, err := session.NewCodec(testSecret)
	require.NoError(t, err)
	return NewService(
		AdminIdentity{Username: testUsername, Password: testPassword},
		codec,
		24*time.Hour,
	)
}

func TestService_LoginSuccess(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(Credentials{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, "admin", result.User.ID)
	assert.Equal(t, testUsername, result.User.Username)
	assert.Equal(t, session.RoleAdmin, result.User.Role)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t,
		(24 * time.Hour).Milliseconds(),
		result.Session.ExpiresAt-result.Session.CreatedAt,
	)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name  string
		creds Credentials
	}{
		{"wrong password", Credentials{Username: testUsername, Password: "wrong-password"}},
		{"wrong username", Credentials{Username: "someone-else", Password: testPassword}},
		{"both wrong", Credentials{Username: "someone-else", Password: "wrong-password"}},
		{"empty", Credentials{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(tc.creds)
			// one error for every mismatch; nothing reveals which field was off
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestService_CheckSessionRoundTrip(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(Credentials{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	sess, err := svc.CheckSession(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session, sess)
}

func TestService_CheckSessionIdempotent(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(Credentials{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	first, err := svc.CheckSession(result.Token)
	require.NoError(t, err)
	second, err := svc.CheckSession(result.Token)
	require.NoError(t, err)

	// no mutation, no sliding expiry
	assert.Equal(t, first, second)
}

func TestService_CheckSessionNoToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CheckSession("")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestService_CheckSessionInvalidToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CheckSession("definitely.not.valid")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_CheckSessionExpiredToken(t *testing.T) {
	codec, err := session.NewCodec(testSecret)
	require.NoError(t, err)
	svc := NewService(
		AdminIdentity{Username: testUsername, Password: testPassword},
		codec,
		24*time.Hour,
	)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	result, err := svc.Login(Credentials{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	_, err = svc.CheckSession(result.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_LogoutDoesNotRevokeToken(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Login(Credentials{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	svc.Logout()

	// stateless design: the old token stays valid until natural expiry
	sess, err := svc.CheckSession(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Session, sess)
}
