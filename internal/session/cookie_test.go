package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "tok123", 24*time.Hour, CookieOptions{Secure: true})

	cookie := issuedCookie(t, rec)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "tok123", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestSetCookie_DevModeNotSecure(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "tok123", time.Hour, CookieOptions{})

	cookie := issuedCookie(t, rec)
	assert.False(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly, "HttpOnly must hold even with zero options")
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, CookieOptions{Secure: true})

	cookie := issuedCookie(t, rec)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
