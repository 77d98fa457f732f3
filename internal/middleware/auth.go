package middleware

import (
	"context"
	"net/http"

	"github.com/to-goingon/notion-invoice-web/internal/auth"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (session.User, bool) {
	u, ok := ctx.Value(userKey).(session.User)
	return u, ok
}

type AuthMiddleware struct {
	Service *auth.Service
}

func NewAuthMiddleware(service *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{Service: service}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Validate token; every decode failure is one rejection
		sess, err := a.Service.CheckSession(cookie.Value)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Attach user to context
		ctx := context.WithValue(r.Context(), userKey, sess.User)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
