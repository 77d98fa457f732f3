package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/session"
)

// logout clears the cookie and nothing else. There is no server-side
// session table to invalidate, so the endpoint is idempotent; a token
// replayed after logout stays valid until its natural expiry.
func (h *Handler) logout(c *gin.Context) {
	h.service.Logout()
	session.ClearCookie(c.Writer, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "logout successful",
	})
}
