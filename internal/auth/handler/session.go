package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/auth"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

func (h *Handler) checkSession(c *gin.Context) {
	var token string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		token = cookie.Value
	}

	sess, err := h.service.CheckSession(token)
	if errors.Is(err, auth.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "no session",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "session invalid or expired",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": sess,
	})
}
