package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/auth"
	"github.com/to-goingon/notion-invoice-web/internal/logger"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

func (h *Handler) login(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request",
		})
		return
	}

	result, err := h.service.Login(creds)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// one message for both fields; no username enumeration
		logger.Warn("login rejected", map[string]any{
			"ip": c.ClientIP(),
		})
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid username or password",
		})
		return
	}
	if err != nil {
		logger.Error("login failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return
	}

	session.SetCookie(c.Writer, result.Token, h.service.Duration(), h.cookieOpts)

	logger.Info("login successful", map[string]any{
		"username": result.User.Username,
		"ip":       c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
		"session": result.Session,
		"message": "login successful",
	})
}
