package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/auth"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

// Handler exposes the auth lifecycle over HTTP. It owns the cookie
// policy; the service below it knows nothing about transport.
type Handler struct {
	service    *auth.Service
	cookieOpts session.CookieOptions
}

func NewHandler(service *auth.Service, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		service:    service,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/api/auth")
	grp.POST("/login", h.login)
	grp.POST("/logout", h.logout)
	grp.GET("/session", h.checkSession)
}
