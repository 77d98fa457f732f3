package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/invoice"
	"github.com/to-goingon/notion-invoice-web/internal/logger"
)

// Handler serves the invoice read API. All routes require an
// authenticated session; auth is enforced by the router group, not
// here.
type Handler struct {
	repo invoice.Repository
}

func NewHandler(repo invoice.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/invoices", h.list)
	r.GET("/invoices/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	invoices, err := h.repo.List(c.Request.Context())
	if err != nil {
		logger.Error("invoice list failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"invoices": invoices,
	})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, invoice.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "invoice not found",
		})
		return
	}
	if err != nil {
		logger.Error("invoice get failed", map[string]any{
			"invoice_id": id,
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"invoice": inv,
	})
}
