package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// HealthHandler reports readiness. The catalog is loaded before the
// server starts, so a running process always has one.
type HealthHandler struct {
	products int
}

func NewHealthHandler(products int) *HealthHandler {
	return &HealthHandler{products: products}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "products": h.products})
}
