package handlers

import (
	"net/http"

	"pasajes/internal/services"

	"github.com/gin-gonic/gin"
)

type HistorialHandler struct {
	Service services.HistorialService
}

// GET /api/pasajes/historial
func (h HistorialHandler) Reporte(c *gin.Context) {
	reporte, err := h.Service.Reporte()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporte)
}
