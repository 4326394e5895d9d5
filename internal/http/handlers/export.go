package handlers

import (
	"net/http"

	"pasajes/internal/http/middleware"
	"pasajes/internal/services"
	"pasajes/internal/utils"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Service services.ExportService
}

// POST /api/exportar
func (h ExportHandler) CSV(c *gin.Context) {
	result, err := h.Service.ExportarCSV()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.entregar(c, result, "exportar_csv")
}

// POST /api/exportar/pdf
func (h ExportHandler) PDF(c *gin.Context) {
	result, err := h.Service.ExportarPDF()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.entregar(c, result, "exportar_pdf")
}

func (h ExportHandler) entregar(c *gin.Context, result services.ExportResult, action string) {
	if result.Empty {
		// sin datos no es un error: se informa, no se descarga nada
		c.JSON(http.StatusOK, gin.H{"message": "No hay pasajes para exportar", "empty": true})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "export", action, result.Filename)
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
