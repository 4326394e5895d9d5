package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pasajes/internal/http/middleware"
	"pasajes/internal/services"
	"pasajes/internal/utils"

	"github.com/gin-gonic/gin"
)

type PasajeHandler struct {
	Service services.PasajeService
}

// GET /api/pasajes?ruta=Ruta+Norte
func (h PasajeHandler) Listar(c *gin.Context) {
	filtro := strings.TrimSpace(c.Query("ruta"))

	pasajes, err := h.Service.Listar(filtro)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pasajes": pasajes,
		"total":   len(pasajes),
		"filtro":  filtro,
	})
}

// GET /api/pasajes/nuevo-defaults devuelve la fecha y hora actuales para
// precargar el formulario de creación.
func (h PasajeHandler) NuevoDefaults(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"fecha": utils.FormatDate(now),
		"hora":  utils.FormatTime(now),
	})
}

// GET /api/pasajes/:id
func (h PasajeHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detalle, err := h.Service.ObtenerParaEditar(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, detalle)
}

// POST /api/pasajes
func (h PasajeHandler) Crear(c *gin.Context) {
	var input services.CrearPasajeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "payload no válido: "+err.Error())
		return
	}

	if err := h.Service.Crear(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "pasajes", "crear", "pasaje creado")
	c.JSON(http.StatusCreated, gin.H{"message": "Pasaje creado correctamente"})
}

// PUT /api/pasajes/:id
func (h PasajeHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.ActualizarPasajeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "payload no válido: "+err.Error())
		return
	}

	if err := h.Service.Actualizar(id, input); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "pasajes", "actualizar", "pasaje actualizado")
	c.JSON(http.StatusOK, gin.H{"message": "Pasaje actualizado correctamente"})
}

// DELETE /api/pasajes/:id
func (h PasajeHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Service.Eliminar(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "pasajes", "eliminar", "pasaje eliminado")
	c.JSON(http.StatusOK, gin.H{"message": "Pasaje eliminado correctamente"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "id no válido")
		return 0, false
	}
	return id, true
}
