package handlers

import (
	"database/sql"
	"net/http"

	"pasajes/internal/repositories"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB       *sql.DB
	Catalogo repositories.CatalogoRepository
}

func (h SystemHandler) Salud(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "servicio de pasajes en línea"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "base de datos no conectada")
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM pasajes").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "fallo la consulta a la base de datos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexión a base de datos OK", "pasajes_registrados": count})
}

// GET /api/rutas alimenta el select del filtro de listado.
func (h SystemHandler) Rutas(c *gin.Context) {
	rutas, err := h.Catalogo.ListarRutas()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rutas": rutas})
}
