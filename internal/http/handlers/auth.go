package handlers

import (
	"net/http"

	"pasajes/internal/domain"
	"pasajes/internal/http/middleware"
	"pasajes/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service services.AuthService
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "payload no válido")
		return
	}

	token, usuario, err := h.Service.Login(input)
	if err != nil {
		if domain.IsValidation(err) {
			respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "usuario": usuario})
}

// POST /api/auth/registro
func (h AuthHandler) Registro(c *gin.Context) {
	var input services.RegistroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "payload no válido")
		return
	}

	usuario, err := h.Service.Registrar(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registro exitoso", "usuario": usuario})
}

// GET /api/auth/perfil (requiere token)
func (h AuthHandler) Perfil(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": claims["user_id"], "rol": claims["rol"]})
}
