package api

import (
	"database/sql"
	stdhttp "net/http"

	intconfig "pasajes/internal/config"
	h "pasajes/internal/http/handlers"
	"pasajes/internal/http/middleware"
	"pasajes/internal/repositories"
	"pasajes/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires repositories, services and handlers around the one DB
// handle and mounts the route table.
func NewRouter(env intconfig.Env, database *sql.DB) *gin.Engine {
	catalogoRepo := repositories.CatalogoRepository{DB: database}
	pasajeRepo := repositories.PasajeRepository{DB: database}
	historialRepo := repositories.HistorialRepository{DB: database}
	usuarioRepo := repositories.UsuarioRepository{DB: database}

	pasajes := h.PasajeHandler{Service: services.PasajeService{
		DB:       database,
		Catalogo: catalogoRepo,
		Pasajes:  pasajeRepo,
	}}
	historial := h.HistorialHandler{Service: services.HistorialService{Historial: historialRepo}}
	export := h.ExportHandler{Service: services.ExportService{Historial: historialRepo}}
	auth := h.AuthHandler{Service: services.AuthService{
		Usuarios:  usuarioRepo,
		JWTSecret: []byte(env.JWTSecret),
	}}
	system := h.SystemHandler{DB: database, Catalogo: catalogoRepo}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/salud", system.Salud)
		api.GET("/db-check", system.DBCheck)
		api.GET("/rutas", system.Rutas)

		grupo := api.Group("/pasajes")
		grupo.GET("", pasajes.Listar)
		grupo.GET("/historial", historial.Reporte)
		grupo.GET("/nuevo-defaults", pasajes.NuevoDefaults)
		grupo.GET("/:id", pasajes.Obtener)
		grupo.POST("", pasajes.Crear)
		grupo.PUT("/:id", pasajes.Actualizar)
		grupo.DELETE("/:id", pasajes.Eliminar)

		api.POST("/exportar", export.CSV)
		api.POST("/exportar/pdf", export.PDF)

		authGroup := api.Group("/auth")
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/registro", auth.Registro)
		authGroup.GET("/perfil", middleware.RequireAuth([]byte(env.JWTSecret)), auth.Perfil)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = env.CORSOrigins()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
