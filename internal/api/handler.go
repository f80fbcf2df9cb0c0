package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"levelup-api/internal/auth"
	"levelup-api/internal/authz"
	"levelup-api/internal/service"
	"levelup-api/internal/store"
	"levelup-api/internal/util"
)

// Handler contains the HTTP handlers and their dependencies.
type Handler struct {
	authService    *service.AuthService
	userService    *service.UserService
	catalogService *service.CatalogService
	boletaService  *service.BoletaService
	tokens         *auth.TokenService
	store          *store.Store
	env            string
	frontendURL    string
	logger         *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	authService *service.AuthService,
	userService *service.UserService,
	catalogService *service.CatalogService,
	boletaService *service.BoletaService,
	tokens *auth.TokenService,
	store *store.Store,
	env, frontendURL string,
) *Handler {
	return &Handler{
		authService:    authService,
		userService:    userService,
		catalogService: catalogService,
		boletaService:  boletaService,
		tokens:         tokens,
		store:          store,
		env:            env,
		frontendURL:    frontendURL,
		logger:         util.GetLogger(),
	}
}

// SetupRoutes binds every route to its guard chain and handler.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.CustomRecovery(h.recoveryHandler()))
	router.Use(securityHeaders())
	router.Use(corsMiddleware(h.env, h.frontendURL))
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.root)
	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/me", h.RequireAuth(), h.me)
	}

	usuarios := api.Group("/usuarios")
	usuarios.Use(h.RequireAuth())
	{
		usuarios.GET("", h.RequireRole(authz.ActionList, authz.ResourceUsuarios), h.listUsuarios)
		usuarios.GET("/:id", h.RequireRole(authz.ActionRead, authz.ResourceUsuarios), h.getUsuario)
		usuarios.PUT("/:id", h.RequireRole(authz.ActionUpdate, authz.ResourceUsuarios), h.updateUsuario)
		usuarios.DELETE("/:id", h.RequireRole(authz.ActionDelete, authz.ResourceUsuarios), h.deleteUsuario)
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", h.listCategorias)
		categorias.GET("/:id", h.getCategoria)
		categorias.POST("", h.RequireAuth(),
			h.RequireRole(authz.ActionCreate, authz.ResourceCategoria), h.createCategoria)
		categorias.PUT("/:id", h.RequireAuth(),
			h.RequireRole(authz.ActionUpdate, authz.ResourceCategoria), h.updateCategoria)
		categorias.DELETE("/:id", h.RequireAuth(),
			h.RequireRole(authz.ActionDelete, authz.ResourceCategoria), h.deleteCategoria)
	}

	productos := api.Group("/productos")
	{
		productos.GET("", h.listProductos)
		productos.GET("/:id", h.getProducto)
		productos.POST("", h.RequireAuth(),
			h.RequireRole(authz.ActionCreate, authz.ResourceProductos), h.createProducto)
		productos.PUT("/:id", h.RequireAuth(),
			h.RequireRole(authz.ActionUpdate, authz.ResourceProductos), h.updateProducto)
		productos.DELETE("/:id", h.RequireAuth(),
			h.RequireRole(authz.ActionDelete, authz.ResourceProductos), h.deleteProducto)
	}

	boletas := api.Group("/boletas")
	boletas.Use(h.RequireAuth())
	{
		boletas.GET("", h.RequireRole(authz.ActionList, authz.ResourceBoletas), h.listBoletas)
		boletas.GET("/:id", h.RequireRole(authz.ActionRead, authz.ResourceBoletas), h.getBoleta)
		boletas.POST("", h.RequireRole(authz.ActionCreate, authz.ResourceBoletas), h.createBoleta)
		boletas.PUT("/:id", h.RequireRole(authz.ActionUpdate, authz.ResourceBoletas), h.updateBoleta)
		boletas.DELETE("/:id", h.RequireRole(authz.ActionDelete, authz.ResourceBoletas), h.deleteBoleta)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ruta no encontrada"})
	})
}

// root returns the service descriptor.
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Level Up Gamer API",
		"version":       "1.0.0",
		"documentation": "/api-docs",
		"endpoints": gin.H{
			"auth":       "/api/auth",
			"usuarios":   "/api/usuarios",
			"categorias": "/api/categorias",
			"productos":  "/api/productos",
			"boletas":    "/api/boletas",
		},
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck verifies the database is reachable
func (h *Handler) readinessCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}
