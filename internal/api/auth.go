package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"levelup-api/internal/service"
)

// register handles POST /api/auth/register
func (h *Handler) register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// login handles POST /api/auth/login
func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// me handles GET /api/auth/me
func (h *Handler) me(c *gin.Context) {
	claims := getClaims(c)
	user, err := h.authService.Me(c.Request.Context(), claims)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
