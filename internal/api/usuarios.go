package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"levelup-api/internal/service"
)

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, false
	}
	return id, true
}

// listUsuarios handles GET /api/usuarios
func (h *Handler) listUsuarios(c *gin.Context) {
	usuarios, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// getUsuario handles GET /api/usuarios/:id
func (h *Handler) getUsuario(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	usuario, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// updateUsuario handles PUT /api/usuarios/:id
func (h *Handler) updateUsuario(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	usuario, err := h.userService.Update(c.Request.Context(), getClaims(c), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Usuario actualizado exitosamente",
		"user":    usuario,
	})
}

// deleteUsuario handles DELETE /api/usuarios/:id
func (h *Handler) deleteUsuario(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}
