package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"levelup-api/internal/service"
)

// listCategorias handles GET /api/categorias
func (h *Handler) listCategorias(c *gin.Context) {
	categorias, err := h.catalogService.ListCategorias(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorias)
}

// getCategoria handles GET /api/categorias/:id
func (h *Handler) getCategoria(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	categoria, err := h.catalogService.GetCategoria(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoria)
}

// createCategoria handles POST /api/categorias
func (h *Handler) createCategoria(c *gin.Context) {
	var req service.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	categoria, err := h.catalogService.CreateCategoria(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Categoría creada exitosamente",
		"categoria": categoria,
	})
}

// updateCategoria handles PUT /api/categorias/:id
func (h *Handler) updateCategoria(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.CategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	categoria, err := h.catalogService.UpdateCategoria(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Categoría actualizada exitosamente",
		"categoria": categoria,
	})
}

// deleteCategoria handles DELETE /api/categorias/:id
func (h *Handler) deleteCategoria(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategoria(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada exitosamente"})
}
