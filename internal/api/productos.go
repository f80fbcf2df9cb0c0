package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"levelup-api/internal/service"
)

// listProductos handles GET /api/productos?categoria_id=
func (h *Handler) listProductos(c *gin.Context) {
	var categoriaID *int64
	if raw := c.Query("categoria_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "categoria_id inválido"})
			return
		}
		categoriaID = &id
	}

	productos, err := h.catalogService.ListProductos(c.Request.Context(), categoriaID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// getProducto handles GET /api/productos/:id
func (h *Handler) getProducto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	producto, err := h.catalogService.GetProducto(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

// createProducto handles POST /api/productos
func (h *Handler) createProducto(c *gin.Context) {
	var req service.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	producto, err := h.catalogService.CreateProducto(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Producto creado exitosamente",
		"producto": producto,
	})
}

// updateProducto handles PUT /api/productos/:id
func (h *Handler) updateProducto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	producto, err := h.catalogService.UpdateProducto(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Producto actualizado exitosamente",
		"producto": producto,
	})
}

// deleteProducto handles DELETE /api/productos/:id
func (h *Handler) deleteProducto(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProducto(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado exitosamente"})
}
