package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"levelup-api/internal/service"
)

// listBoletas handles GET /api/boletas
func (h *Handler) listBoletas(c *gin.Context) {
	boletas, err := h.boletaService.List(c.Request.Context(), getClaims(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boletas)
}

// getBoleta handles GET /api/boletas/:id
func (h *Handler) getBoleta(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	boleta, err := h.boletaService.Get(c.Request.Context(), getClaims(c), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boleta)
}

// createBoleta handles POST /api/boletas
func (h *Handler) createBoleta(c *gin.Context) {
	var req service.CreateBoletaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	boleta, err := h.boletaService.Create(c.Request.Context(), getClaims(c), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Boleta creada exitosamente",
		"boleta":  boleta,
	})
}

type updateBoletaRequest struct {
	Estado string `json:"estado"`
}

// updateBoleta handles PUT /api/boletas/:id
func (h *Handler) updateBoleta(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req updateBoletaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de solicitud inválido"})
		return
	}

	boleta, err := h.boletaService.UpdateEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Boleta actualizada exitosamente",
		"boleta":  boleta,
	})
}

// deleteBoleta handles DELETE /api/boletas/:id
func (h *Handler) deleteBoleta(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.boletaService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Boleta eliminada exitosamente"})
}
