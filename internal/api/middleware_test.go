package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func panicRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(h.recoveryHandler()))
	router.GET("/boom", func(c *gin.Context) {
		panic("se rompió")
	})
	return router
}

func TestRecoveryHandlerReturnsErrorBody(t *testing.T) {
	h := &Handler{env: "development", logger: zap.NewNop()}
	router := panicRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error interno del servidor", body["message"])
	assert.Contains(t, body["error"], "se rompió")
}

func TestRecoveryHandlerHidesDetailInProduction(t *testing.T) {
	h := &Handler{env: "production", logger: zap.NewNop()}
	router := panicRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error interno del servidor", body["message"])
	assert.NotContains(t, body, "error")
}
