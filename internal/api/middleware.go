package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"levelup-api/internal/auth"
	"levelup-api/internal/authz"
	"levelup-api/internal/util"
)

const claimsKey = "claims"

// recoveryHandler turns a panic into the standard {message} error body, with
// the panic value echoed only outside production.
func (h *Handler) recoveryHandler() gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		h.logger.Error("Panic recovered",
			zap.String("path", c.FullPath()),
			zap.Any("panic", recovered))

		body := gin.H{"message": "Error interno del servidor"}
		if h.env != "production" {
			body["error"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}

// RequireAuth verifies the bearer token and attaches its claims to the
// request context.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Token no proporcionado"})
			return
		}

		claims, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "Token inválido o expirado"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole checks the authorization policy for the authenticated role.
// Composes after RequireAuth.
func (h *Handler) RequireRole(action authz.Action, resource authz.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "No autenticado"})
			return
		}

		if !authz.Allows(claims.Rol, action, resource) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"message": "No tienes permisos para acceder a este recurso"})
			return
		}
		c.Next()
	}
}

func getClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// securityHeaders sets the standard hardening headers on every response.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	}
}

// corsMiddleware allows browser consumers. Any localhost origin is accepted
// outside production.
func corsMiddleware(env, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := origin != "" &&
			(origin == frontendURL ||
				(env != "production" && strings.Contains(origin, "localhost")))

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
