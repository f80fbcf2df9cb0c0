package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"levelup-api/internal/apperr"
)

// respondError maps an error to its HTTP status and the {message, errors?}
// body. Internal failures are logged and reduced to a generic message, with
// the cause echoed only outside production.
func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)

	body := gin.H{"message": appErr.Message()}
	if violations := appErr.Violations(); len(violations) > 0 {
		body["errors"] = violations
	}

	if appErr.Kind() == apperr.KindInternal {
		h.logger.Error("Unhandled request error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		if h.env != "production" {
			body["error"] = err.Error()
		}
	}

	c.JSON(appErr.HTTPStatus(), body)
}
