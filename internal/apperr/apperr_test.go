package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, New(tc.kind, "x").HTTPStatus(), string(tc.kind))
	}
}

func TestValidationCarriesViolations(t *testing.T) {
	err := Validation("Datos inválidos", "nombre es requerido", "precio debe ser mayor o igual a 0")

	assert.Equal(t, KindValidation, err.Kind())
	assert.Len(t, err.Violations(), 2)
	assert.Equal(t, "Datos inválidos", err.Message())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "Error interno", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Error interno", err.Message())
}

func TestFrom(t *testing.T) {
	appErr := New(KindNotFound, "Boleta no encontrada")
	assert.Same(t, appErr, From(appErr))

	wrapped := fmt.Errorf("handler: %w", appErr)
	assert.Equal(t, KindNotFound, From(wrapped).Kind())

	plain := errors.New("boom")
	got := From(plain)
	assert.Equal(t, KindInternal, got.Kind())
	assert.ErrorIs(t, got, plain)
}

func TestIsKind(t *testing.T) {
	err := Newf(KindConflict, "Stock insuficiente para producto %d", 7)

	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindConflict))
	assert.Contains(t, err.Message(), "7")
}
