package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup-api/internal/apperr"
)

func TestValidateRegister(t *testing.T) {
	ok := &RegisterRequest{Nombre: "Ana", Email: "ana@example.com", Password: "secreto1"}
	assert.NoError(t, validateRegister(ok))

	withRol := &RegisterRequest{Nombre: "Ana", Email: "ana@example.com", Password: "secreto1", Rol: "Vendedor"}
	assert.NoError(t, validateRegister(withRol))

	bad := &RegisterRequest{Nombre: " ", Email: "no-email", Password: "123", Rol: "Jefe"}
	err := validateRegister(bad)
	require.Error(t, err)

	appErr := apperr.From(err)
	assert.Equal(t, apperr.KindValidation, appErr.Kind())
	assert.Len(t, appErr.Violations(), 4)
}
